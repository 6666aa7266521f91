package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"internhub/internal/client"
	"internhub/internal/portal"
	"internhub/internal/session"
	"internhub/internal/view"
)

// counter asks for a single record and reads the collection size from the
// pagination total.
type counter struct {
	label string
	count func(ctx context.Context) (int, error)
}

func countOf[T any](list func(context.Context, portal.ListQuery) (portal.Page[T], error), q portal.ListQuery) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		q.Page, q.Limit = 1, 1
		page, err := list(ctx, q)
		if err != nil {
			return 0, err
		}
		return page.Pagination.Total, nil
	}
}

func dashboardCounters(api *client.Client, role portal.Role) []counter {
	if role == portal.RoleCompany {
		return []counter{
			{"Programs", countOf(api.ListPrograms, portal.ListQuery{})},
			{"Open programs", countOf(api.ListPrograms, portal.ListQuery{Status: string(portal.ProgramOpen)})},
			{"Applicants", countOf(api.ListApplications, portal.ListQuery{})},
			{"Awaiting review", countOf(api.ListApplications, portal.ListQuery{Status: string(portal.ApplicationRegistered)})},
			{"Mentors", countOf(api.ListMentors, portal.ListQuery{})},
		}
	}
	return []counter{
		{"My applications", countOf(api.ListApplications, portal.ListQuery{})},
		{"My assessments", countOf(api.ListAssessments, portal.ListQuery{})},
		{"My certificates", countOf(api.ListCertificates, portal.ListQuery{})},
		{"Open programs", countOf(api.ListPrograms, portal.ListQuery{Status: string(portal.ProgramOpen)})},
	}
}

func newDashboardCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Counts for the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, _, err := a.accessor.Current(cmd.Context())
			if errors.Is(err, session.ErrNotFound) {
				return client.ErrNoSession
			}
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			table := view.NewTable(fmt.Sprintf("Dashboard for %s (%s)", displayName(sess), sess.Role), "ITEM", "COUNT")
			for _, c := range dashboardCounters(a.api, sess.Role) {
				n, err := c.count(cmd.Context())
				if err != nil {
					return fmt.Errorf("count %s: %w", c.label, err)
				}
				counts[c.label] = n
				table.AddRow(c.label, strconv.Itoa(n))
			}

			if output != view.FormatTable {
				return view.Encode(a.out, output, counts)
			}
			fmt.Fprint(a.out, table.Render(a.styles))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", view.FormatTable, "output format: table, json or yaml")
	return cmd
}
