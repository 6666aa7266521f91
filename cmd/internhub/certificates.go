package main

import (
	"context"

	"github.com/spf13/cobra"

	"internhub/internal/form"
	"internhub/internal/listing"
	"internhub/internal/portal"
	"internhub/internal/view"
)

var certificateFields = []fieldFlag[form.CertificateForm]{
	{"assessment", "finished assessment id", func(f *form.CertificateForm) *string { return &f.AssessmentID }},
	{"url", "certificate document URL", func(f *form.CertificateForm) *string { return &f.URL }},
}

func newCertificatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "certificates",
		Aliases: []string{"certificate", "certs"},
		Short:   "Completion certificates",
	}

	var program string
	list := newListCmd(a, resource[portal.Certificate]{
		key:    "certificates",
		fetch:  func(a *app) listing.FetchFunc[portal.Certificate] { return a.api.ListCertificates },
		fields: listing.CertificateFields(),
		table:  view.CertificateTable,
		query:  func() portal.ListQuery { return portal.ListQuery{ProgramID: program} },
	})
	list.Flags().StringVar(&program, "program", "", "server-side filter by program id")

	cmd.AddCommand(
		list,
		newShowCmd(a, "certificate", func(a *app) func(context.Context, string) (portal.Certificate, error) { return a.api.GetCertificate }, view.CertificateCard),
		newIssueCmd(a),
	)
	return cmd
}

func newIssueCmd(a *app) *cobra.Command {
	var patch form.CertificateForm
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a certificate for a finished assessment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl := form.New(form.Config[portal.Certificate, form.CertificateForm]{
				Submit: func(ctx context.Context, _ string, f form.CertificateForm) (portal.Certificate, error) {
					return a.api.IssueCertificate(ctx, f.Input())
				},
				Confirm:        a.dialog(),
				Navigate:       navigator{a: a},
				Route:          func(c portal.Certificate) string { return "certificates show " + c.ID },
				ConfirmMessage: "Issue certificate?",
			})
			ctrl.Start(patch)
			return submit(cmd.Context(), a, ctrl)
		},
	}
	bindFormFlags(cmd, &patch, certificateFields)
	return cmd
}
