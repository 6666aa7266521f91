package main

import (
	"context"

	"github.com/spf13/cobra"

	"internhub/internal/form"
	"internhub/internal/listing"
	"internhub/internal/portal"
	"internhub/internal/view"
)

var applyFields = []fieldFlag[form.ApplyForm]{
	{"program", "program id", func(f *form.ApplyForm) *string { return &f.ProgramID }},
	{"cv", "CV document URL", func(f *form.ApplyForm) *string { return &f.CVURL }},
	{"cover-letter", "cover letter URL", func(f *form.ApplyForm) *string { return &f.CoverLetterURL }},
	{"transcript", "transcript URL", func(f *form.ApplyForm) *string { return &f.TranscriptURL }},
}

var reviewFields = []fieldFlag[form.ReviewForm]{
	{"status", "registered, reviewing, accepted or rejected", func(f *form.ReviewForm) *string { return &f.Status }},
	{"feedback", "note for the student, required when rejecting", func(f *form.ReviewForm) *string { return &f.Feedback }},
}

func newApplicationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"application", "apps"},
		Short:   "Applications to programs",
	}

	var status, program string
	list := newListCmd(a, resource[portal.Application]{
		key:    "applications",
		fetch:  func(a *app) listing.FetchFunc[portal.Application] { return a.api.ListApplications },
		fields: listing.ApplicationFields(),
		table:  view.ApplicationTable,
		query:  func() portal.ListQuery { return portal.ListQuery{Status: status, ProgramID: program} },
	})
	list.Flags().StringVar(&status, "status", "", "server-side filter by status")
	list.Flags().StringVar(&program, "program", "", "server-side filter by program id")

	cmd.AddCommand(
		list,
		newShowCmd(a, "application", func(a *app) func(context.Context, string) (portal.Application, error) { return a.api.GetApplication }, view.ApplicationCard),
		newApplyCmd(a),
		newReviewCmd(a),
	)
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	var patch form.ApplyForm
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply to a program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl := form.New(form.Config[portal.Application, form.ApplyForm]{
				Submit: func(ctx context.Context, _ string, f form.ApplyForm) (portal.Application, error) {
					return a.api.Apply(ctx, f.Input())
				},
				Confirm:        a.dialog(),
				Navigate:       navigator{a: a},
				Route:          func(rec portal.Application) string { return "applications show " + rec.ID },
				ConfirmMessage: "Submit application?",
			})
			ctrl.Start(patch)
			return submit(cmd.Context(), a, ctrl)
		},
	}
	bindFormFlags(cmd, &patch, applyFields)
	return cmd
}

func newReviewCmd(a *app) *cobra.Command {
	var patch form.ReviewForm
	cmd := &cobra.Command{
		Use:   "review <id>",
		Short: "Accept, reject or mark an application under review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := form.New(form.Config[portal.Application, form.ReviewForm]{
				Fetch:  a.api.GetApplication,
				ToForm: form.ReviewFormFrom,
				Submit: func(ctx context.Context, id string, f form.ReviewForm) (portal.Application, error) {
					review, err := f.Input()
					if err != nil {
						return portal.Application{}, err
					}
					return a.api.UpdateApplicationStatus(ctx, id, review)
				},
				Confirm:        a.dialog(),
				Navigate:       navigator{a: a},
				Route:          func(rec portal.Application) string { return "applications show " + rec.ID },
				ConfirmMessage: "Update application status?",
			})
			if err := ctrl.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			ctrl.Edit(func(f *form.ReviewForm) { applyFormFlags(cmd, patch, f, reviewFields) })
			return submit(cmd.Context(), a, ctrl)
		},
	}
	bindFormFlags(cmd, &patch, reviewFields)
	return cmd
}
