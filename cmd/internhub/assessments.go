package main

import (
	"context"

	"github.com/spf13/cobra"

	"internhub/internal/form"
	"internhub/internal/listing"
	"internhub/internal/portal"
	"internhub/internal/view"
)

var gradeFields = []fieldFlag[form.GradeForm]{
	{"grade", "grade, e.g. A or 85", func(f *form.GradeForm) *string { return &f.Grade }},
	{"feedback", "mentor feedback", func(f *form.GradeForm) *string { return &f.Feedback }},
	{"status", "finished, withdraw or not_started", func(f *form.GradeForm) *string { return &f.Status }},
}

func newAssessmentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assessments",
		Aliases: []string{"assessment"},
		Short:   "Internship assessments",
	}

	var status, program string
	list := newListCmd(a, resource[portal.Assessment]{
		key:    "assessments",
		fetch:  func(a *app) listing.FetchFunc[portal.Assessment] { return a.api.ListAssessments },
		fields: listing.AssessmentFields(),
		table:  view.AssessmentTable,
		query:  func() portal.ListQuery { return portal.ListQuery{Status: status, ProgramID: program} },
	})
	list.Flags().StringVar(&status, "status", "", "server-side filter by status")
	list.Flags().StringVar(&program, "program", "", "server-side filter by program id")

	cmd.AddCommand(
		list,
		newShowCmd(a, "assessment", func(a *app) func(context.Context, string) (portal.Assessment, error) { return a.api.GetAssessment }, view.AssessmentCard),
		newGradeCmd(a),
	)
	return cmd
}

func newGradeCmd(a *app) *cobra.Command {
	var patch form.GradeForm
	cmd := &cobra.Command{
		Use:   "grade <id>",
		Short: "Grade a student's assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := form.New(form.Config[portal.Assessment, form.GradeForm]{
				Fetch:  a.api.GetAssessment,
				ToForm: form.GradeFormFrom,
				Submit: func(ctx context.Context, id string, f form.GradeForm) (portal.Assessment, error) {
					in, err := f.Input()
					if err != nil {
						return portal.Assessment{}, err
					}
					return a.api.UpdateAssessment(ctx, id, in)
				},
				Confirm:        a.dialog(),
				Navigate:       navigator{a: a},
				Route:          func(as portal.Assessment) string { return "assessments show " + as.ID },
				ConfirmMessage: "Save assessment?",
			})
			if err := ctrl.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			ctrl.Edit(func(f *form.GradeForm) { applyFormFlags(cmd, patch, f, gradeFields) })
			return submit(cmd.Context(), a, ctrl)
		},
	}
	bindFormFlags(cmd, &patch, gradeFields)
	return cmd
}
