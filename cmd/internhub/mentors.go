package main

import (
	"context"

	"github.com/spf13/cobra"

	"internhub/internal/form"
	"internhub/internal/listing"
	"internhub/internal/portal"
	"internhub/internal/view"
)

var mentorFields = []fieldFlag[form.MentorForm]{
	{"name", "full name", func(f *form.MentorForm) *string { return &f.Name }},
	{"email", "contact email", func(f *form.MentorForm) *string { return &f.Email }},
	{"position", "job title", func(f *form.MentorForm) *string { return &f.Position }},
	{"department", "department", func(f *form.MentorForm) *string { return &f.Department }},
	{"gender", "gender", func(f *form.MentorForm) *string { return &f.Gender }},
	{"phone", "phone number", func(f *form.MentorForm) *string { return &f.Phone }},
}

func newMentorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mentors",
		Aliases: []string{"mentor"},
		Short:   "Company mentors",
	}
	cmd.AddCommand(
		newListCmd(a, resource[portal.Mentor]{
			key:    "mentors",
			fetch:  func(a *app) listing.FetchFunc[portal.Mentor] { return a.api.ListMentors },
			fields: listing.MentorFields(),
			table:  view.MentorTable,
		}),
		newShowCmd(a, "mentor", func(a *app) func(context.Context, string) (portal.Mentor, error) { return a.api.GetMentor }, view.MentorCard),
		newMentorSaveCmd(a, false),
		newMentorSaveCmd(a, true),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a mentor",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if ok, err := confirmDelete(a, "mentor", args[0]); !ok || err != nil {
					return err
				}
				if err := a.api.DeleteMentor(cmd.Context(), args[0]); err != nil {
					return err
				}
				a.info("mentor %s deleted", args[0])
				return nil
			},
		},
	)
	return cmd
}

func newMentorSaveCmd(a *app, edit bool) *cobra.Command {
	var patch form.MentorForm
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a mentor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := form.New(form.Config[portal.Mentor, form.MentorForm]{
				Fetch:  a.api.GetMentor,
				ToForm: form.MentorFormFrom,
				Submit: func(ctx context.Context, id string, f form.MentorForm) (portal.Mentor, error) {
					in, err := f.Input()
					if err != nil {
						return portal.Mentor{}, err
					}
					if id == "" {
						return a.api.CreateMentor(ctx, in)
					}
					return a.api.UpdateMentor(ctx, id, in)
				},
				Confirm:        a.dialog(),
				Navigate:       navigator{a: a},
				Route:          func(m portal.Mentor) string { return "mentors show " + m.ID },
				ConfirmMessage: "Save mentor?",
			})
			if edit {
				if err := ctrl.Load(cmd.Context(), args[0]); err != nil {
					return err
				}
				ctrl.Edit(func(f *form.MentorForm) { applyFormFlags(cmd, patch, f, mentorFields) })
			} else {
				ctrl.Start(patch)
			}
			return submit(cmd.Context(), a, ctrl)
		},
	}
	if edit {
		cmd.Use = "edit <id>"
		cmd.Short = "Change fields of a mentor"
		cmd.Args = cobra.ExactArgs(1)
	}
	bindFormFlags(cmd, &patch, mentorFields)
	return cmd
}
