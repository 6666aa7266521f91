package main

import (
	"context"

	"github.com/spf13/cobra"

	"internhub/internal/form"
	"internhub/internal/listing"
	"internhub/internal/portal"
	"internhub/internal/view"
)

var programFields = []fieldFlag[form.ProgramForm]{
	{"title", "program title", func(f *form.ProgramForm) *string { return &f.Title }},
	{"company", "hosting company", func(f *form.ProgramForm) *string { return &f.Company }},
	{"location", "city or remote", func(f *form.ProgramForm) *string { return &f.Location }},
	{"category", "field of work", func(f *form.ProgramForm) *string { return &f.Category }},
	{"duration", "e.g. 3 months", func(f *form.ProgramForm) *string { return &f.Duration }},
	{"quota", "number of places", func(f *form.ProgramForm) *string { return &f.Quota }},
	{"start", "start date (YYYY-MM-DD)", func(f *form.ProgramForm) *string { return &f.StartDate }},
	{"end", "end date (YYYY-MM-DD)", func(f *form.ProgramForm) *string { return &f.EndDate }},
	{"deadline", "registration deadline (YYYY-MM-DD)", func(f *form.ProgramForm) *string { return &f.Deadline }},
	{"status", "open, closed or draft", func(f *form.ProgramForm) *string { return &f.Status }},
	{"mentor", "mentor id", func(f *form.ProgramForm) *string { return &f.MentorID }},
	{"description", "free text", func(f *form.ProgramForm) *string { return &f.Description }},
}

func newProgramsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "programs",
		Aliases: []string{"program"},
		Short:   "Internship programs",
	}

	var status string
	list := newListCmd(a, resource[portal.Program]{
		key:    "programs",
		fetch:  func(a *app) listing.FetchFunc[portal.Program] { return a.api.ListPrograms },
		fields: listing.ProgramFields(),
		table:  view.ProgramTable,
		query:  func() portal.ListQuery { return portal.ListQuery{Status: status} },
	})
	list.Flags().StringVar(&status, "status", "", "server-side filter: open, closed or draft")

	cmd.AddCommand(
		list,
		newShowCmd(a, "program", func(a *app) func(context.Context, string) (portal.Program, error) { return a.api.GetProgram }, view.ProgramCard),
		newProgramSaveCmd(a, false),
		newProgramSaveCmd(a, true),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a program",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if ok, err := confirmDelete(a, "program", args[0]); !ok || err != nil {
					return err
				}
				if err := a.api.DeleteProgram(cmd.Context(), args[0]); err != nil {
					return err
				}
				a.info("program %s deleted", args[0])
				return nil
			},
		},
	)
	return cmd
}

func programController(a *app) *form.Controller[portal.Program, form.ProgramForm] {
	return form.New(form.Config[portal.Program, form.ProgramForm]{
		Fetch:  a.api.GetProgram,
		ToForm: form.ProgramFormFrom,
		Submit: func(ctx context.Context, id string, f form.ProgramForm) (portal.Program, error) {
			in, err := f.Input()
			if err != nil {
				return portal.Program{}, err
			}
			if id == "" {
				return a.api.CreateProgram(ctx, in)
			}
			return a.api.UpdateProgram(ctx, id, in)
		},
		Confirm:        a.dialog(),
		Navigate:       navigator{a: a},
		Route:          func(p portal.Program) string { return "programs show " + p.ID },
		ConfirmMessage: "Save program?",
	})
}

func newProgramSaveCmd(a *app, edit bool) *cobra.Command {
	var patch form.ProgramForm
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := programController(a)
			if edit {
				if err := ctrl.Load(cmd.Context(), args[0]); err != nil {
					return err
				}
				ctrl.Edit(func(f *form.ProgramForm) { applyFormFlags(cmd, patch, f, programFields) })
			} else {
				ctrl.Start(patch)
			}
			return submit(cmd.Context(), a, ctrl)
		},
	}
	if edit {
		cmd.Use = "edit <id>"
		cmd.Short = "Change fields of a program"
		cmd.Args = cobra.ExactArgs(1)
	}
	bindFormFlags(cmd, &patch, programFields)
	return cmd
}
