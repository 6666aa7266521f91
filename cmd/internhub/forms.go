package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"internhub/internal/form"
)

// fieldFlag binds one string field of form F to a command flag.
type fieldFlag[F any] struct {
	name  string
	usage string
	field func(*F) *string
}

func bindFormFlags[F any](cmd *cobra.Command, patch *F, fields []fieldFlag[F]) {
	for _, f := range fields {
		cmd.Flags().StringVar(f.field(patch), f.name, "", f.usage)
	}
}

// applyFormFlags copies only the flags the user set onto a loaded form.
func applyFormFlags[F any](cmd *cobra.Command, patch F, target *F, fields []fieldFlag[F]) {
	for _, f := range fields {
		if cmd.Flags().Changed(f.name) {
			*f.field(target) = *f.field(&patch)
		}
	}
}

// submit runs the controller and turns a declined confirmation into a notice.
func submit[T any, F form.Form](ctx context.Context, a *app, ctrl *form.Controller[T, F]) error {
	_, err := ctrl.Submit(ctx)
	if errors.Is(err, form.ErrCancelled) {
		a.info("cancelled, nothing was sent")
		return nil
	}
	return err
}

func confirmDelete(a *app, noun, id string) (bool, error) {
	ok, err := a.dialog().Confirm("Delete " + noun + " " + id + "?")
	if err != nil {
		return false, err
	}
	if !ok {
		a.info("cancelled, nothing was deleted")
	}
	return ok, nil
}
