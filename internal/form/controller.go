package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCancelled = errors.New("submission cancelled")
	ErrNotLoaded = errors.New("no record loaded")
)

// Field is one input of a form as the user sees it.
type Field struct {
	Name     string
	Value    string
	Required bool
}

type Form interface {
	Fields() []Field
}

// Checker is implemented by forms whose values must also parse, such as
// numbers, dates and status names.
type Checker interface {
	Check() error
}

type ValidationError struct {
	Missing []string
	Invalid map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "required fields are empty: "+strings.Join(e.Missing, ", "))
	}
	for _, name := range sortedKeys(e.Invalid) {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Invalid[name]))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

func (e *ValidationError) invalid(field, reason string) {
	if e.Invalid == nil {
		e.Invalid = make(map[string]string)
	}
	e.Invalid[field] = reason
}

// Validate blocks any form whose required fields are blank, then lets a
// Checker reject values that do not parse.
func Validate(f Form) error {
	verr := &ValidationError{}
	for _, field := range f.Fields() {
		if field.Required && strings.TrimSpace(field.Value) == "" {
			verr.Missing = append(verr.Missing, field.Name)
		}
	}
	if !verr.empty() {
		return verr
	}
	if checker, ok := f.(Checker); ok {
		return checker.Check()
	}
	return nil
}

type Confirmer interface {
	Confirm(message string) (bool, error)
}

type Navigator interface {
	Navigate(route string)
}

type ConfirmFunc func(message string) (bool, error)

func (f ConfirmFunc) Confirm(message string) (bool, error) { return f(message) }

type NavigateFunc func(route string)

func (f NavigateFunc) Navigate(route string) { f(route) }

// Config wires a controller to its record type T and form type F.
type Config[T any, F Form] struct {
	Fetch          func(ctx context.Context, id string) (T, error)
	ToForm         func(T) F
	Submit         func(ctx context.Context, id string, form F) (T, error)
	Confirm        Confirmer
	Navigate       Navigator
	Route          func(T) string
	ConfirmMessage string
}

type Controller[T any, F Form] struct {
	cfg    Config[T, F]
	id     string
	record T
	form   F
	loaded bool
	err    error
}

func New[T any, F Form](cfg Config[T, F]) *Controller[T, F] {
	if cfg.ConfirmMessage == "" {
		cfg.ConfirmMessage = "Save changes?"
	}
	return &Controller[T, F]{cfg: cfg}
}

// Load fetches the record and seeds the form from it.
func (c *Controller[T, F]) Load(ctx context.Context, id string) error {
	record, err := c.cfg.Fetch(ctx, id)
	if err != nil {
		c.err = err
		return fmt.Errorf("load %s: %w", id, err)
	}
	c.id = id
	c.record = record
	c.form = c.cfg.ToForm(record)
	c.loaded = true
	c.err = nil
	return nil
}

// Start begins a new record from a blank or prefilled form.
func (c *Controller[T, F]) Start(f F) {
	var zero T
	c.id = ""
	c.record = zero
	c.form = f
	c.loaded = true
	c.err = nil
}

func (c *Controller[T, F]) Form() F {
	return c.form
}

func (c *Controller[T, F]) Edit(fn func(*F)) {
	fn(&c.form)
}

func (c *Controller[T, F]) Record() T {
	return c.record
}

func (c *Controller[T, F]) ID() string {
	return c.id
}

func (c *Controller[T, F]) Err() error {
	return c.err
}

// Submit validates, asks for confirmation, sends the form and navigates to
// the saved record. Nothing is sent when validation fails or the user
// declines.
func (c *Controller[T, F]) Submit(ctx context.Context) (T, error) {
	var zero T
	if !c.loaded {
		return zero, ErrNotLoaded
	}
	if err := Validate(c.form); err != nil {
		c.err = err
		return zero, err
	}
	if c.cfg.Confirm != nil {
		ok, err := c.cfg.Confirm.Confirm(c.cfg.ConfirmMessage)
		if err != nil {
			return zero, fmt.Errorf("confirm: %w", err)
		}
		if !ok {
			return zero, ErrCancelled
		}
	}
	saved, err := c.cfg.Submit(ctx, c.id, c.form)
	if err != nil {
		c.err = err
		return zero, err
	}
	c.record = saved
	c.err = nil
	if c.cfg.Navigate != nil && c.cfg.Route != nil {
		c.cfg.Navigate.Navigate(c.cfg.Route(saved))
	}
	return saved, nil
}
