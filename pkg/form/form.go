// Package form implements the draft controller shared by the create and
// edit flows. A controller holds one mutable draft record, applies
// field-level updates to it, and emits the finished payload on submission.
// Whether the payload becomes an add or an update is the caller's call,
// based on whether an existing entity seeded the draft.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Controller states. A controller starts in editing and moves exactly once
// to one of the terminal states.
const (
	StateEditing   = "editing"
	StateSubmitted = "submitted"
	StateCancelled = "cancelled"
)

// Form errors.
var (
	ErrFormClosed    = errors.New("form already submitted or cancelled")
	ErrUnknownField  = errors.New("unknown field")
	ErrRequiredField = errors.New("required field is empty")
	ErrNotANumber    = errors.New("not a number")
	ErrNotABool      = errors.New("not a boolean")
)

// validate checks the validate:"..." struct tags on submitted drafts.
var validate = validator.New()

// Field describes one editable field of a draft: its name, display label,
// whether submission requires it to be non-empty, and the accessor pair
// that writes a raw input string into the draft and reads it back for
// display.
type Field[T any] struct {
	Name     string
	Label    string
	Required bool
	Set      func(draft *T, raw string) error
	Get      func(draft T) string
}

// Controller manages a single draft record. Exactly two states are
// reachable: editing, entered on construction, and terminal (submitted or
// cancelled), entered once and never left. No mutation is defined after a
// terminal transition.
type Controller[T any] struct {
	fields []Field[T]
	byName map[string]int
	draft  T
	state  string
}

// New builds a controller whose draft starts from initial: the per-field
// defaults for a create flow, or an existing entity's current values for
// an edit flow.
func New[T any](fields []Field[T], initial T) *Controller[T] {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		byName[f.Name] = i
	}
	return &Controller[T]{
		fields: fields,
		byName: byName,
		draft:  initial,
		state:  StateEditing,
	}
}

// State returns the controller's current state.
func (c *Controller[T]) State() string { return c.state }

// Has reports whether the controller knows a field with the given name.
func (c *Controller[T]) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Draft returns the current draft values.
func (c *Controller[T]) Draft() T { return c.draft }

// Apply replaces one field of the draft with the coerced raw value,
// leaving all other fields untouched.
// Returns ErrUnknownField for an unrecognized name and ErrFormClosed after
// a terminal transition. Coercion errors come from the field's Set.
func (c *Controller[T]) Apply(name, raw string) error {
	if c.state != StateEditing {
		return ErrFormClosed
	}
	i, ok := c.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return c.fields[i].Set(&c.draft, raw)
}

// Submit finalizes the draft and emits it as the payload. Every field
// marked required must be non-empty and the draft must pass its
// validate:"..." struct tags; otherwise submission is suppressed, no
// payload is emitted, and the controller stays editing.
func (c *Controller[T]) Submit() (T, error) {
	var zero T
	if c.state != StateEditing {
		return zero, ErrFormClosed
	}
	for _, f := range c.fields {
		if f.Required && f.Get != nil && f.Get(c.draft) == "" {
			return zero, fmt.Errorf("%w: %s", ErrRequiredField, f.Name)
		}
	}
	if err := validate.Struct(c.draft); err != nil {
		return zero, fmt.Errorf("validate draft: %w", err)
	}
	c.state = StateSubmitted
	return c.draft, nil
}

// Cancel discards the draft without persisting anything.
// Returns ErrFormClosed if the controller is already terminal.
func (c *Controller[T]) Cancel() error {
	if c.state != StateEditing {
		return ErrFormClosed
	}
	c.state = StateCancelled
	return nil
}

// ParseFloat coerces raw input text to a number. Non-numeric input is
// rejected with ErrNotANumber instead of silently becoming zero.
func ParseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	return v, nil
}

// ParseInt coerces raw input text to an integer. Non-numeric input is
// rejected with ErrNotANumber.
func ParseInt(raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, raw)
	}
	return v, nil
}

// ParseBool coerces raw input text to a boolean.
func ParseBool(raw string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrNotABool, raw)
	}
	return v, nil
}
