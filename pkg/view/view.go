// Package view renders an entity collection as a text table driven by a
// column descriptor set. The view is pure presentation: it performs no
// validation, no sorting, no filtering, and never mutates the data it is
// given. Add, edit, and delete intents belong to the caller; rows carry an
// actions column naming them.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Column pairs an entity field with a display label and an optional custom
// renderer. Value extracts the raw field value; when Render is nil the raw
// value is stringified as-is.
type Column[T any] struct {
	Key    string
	Label  string
	Value  func(item T) any
	Render func(value any, item T) string
}

// Table describes one tabular CRUD view: a title, the command the caller
// exposes for adding records, and the ordered column set. Column order is
// rendering order; row order is the input sequence's order.
type Table[T any] struct {
	Title    string
	AddLabel string
	Columns  []Column[T]
}

// actionsLabel heads the trailing column naming the per-row intents.
const actionsLabel = "ACTIONS"

// Render writes the table for data to w. When data is empty, a single
// placeholder row spanning all columns plus the actions column points the
// reader at the add action instead of an empty body.
func (t Table[T]) Render(w io.Writer, data []T) error {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	if t.Title != "" {
		fmt.Fprintln(tw, t.Title)
	}

	headers := make([]string, 0, len(t.Columns)+1)
	dashes := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		label := strings.ToUpper(c.Label)
		headers = append(headers, label)
		dashes = append(dashes, strings.Repeat("-", len(label)))
	}
	headers = append(headers, actionsLabel)
	dashes = append(dashes, strings.Repeat("-", len(actionsLabel)))
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	if len(data) == 0 {
		fmt.Fprintf(tw, "No records yet. Use %q to get started.\n", t.AddLabel)
	}
	for _, item := range data {
		cells := make([]string, 0, len(t.Columns)+1)
		for _, c := range t.Columns {
			cells = append(cells, t.cell(c, item))
		}
		cells = append(cells, "edit, delete")
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	// Trim trailing padding that tabwriter leaves on short lines.
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// cell formats one column value for one row. The raw field value is passed
// through the column's Render transform when present; otherwise it is
// stringified.
func (t Table[T]) cell(c Column[T], item T) string {
	var raw any
	if c.Value != nil {
		raw = c.Value(item)
	}
	if c.Render != nil {
		return c.Render(raw, item)
	}
	return fmt.Sprint(raw)
}
