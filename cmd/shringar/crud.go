// Generic list/add/edit/delete command set shared by every entity group.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shringar-studio/shringar/internal/salon"
	"github.com/shringar-studio/shringar/pkg/collection"
	"github.com/shringar-studio/shringar/pkg/form"
	"github.com/shringar-studio/shringar/pkg/types"
	"github.com/shringar-studio/shringar/pkg/view"
)

// crudSpec binds one entity type to its collection, column set, and form
// fields. group builds the cobra command set from it. Edit and delete
// accept a full id or a unique prefix of one.
type crudSpec[T any, PT interface {
	*T
	types.Entity
}] struct {
	use        string // singular noun: "service"
	plural     string // counters and headings: "services"
	title      string // table title
	collection func(reg *salon.Registry) *collection.Persisted[T, PT]
	columns    func(reg *salon.Registry) []view.Column[T]
	fields     func() []form.Field[T]
	defaults   func() T

	// required lists the flags cobra marks required on add, mirroring
	// the required fields of the form.
	required []string

	// update overrides the plain collection update for entities with
	// splice rules (client visit bookkeeping). nil means plain update.
	update func(reg *salon.Registry, id string, payload T) error
}

// group returns the entity command group with list, add, edit, and delete
// registered.
func (s crudSpec[T, PT]) group() *cobra.Command {
	cmd := &cobra.Command{
		Use:   s.use,
		Short: fmt.Sprintf("Manage %s", s.plural),
	}
	cmd.AddCommand(s.listCmd(), s.addCmd(), s.editCmd(), s.deleteCmd())
	return cmd
}

func (s crudSpec[T, PT]) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s", s.plural),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeStore, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeStore()

			data := s.collection(reg).Items()
			if flagJSON {
				return printJSON(cmd, data)
			}

			table := view.Table[T]{
				Title:    s.title,
				AddLabel: fmt.Sprintf("shringar %s add", s.use),
				Columns:  s.columns(reg),
			}
			if err := table.Render(cmd.OutOrStdout(), data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d %s\n", len(data), s.plural)
			return nil
		},
	}
}

func (s crudSpec[T, PT]) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a new %s", s.use),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeStore, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeStore()

			ctrl := form.New(s.fields(), s.defaults())
			if err := applyFlags(cmd, ctrl); err != nil {
				return err
			}
			payload, err := ctrl.Submit()
			if err != nil {
				return err
			}

			coll := s.collection(reg)
			id, err := coll.Add(payload)
			if err != nil {
				return fmt.Errorf("create %s: %w", s.use, err)
			}

			if flagJSON {
				if stored, err := coll.Get(id); err == nil {
					return printJSON(cmd, stored)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s: %s\n", s.use, id)
			return nil
		},
	}
	addFormFlags(cmd, s.fields())
	for _, name := range s.required {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (s crudSpec[T, PT]) editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: fmt.Sprintf("Edit an existing %s", s.use),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeStore, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeStore()

			coll := s.collection(reg)
			existing, err := coll.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("%s %q: %w", s.use, args[0], err)
			}
			id := PT(&existing).EntityID()

			ctrl := form.New(s.fields(), existing)
			if err := applyFlags(cmd, ctrl); err != nil {
				return err
			}
			payload, err := ctrl.Submit()
			if err != nil {
				return err
			}

			if s.update != nil {
				err = s.update(reg, id, payload)
			} else {
				err = coll.Update(id, payload)
			}
			if err != nil {
				return fmt.Errorf("update %s: %w", s.use, err)
			}

			if flagJSON {
				if stored, err := coll.Get(id); err == nil {
					return printJSON(cmd, stored)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", s.use, id)
			return nil
		},
	}
	addFormFlags(cmd, s.fields())
	return cmd
}

func (s crudSpec[T, PT]) deleteCmd() *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", s.use),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeStore, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeStore()

			coll := s.collection(reg)
			existing, err := coll.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("%s %q: %w", s.use, args[0], err)
			}
			id := PT(&existing).EntityID()

			if !assumeYes && !confirm(fmt.Sprintf("Delete %s %s?", s.use, salon.ShortID(id))) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			if err := coll.Delete(id); err != nil {
				return fmt.Errorf("delete %s: %w", s.use, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %s\n", s.use, id)
			return nil
		},
	}
	cmd.Flags().BoolVar(&assumeYes, "yes", false, "skip the confirmation prompt")
	return cmd
}
