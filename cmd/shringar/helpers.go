// Shared helpers for shringar CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shringar-studio/shringar/internal/salon"
	"github.com/shringar-studio/shringar/internal/sqlite"
	"github.com/shringar-studio/shringar/pkg/form"
	"github.com/shringar-studio/shringar/pkg/types"
)

// openRegistry resolves the data directory, opens the SQLite store, and
// opens the collection registry over it. The caller must call the returned
// close function. Failures here are environment failures, not user
// mistakes, and exit with code 2.
func openRegistry() (*salon.Registry, func() error, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, sysError{fmt.Errorf("resolve data dir: %w", err)}
	}

	store, err := sqlite.Open(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	if err != nil {
		return nil, nil, sysError{fmt.Errorf("open store: %w", err)}
	}

	reg, err := salon.Open(store)
	if err != nil {
		store.Close()
		return nil, nil, sysError{fmt.Errorf("open collections: %w", err)}
	}

	return reg, store.Close, nil
}

// printJSON writes v as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// addFormFlags registers one string flag per form field. All form flags
// take a value, including boolean fields (--available=false).
func addFormFlags[T any](cmd *cobra.Command, fields []form.Field[T]) {
	for _, f := range fields {
		cmd.Flags().String(f.Name, "", f.Label)
	}
}

// applyFlags feeds every flag the user set on the command line into the
// form controller, one field-level update per flag. Flags that are not
// form fields (--json, --yes) are skipped.
func applyFlags[T any](cmd *cobra.Command, ctrl *form.Controller[T]) error {
	var applyErr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if applyErr != nil || !ctrl.Has(f.Name) {
			return
		}
		if err := ctrl.Apply(f.Name, f.Value.String()); err != nil {
			applyErr = fmt.Errorf("--%s: %w", f.Name, err)
		}
	})
	return applyErr
}
