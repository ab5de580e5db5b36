// Client commands. The edit flow goes through the registry so the visit
// bookkeeping survives the update; the visit subcommand is the only way to
// change it.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shringar-studio/shringar/internal/salon"
	"github.com/shringar-studio/shringar/pkg/types"
	"github.com/shringar-studio/shringar/pkg/view"
)

func newClientCmd() *cobra.Command {
	spec := crudSpec[types.Client, *types.Client]{
		use:    "client",
		plural: "clients",
		title:  "Clients",
		collection: func(reg *salon.Registry) *salon.ClientCollection {
			return reg.Clients
		},
		columns: func(reg *salon.Registry) []view.Column[types.Client] {
			return salon.ClientColumns()
		},
		fields:   salon.ClientFields,
		defaults: salon.DefaultClient,
		required: []string{"name", "email", "phone", "address"},
		update: func(reg *salon.Registry, id string, payload types.Client) error {
			return reg.UpdateClient(id, payload)
		},
	}

	cmd := spec.group()
	cmd.AddCommand(newClientVisitCmd())
	return cmd
}

func newClientVisitCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "visit <id>",
		Short: "Record a client visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeStore, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeStore()

			client, err := reg.Clients.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("client %q: %w", args[0], err)
			}

			when := date
			if when == "" {
				when = time.Now().Format("2006-01-02")
			}
			if err := reg.RecordVisit(client.ID, when); err != nil {
				return fmt.Errorf("record visit: %w", err)
			}

			updated, err := reg.Clients.Get(client.ID)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(cmd, updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded visit for %s (%d visits)\n", updated.Name, updated.TotalVisits)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "visit date (default: today)")
	return cmd
}
