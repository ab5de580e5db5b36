// Appointment commands. Client and service references are taken as given:
// the book tolerates references to records that were deleted later.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shringar-studio/shringar/internal/salon"
	"github.com/shringar-studio/shringar/pkg/types"
	"github.com/shringar-studio/shringar/pkg/view"
)

func newAppointmentCmd() *cobra.Command {
	spec := crudSpec[types.Appointment, *types.Appointment]{
		use:    "appointment",
		plural: "appointments",
		title:  "Appointments",
		collection: func(reg *salon.Registry) *salon.AppointmentCollection {
			return reg.Appointments
		},
		columns: func(reg *salon.Registry) []view.Column[types.Appointment] {
			return salon.AppointmentColumns(reg.Clients.Items(), reg.Services.Items())
		},
		fields:   salon.AppointmentFields,
		defaults: salon.DefaultAppointment,
		required: []string{"client", "service", "date", "time"},
	}

	cmd := spec.group()
	cmd.AddCommand(newAppointmentCompleteCmd())
	return cmd
}

func newAppointmentCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark an appointment completed and record the client visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeStore, err := openRegistry()
			if err != nil {
				return err
			}
			defer closeStore()

			appt, err := reg.Appointments.Resolve(args[0])
			if err != nil {
				return fmt.Errorf("appointment %q: %w", args[0], err)
			}

			completed, err := reg.CompleteAppointment(appt.ID)
			if err != nil {
				return fmt.Errorf("complete appointment: %w", err)
			}

			if flagJSON {
				return printJSON(cmd, completed)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed appointment: %s\n", salon.ShortID(completed.ID))
			return nil
		},
	}
}
