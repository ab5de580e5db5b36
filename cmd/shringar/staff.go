// Staff commands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/shringar-studio/shringar/internal/salon"
	"github.com/shringar-studio/shringar/pkg/types"
	"github.com/shringar-studio/shringar/pkg/view"
)

func newStaffCmd() *cobra.Command {
	spec := crudSpec[types.Staff, *types.Staff]{
		use:    "staff",
		plural: "staff members",
		title:  "Staff",
		collection: func(reg *salon.Registry) *salon.StaffCollection {
			return reg.Staff
		},
		columns: func(reg *salon.Registry) []view.Column[types.Staff] {
			return salon.StaffColumns()
		},
		fields:   salon.StaffFields,
		defaults: salon.DefaultStaff,
		required: []string{"name", "email", "phone", "role"},
	}
	return spec.group()
}
