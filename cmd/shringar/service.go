// Service commands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/shringar-studio/shringar/internal/salon"
	"github.com/shringar-studio/shringar/pkg/types"
	"github.com/shringar-studio/shringar/pkg/view"
)

func newServiceCmd() *cobra.Command {
	spec := crudSpec[types.Service, *types.Service]{
		use:    "service",
		plural: "services",
		title:  "Services",
		collection: func(reg *salon.Registry) *salon.ServiceCollection {
			return reg.Services
		},
		columns: func(reg *salon.Registry) []view.Column[types.Service] {
			return salon.ServiceColumns()
		},
		fields:   salon.ServiceFields,
		defaults: salon.DefaultService,
		required: []string{"name", "description"},
	}
	return spec.group()
}
