// Jewelry inventory commands.
package main

import (
	"github.com/spf13/cobra"

	"github.com/shringar-studio/shringar/internal/salon"
	"github.com/shringar-studio/shringar/pkg/types"
	"github.com/shringar-studio/shringar/pkg/view"
)

func newJewelryCmd() *cobra.Command {
	spec := crudSpec[types.Jewelry, *types.Jewelry]{
		use:    "jewelry",
		plural: "jewelry items",
		title:  "Jewelry Collection",
		collection: func(reg *salon.Registry) *salon.JewelryCollection {
			return reg.Jewelry
		},
		columns: func(reg *salon.Registry) []view.Column[types.Jewelry] {
			return salon.JewelryColumns()
		},
		fields:   salon.JewelryFields,
		defaults: salon.DefaultJewelry,
		required: []string{"name", "description"},
	}
	return spec.group()
}
