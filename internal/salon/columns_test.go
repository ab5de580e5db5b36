// Unit tests for the display columns: renderer output and dangling
// reference placeholders.
package salon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shringar-studio/shringar/pkg/types"
	"github.com/shringar-studio/shringar/pkg/view"
)

// cell renders the column named key for item, failing the test when the
// column set has no such key.
func cell[T any](t *testing.T, columns []view.Column[T], key string, item T) string {
	t.Helper()
	for _, c := range columns {
		if c.Key != key {
			continue
		}
		var raw any
		if c.Value != nil {
			raw = c.Value(item)
		}
		if c.Render != nil {
			return c.Render(raw, item)
		}
		return ""
	}
	t.Fatalf("no column %q", key)
	return ""
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0198ff3c", ShortID("0198ff3c-2f4a-7cc1-b8a1-d2e05a1b9f10"))
	assert.Equal(t, "1", ShortID("1"))
	assert.Equal(t, "12345678", ShortID("12345678"))
	assert.Equal(t, "", ShortID(""))
}

func TestServiceColumnRenderers(t *testing.T) {
	cols := ServiceColumns()
	svc := types.Service{ID: "0198ff3c-2f4a", Price: 500, Duration: 60, Available: true}

	assert.Equal(t, "0198ff3c", cell(t, cols, "id", svc))
	assert.Equal(t, "₹500", cell(t, cols, "price", svc))
	assert.Equal(t, "60 min", cell(t, cols, "duration", svc))
	assert.Equal(t, "Available", cell(t, cols, "available", svc))

	svc.Available = false
	assert.Equal(t, "Unavailable", cell(t, cols, "available", svc))
}

func TestClientColumnRenderers(t *testing.T) {
	cols := ClientColumns()
	client := types.Client{TotalVisits: 8}

	assert.Equal(t, "8 visits", cell(t, cols, "totalVisits", client))
}

func TestAppointmentColumnsResolveNames(t *testing.T) {
	clients := []types.Client{{ID: "c1", Name: "Priya Sharma"}}
	services := []types.Service{{ID: "s1", Name: "Facial Treatment"}}
	cols := AppointmentColumns(clients, services)

	appt := types.Appointment{ClientID: "c1", ServiceID: "s1", TotalAmount: 800}
	assert.Equal(t, "Priya Sharma", cell(t, cols, "clientId", appt))
	assert.Equal(t, "Facial Treatment", cell(t, cols, "serviceId", appt))
	assert.Equal(t, "₹800", cell(t, cols, "totalAmount", appt))
}

func TestAppointmentColumnsDanglingReferences(t *testing.T) {
	cols := AppointmentColumns(nil, nil)

	appt := types.Appointment{ClientID: "gone", ServiceID: "gone"}
	assert.Equal(t, "(deleted client)", cell(t, cols, "clientId", appt))
	assert.Equal(t, "(deleted service)", cell(t, cols, "serviceId", appt))
}

func TestStaffColumnRenderers(t *testing.T) {
	cols := StaffColumns()
	member := types.Staff{Specialties: []string{"Hair Styling", "Hair Coloring"}, Available: true}

	assert.Equal(t, "Hair Styling, Hair Coloring", cell(t, cols, "specialties", member))
	assert.Equal(t, "Available", cell(t, cols, "available", member))
}

func TestJewelryColumnRenderers(t *testing.T) {
	cols := JewelryColumns()
	ring := types.Jewelry{Category: types.JewelryPreciousStones, Price: 32000, Weight: 3.8, InStock: true}

	assert.Equal(t, "precious stones", cell(t, cols, "category", ring))
	assert.Equal(t, "₹32000", cell(t, cols, "price", ring))
	assert.Equal(t, "3.8g", cell(t, cols, "weight", ring))
	assert.Equal(t, "In Stock", cell(t, cols, "inStock", ring))

	ring.InStock = false
	assert.Equal(t, "Out of Stock", cell(t, cols, "inStock", ring))
}

func TestColumnsRenderThroughTable(t *testing.T) {
	reg := openRegistry(t)

	table := view.Table[types.Appointment]{
		Title:    "Appointments",
		AddLabel: "shringar appointment add",
		Columns:  AppointmentColumns(reg.Clients.Items(), reg.Services.Items()),
	}

	var buf strings.Builder
	require.NoError(t, table.Render(&buf, reg.Appointments.Items()))
	assert.Contains(t, buf.String(), "Priya Sharma")
	assert.Contains(t, buf.String(), "Hair Cut & Style")
}
