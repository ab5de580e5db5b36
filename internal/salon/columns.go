package salon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shringar-studio/shringar/pkg/types"
	"github.com/shringar-studio/shringar/pkg/view"
)

// Placeholders rendered when an appointment references a record that no
// longer exists. Dangling references are tolerated, never an error.
const (
	deletedClient  = "(deleted client)"
	deletedService = "(deleted service)"
)

// ShortID truncates an id to its first 8 characters for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// amount formats a price without a trailing fraction for whole values.
func amount(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64)
}

// ServiceColumns returns the column set for the service table.
func ServiceColumns() []view.Column[types.Service] {
	return []view.Column[types.Service]{
		{
			Key: "id", Label: "ID",
			Value:  func(s types.Service) any { return s.ID },
			Render: func(v any, _ types.Service) string { return ShortID(v.(string)) },
		},
		{
			Key: "name", Label: "Service Name",
			Value: func(s types.Service) any { return s.Name },
		},
		{
			Key: "category", Label: "Category",
			Value: func(s types.Service) any { return s.Category },
		},
		{
			Key: "price", Label: "Price",
			Value:  func(s types.Service) any { return s.Price },
			Render: func(v any, _ types.Service) string { return amount(v.(float64)) },
		},
		{
			Key: "duration", Label: "Duration",
			Value:  func(s types.Service) any { return s.Duration },
			Render: func(v any, _ types.Service) string { return fmt.Sprintf("%d min", v.(int)) },
		},
		{
			Key: "available", Label: "Status",
			Value:  func(s types.Service) any { return s.Available },
			Render: func(v any, _ types.Service) string { return availability(v.(bool)) },
		},
	}
}

// ClientColumns returns the column set for the client table.
func ClientColumns() []view.Column[types.Client] {
	return []view.Column[types.Client]{
		{
			Key: "id", Label: "ID",
			Value:  func(c types.Client) any { return c.ID },
			Render: func(v any, _ types.Client) string { return ShortID(v.(string)) },
		},
		{
			Key: "name", Label: "Name",
			Value: func(c types.Client) any { return c.Name },
		},
		{
			Key: "email", Label: "Email",
			Value: func(c types.Client) any { return c.Email },
		},
		{
			Key: "phone", Label: "Phone",
			Value: func(c types.Client) any { return c.Phone },
		},
		{
			Key: "totalVisits", Label: "Total Visits",
			Value:  func(c types.Client) any { return c.TotalVisits },
			Render: func(v any, _ types.Client) string { return fmt.Sprintf("%d visits", v.(int)) },
		},
	}
}

// AppointmentColumns returns the column set for the appointment table.
// Client and service names are resolved against the given sequences; a
// lookup miss renders a placeholder instead of failing.
func AppointmentColumns(clients []types.Client, services []types.Service) []view.Column[types.Appointment] {
	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}
	serviceNames := make(map[string]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}

	return []view.Column[types.Appointment]{
		{
			Key: "id", Label: "ID",
			Value:  func(a types.Appointment) any { return a.ID },
			Render: func(v any, _ types.Appointment) string { return ShortID(v.(string)) },
		},
		{
			Key: "clientId", Label: "Client",
			Value: func(a types.Appointment) any { return a.ClientID },
			Render: func(v any, _ types.Appointment) string {
				if name, ok := clientNames[v.(string)]; ok {
					return name
				}
				return deletedClient
			},
		},
		{
			Key: "serviceId", Label: "Service",
			Value: func(a types.Appointment) any { return a.ServiceID },
			Render: func(v any, _ types.Appointment) string {
				if name, ok := serviceNames[v.(string)]; ok {
					return name
				}
				return deletedService
			},
		},
		{
			Key: "date", Label: "Date",
			Value: func(a types.Appointment) any { return a.Date },
		},
		{
			Key: "time", Label: "Time",
			Value: func(a types.Appointment) any { return a.Time },
		},
		{
			Key: "status", Label: "Status",
			Value: func(a types.Appointment) any { return a.Status },
		},
		{
			Key: "totalAmount", Label: "Amount",
			Value:  func(a types.Appointment) any { return a.TotalAmount },
			Render: func(v any, _ types.Appointment) string { return amount(v.(float64)) },
		},
	}
}

// StaffColumns returns the column set for the staff table.
func StaffColumns() []view.Column[types.Staff] {
	return []view.Column[types.Staff]{
		{
			Key: "id", Label: "ID",
			Value:  func(s types.Staff) any { return s.ID },
			Render: func(v any, _ types.Staff) string { return ShortID(v.(string)) },
		},
		{
			Key: "name", Label: "Name",
			Value: func(s types.Staff) any { return s.Name },
		},
		{
			Key: "role", Label: "Role",
			Value: func(s types.Staff) any { return s.Role },
		},
		{
			Key: "specialties", Label: "Specialties",
			Value:  func(s types.Staff) any { return s.Specialties },
			Render: func(_ any, s types.Staff) string { return strings.Join(s.Specialties, ", ") },
		},
		{
			Key: "available", Label: "Status",
			Value:  func(s types.Staff) any { return s.Available },
			Render: func(v any, _ types.Staff) string { return availability(v.(bool)) },
		},
	}
}

// JewelryColumns returns the column set for the jewelry table.
func JewelryColumns() []view.Column[types.Jewelry] {
	return []view.Column[types.Jewelry]{
		{
			Key: "id", Label: "ID",
			Value:  func(j types.Jewelry) any { return j.ID },
			Render: func(v any, _ types.Jewelry) string { return ShortID(v.(string)) },
		},
		{
			Key: "name", Label: "Name",
			Value: func(j types.Jewelry) any { return j.Name },
		},
		{
			Key: "category", Label: "Category",
			Value:  func(j types.Jewelry) any { return j.Category },
			Render: func(v any, _ types.Jewelry) string { return strings.ReplaceAll(v.(string), "-", " ") },
		},
		{
			Key: "price", Label: "Price",
			Value:  func(j types.Jewelry) any { return j.Price },
			Render: func(v any, _ types.Jewelry) string { return amount(v.(float64)) },
		},
		{
			Key: "weight", Label: "Weight",
			Value:  func(j types.Jewelry) any { return j.Weight },
			Render: func(v any, _ types.Jewelry) string { return strconv.FormatFloat(v.(float64), 'f', -1, 64) + "g" },
		},
		{
			Key: "inStock", Label: "Stock",
			Value: func(j types.Jewelry) any { return j.InStock },
			Render: func(v any, _ types.Jewelry) string {
				if v.(bool) {
					return "In Stock"
				}
				return "Out of Stock"
			},
		},
	}
}

func availability(available bool) string {
	if available {
		return "Available"
	}
	return "Unavailable"
}
