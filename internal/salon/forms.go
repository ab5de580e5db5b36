package salon

import (
	"strconv"
	"strings"

	"github.com/shringar-studio/shringar/pkg/form"
	"github.com/shringar-studio/shringar/pkg/types"
)

// Form field sets, one per entity type. Field names double as CLI flag
// names. The id is never a form field: the store assigns it on add and
// preserves it on update. Client visit bookkeeping is likewise absent from
// the editable payload; it survives edits untouched.

// DefaultService returns the create-flow draft for a service.
func DefaultService() types.Service {
	return types.Service{Duration: 60, Category: types.CategoryHair, Available: true}
}

// ServiceFields returns the form fields for a service draft.
func ServiceFields() []form.Field[types.Service] {
	return []form.Field[types.Service]{
		{
			Name: "name", Label: "Service Name", Required: true,
			Set: func(d *types.Service, raw string) error { d.Name = raw; return nil },
			Get: func(d types.Service) string { return d.Name },
		},
		{
			Name: "description", Label: "Description", Required: true,
			Set: func(d *types.Service, raw string) error { d.Description = raw; return nil },
			Get: func(d types.Service) string { return d.Description },
		},
		{
			Name: "price", Label: "Price",
			Set: func(d *types.Service, raw string) error {
				v, err := form.ParseFloat(raw)
				if err != nil {
					return err
				}
				d.Price = v
				return nil
			},
			Get: func(d types.Service) string { return strconv.FormatFloat(d.Price, 'f', -1, 64) },
		},
		{
			Name: "duration", Label: "Duration (minutes)",
			Set: func(d *types.Service, raw string) error {
				v, err := form.ParseInt(raw)
				if err != nil {
					return err
				}
				d.Duration = v
				return nil
			},
			Get: func(d types.Service) string { return strconv.Itoa(d.Duration) },
		},
		{
			Name: "category", Label: "Category", Required: true,
			Set: func(d *types.Service, raw string) error { return d.SetCategory(raw) },
			Get: func(d types.Service) string { return d.Category },
		},
		{
			Name: "image", Label: "Image",
			Set: func(d *types.Service, raw string) error { d.Image = raw; return nil },
			Get: func(d types.Service) string { return d.Image },
		},
		{
			Name: "available", Label: "Available",
			Set: func(d *types.Service, raw string) error {
				v, err := form.ParseBool(raw)
				if err != nil {
					return err
				}
				d.Available = v
				return nil
			},
			Get: func(d types.Service) string { return strconv.FormatBool(d.Available) },
		},
	}
}

// DefaultClient returns the create-flow draft for a client. The visit
// counter starts at zero.
func DefaultClient() types.Client {
	return types.Client{}
}

// ClientFields returns the form fields for a client draft.
func ClientFields() []form.Field[types.Client] {
	return []form.Field[types.Client]{
		{
			Name: "name", Label: "Name", Required: true,
			Set: func(d *types.Client, raw string) error { d.Name = raw; return nil },
			Get: func(d types.Client) string { return d.Name },
		},
		{
			Name: "email", Label: "Email", Required: true,
			Set: func(d *types.Client, raw string) error { d.Email = raw; return nil },
			Get: func(d types.Client) string { return d.Email },
		},
		{
			Name: "phone", Label: "Phone", Required: true,
			Set: func(d *types.Client, raw string) error { d.Phone = raw; return nil },
			Get: func(d types.Client) string { return d.Phone },
		},
		{
			Name: "address", Label: "Address", Required: true,
			Set: func(d *types.Client, raw string) error { d.Address = raw; return nil },
			Get: func(d types.Client) string { return d.Address },
		},
		{
			Name: "birth-date", Label: "Birth Date",
			Set: func(d *types.Client, raw string) error { d.BirthDate = raw; return nil },
			Get: func(d types.Client) string { return d.BirthDate },
		},
		{
			Name: "preferences", Label: "Preferences",
			Set: func(d *types.Client, raw string) error { d.Preferences = raw; return nil },
			Get: func(d types.Client) string { return d.Preferences },
		},
	}
}

// DefaultAppointment returns the create-flow draft for an appointment.
func DefaultAppointment() types.Appointment {
	return types.Appointment{Status: types.StatusPending}
}

// AppointmentFields returns the form fields for an appointment draft.
func AppointmentFields() []form.Field[types.Appointment] {
	return []form.Field[types.Appointment]{
		{
			Name: "client", Label: "Client ID", Required: true,
			Set: func(d *types.Appointment, raw string) error { d.ClientID = raw; return nil },
			Get: func(d types.Appointment) string { return d.ClientID },
		},
		{
			Name: "service", Label: "Service ID", Required: true,
			Set: func(d *types.Appointment, raw string) error { d.ServiceID = raw; return nil },
			Get: func(d types.Appointment) string { return d.ServiceID },
		},
		{
			Name: "date", Label: "Date", Required: true,
			Set: func(d *types.Appointment, raw string) error { d.Date = raw; return nil },
			Get: func(d types.Appointment) string { return d.Date },
		},
		{
			Name: "time", Label: "Time", Required: true,
			Set: func(d *types.Appointment, raw string) error { d.Time = raw; return nil },
			Get: func(d types.Appointment) string { return d.Time },
		},
		{
			Name: "status", Label: "Status", Required: true,
			Set: func(d *types.Appointment, raw string) error { return d.SetStatus(raw) },
			Get: func(d types.Appointment) string { return d.Status },
		},
		{
			Name: "notes", Label: "Notes",
			Set: func(d *types.Appointment, raw string) error { d.Notes = raw; return nil },
			Get: func(d types.Appointment) string { return d.Notes },
		},
		{
			Name: "amount", Label: "Total Amount",
			Set: func(d *types.Appointment, raw string) error {
				v, err := form.ParseFloat(raw)
				if err != nil {
					return err
				}
				d.TotalAmount = v
				return nil
			},
			Get: func(d types.Appointment) string { return strconv.FormatFloat(d.TotalAmount, 'f', -1, 64) },
		},
	}
}

// DefaultStaff returns the create-flow draft for a staff member.
func DefaultStaff() types.Staff {
	return types.Staff{Available: true}
}

// StaffFields returns the form fields for a staff draft. Specialties are
// entered as a comma-separated list and keep their input order.
func StaffFields() []form.Field[types.Staff] {
	return []form.Field[types.Staff]{
		{
			Name: "name", Label: "Name", Required: true,
			Set: func(d *types.Staff, raw string) error { d.Name = raw; return nil },
			Get: func(d types.Staff) string { return d.Name },
		},
		{
			Name: "email", Label: "Email", Required: true,
			Set: func(d *types.Staff, raw string) error { d.Email = raw; return nil },
			Get: func(d types.Staff) string { return d.Email },
		},
		{
			Name: "phone", Label: "Phone", Required: true,
			Set: func(d *types.Staff, raw string) error { d.Phone = raw; return nil },
			Get: func(d types.Staff) string { return d.Phone },
		},
		{
			Name: "role", Label: "Role", Required: true,
			Set: func(d *types.Staff, raw string) error { d.Role = raw; return nil },
			Get: func(d types.Staff) string { return d.Role },
		},
		{
			Name: "specialties", Label: "Specialties",
			Set: func(d *types.Staff, raw string) error {
				d.Specialties = splitList(raw)
				return nil
			},
			Get: func(d types.Staff) string { return strings.Join(d.Specialties, ", ") },
		},
		{
			Name: "available", Label: "Available",
			Set: func(d *types.Staff, raw string) error {
				v, err := form.ParseBool(raw)
				if err != nil {
					return err
				}
				d.Available = v
				return nil
			},
			Get: func(d types.Staff) string { return strconv.FormatBool(d.Available) },
		},
		{
			Name: "image", Label: "Image",
			Set: func(d *types.Staff, raw string) error { d.Image = raw; return nil },
			Get: func(d types.Staff) string { return d.Image },
		},
	}
}

// DefaultJewelry returns the create-flow draft for a jewelry item.
func DefaultJewelry() types.Jewelry {
	return types.Jewelry{Category: types.JewelryGold, InStock: true}
}

// JewelryFields returns the form fields for a jewelry draft.
func JewelryFields() []form.Field[types.Jewelry] {
	return []form.Field[types.Jewelry]{
		{
			Name: "name", Label: "Item Name", Required: true,
			Set: func(d *types.Jewelry, raw string) error { d.Name = raw; return nil },
			Get: func(d types.Jewelry) string { return d.Name },
		},
		{
			Name: "price", Label: "Price",
			Set: func(d *types.Jewelry, raw string) error {
				v, err := form.ParseFloat(raw)
				if err != nil {
					return err
				}
				d.Price = v
				return nil
			},
			Get: func(d types.Jewelry) string { return strconv.FormatFloat(d.Price, 'f', -1, 64) },
		},
		{
			Name: "category", Label: "Category", Required: true,
			Set: func(d *types.Jewelry, raw string) error { return d.SetCategory(raw) },
			Get: func(d types.Jewelry) string { return d.Category },
		},
		{
			Name: "weight", Label: "Weight (grams)",
			Set: func(d *types.Jewelry, raw string) error {
				v, err := form.ParseFloat(raw)
				if err != nil {
					return err
				}
				d.Weight = v
				return nil
			},
			Get: func(d types.Jewelry) string { return strconv.FormatFloat(d.Weight, 'f', -1, 64) },
		},
		{
			Name: "description", Label: "Description", Required: true,
			Set: func(d *types.Jewelry, raw string) error { d.Description = raw; return nil },
			Get: func(d types.Jewelry) string { return d.Description },
		},
		{
			Name: "image", Label: "Image",
			Set: func(d *types.Jewelry, raw string) error { d.Image = raw; return nil },
			Get: func(d types.Jewelry) string { return d.Image },
		},
		{
			Name: "in-stock", Label: "In Stock",
			Set: func(d *types.Jewelry, raw string) error {
				v, err := form.ParseBool(raw)
				if err != nil {
					return err
				}
				d.InStock = v
				return nil
			},
			Get: func(d types.Jewelry) string { return strconv.FormatBool(d.InStock) },
		},
	}
}

// splitList parses a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
