package types

// Appointment statuses. An appointment progresses through these during its
// lifecycle.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// validAppointmentStatuses is the set of recognized appointment statuses.
var validAppointmentStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// Appointment books a client for a service at a date and time. ClientID and
// ServiceID are not checked against the client and service collections;
// references to deleted records are tolerated and rendered with a
// placeholder.
type Appointment struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"clientId" validate:"required"`
	ServiceID   string  `json:"serviceId" validate:"required"`
	Date        string  `json:"date" validate:"required"` // YYYY-MM-DD
	Time        string  `json:"time" validate:"required"` // HH:MM
	Status      string  `json:"status" validate:"required"`
	Notes       string  `json:"notes,omitempty"`
	TotalAmount float64 `json:"totalAmount" validate:"min=0"`
}

func (a *Appointment) EntityID() string      { return a.ID }
func (a *Appointment) SetEntityID(id string) { a.ID = id }

// SetStatus sets the appointment status to the given value.
// Returns ErrInvalidStatus if the status is not recognized.
// Idempotent: setting the current status succeeds without error.
func (a *Appointment) SetStatus(status string) error {
	if !validAppointmentStatuses[status] {
		return ErrInvalidStatus
	}
	a.Status = status
	return nil
}

// ValidAppointmentStatus reports whether status is a recognized appointment
// status.
func ValidAppointmentStatus(status string) bool {
	return validAppointmentStatuses[status]
}
