package types

// Staff is a salon employee. Specialties keeps its input order.
type Staff struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required"`
	Phone       string   `json:"phone" validate:"required"`
	Role        string   `json:"role" validate:"required"`
	Specialties []string `json:"specialties"`
	Available   bool     `json:"available"`
	Image       string   `json:"image,omitempty"`
}

func (s *Staff) EntityID() string      { return s.ID }
func (s *Staff) SetEntityID(id string) { s.ID = id }
