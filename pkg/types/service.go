package types

// Service categories. Every service belongs to exactly one.
const (
	CategoryHair   = "hair"
	CategoryBeauty = "beauty"
	CategoryNails  = "nails"
	CategorySpa    = "spa"
)

// validServiceCategories is the set of recognized service categories.
var validServiceCategories = map[string]bool{
	CategoryHair:   true,
	CategoryBeauty: true,
	CategoryNails:  true,
	CategorySpa:    true,
}

// Service is a treatment the salon offers to clients.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	Duration    int     `json:"duration" validate:"min=1"` // minutes
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image,omitempty"`
	Available   bool    `json:"available"`
}

func (s *Service) EntityID() string      { return s.ID }
func (s *Service) SetEntityID(id string) { s.ID = id }

// SetCategory sets the service category.
// Returns ErrInvalidCategory if the category is not recognized.
func (s *Service) SetCategory(category string) error {
	if !validServiceCategories[category] {
		return ErrInvalidCategory
	}
	s.Category = category
	return nil
}

// ValidServiceCategory reports whether category is a recognized service
// category.
func ValidServiceCategory(category string) bool {
	return validServiceCategories[category]
}
