package types

// Jewelry categories.
const (
	JewelryGold           = "gold"
	JewelrySilver         = "silver"
	JewelryDiamond        = "diamond"
	JewelryPreciousStones = "precious-stones"
)

// validJewelryCategories is the set of recognized jewelry categories.
var validJewelryCategories = map[string]bool{
	JewelryGold:           true,
	JewelrySilver:         true,
	JewelryDiamond:        true,
	JewelryPreciousStones: true,
}

// Jewelry is an inventory item in the jewelry collection.
type Jewelry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	Category    string  `json:"category" validate:"required"`
	Weight      float64 `json:"weight" validate:"min=0"` // grams
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image,omitempty"`
	InStock     bool    `json:"inStock"`
}

func (j *Jewelry) EntityID() string      { return j.ID }
func (j *Jewelry) SetEntityID(id string) { j.ID = id }

// SetCategory sets the jewelry category.
// Returns ErrInvalidCategory if the category is not recognized.
func (j *Jewelry) SetCategory(category string) error {
	if !validJewelryCategories[category] {
		return ErrInvalidCategory
	}
	j.Category = category
	return nil
}

// ValidJewelryCategory reports whether category is a recognized jewelry
// category.
func ValidJewelryCategory(category string) bool {
	return validJewelryCategories[category]
}
