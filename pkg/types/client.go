package types

// Client is a salon customer. TotalVisits and LastVisit are bookkeeping
// fields: they are never taken from an edit payload and only change through
// RecordVisit.
type Client struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address" validate:"required"`
	BirthDate   string `json:"birthDate,omitempty"`
	Preferences string `json:"preferences,omitempty"`
	TotalVisits int    `json:"totalVisits" validate:"min=0"`
	LastVisit   string `json:"lastVisit,omitempty"`
}

func (c *Client) EntityID() string      { return c.ID }
func (c *Client) SetEntityID(id string) { c.ID = id }

// RecordVisit increments the visit counter and stamps the visit date.
func (c *Client) RecordVisit(date string) {
	c.TotalVisits++
	c.LastVisit = date
}
