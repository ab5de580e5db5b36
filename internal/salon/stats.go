package salon

import (
	"time"

	"github.com/shringar-studio/shringar/pkg/types"
)

// Stats is the dashboard summary computed from the current collections.
type Stats struct {
	Services          int     `json:"services"`
	Clients           int     `json:"clients"`
	TodayAppointments int     `json:"todayAppointments"`
	Revenue           float64 `json:"revenue"`
	JewelryItems      int     `json:"jewelryItems"`
	GoldItems         int     `json:"goldItems"`
	InStockItems      int     `json:"inStockItems"`
}

// Summarize computes the dashboard numbers. Revenue is the sum of all
// appointment amounts; today's appointments are matched against now's
// calendar date.
func (r *Registry) Summarize(now time.Time) Stats {
	stats := Stats{
		Services: r.Services.Len(),
		Clients:  r.Clients.Len(),
	}

	today := now.Format("2006-01-02")
	for _, a := range r.Appointments.Items() {
		if a.Date == today {
			stats.TodayAppointments++
		}
		stats.Revenue += a.TotalAmount
	}

	for _, j := range r.Jewelry.Items() {
		stats.JewelryItems++
		if j.Category == types.JewelryGold {
			stats.GoldItems++
		}
		if j.InStock {
			stats.InStockItems++
		}
	}

	return stats
}
