package salon

import "github.com/shringar-studio/shringar/pkg/types"

// Built-in sample data, persisted into any slot that has never been
// written. The fixed single-digit ids predate UUID minting and are kept so
// the seeded appointments resolve their client and service references.

// SeedServices returns the sample service catalog.
func SeedServices() []types.Service {
	return []types.Service{
		{
			ID:          "1",
			Name:        "Hair Cut & Style",
			Description: "Professional hair cutting and styling service",
			Price:       500,
			Duration:    60,
			Category:    types.CategoryHair,
			Available:   true,
		},
		{
			ID:          "2",
			Name:        "Facial Treatment",
			Description: "Deep cleansing and rejuvenating facial",
			Price:       800,
			Duration:    90,
			Category:    types.CategoryBeauty,
			Available:   true,
		},
		{
			ID:          "3",
			Name:        "Manicure & Pedicure",
			Description: "Complete nail care service",
			Price:       600,
			Duration:    75,
			Category:    types.CategoryNails,
			Available:   true,
		},
		{
			ID:          "4",
			Name:        "Body Massage",
			Description: "Relaxing full body massage",
			Price:       1200,
			Duration:    120,
			Category:    types.CategorySpa,
			Available:   true,
		},
	}
}

// SeedClients returns the sample client list.
func SeedClients() []types.Client {
	return []types.Client{
		{
			ID:          "1",
			Name:        "Priya Sharma",
			Email:       "priya.sharma@email.com",
			Phone:       "+91 98765 43210",
			Address:     "Mumbai, Maharashtra",
			TotalVisits: 5,
			LastVisit:   "2024-01-15",
		},
		{
			ID:          "2",
			Name:        "Anjali Patel",
			Email:       "anjali.patel@email.com",
			Phone:       "+91 87654 32109",
			Address:     "Delhi, NCR",
			TotalVisits: 8,
			LastVisit:   "2024-01-20",
		},
	}
}

// SeedAppointments returns the sample appointment book.
func SeedAppointments() []types.Appointment {
	return []types.Appointment{
		{
			ID:          "1",
			ClientID:    "1",
			ServiceID:   "1",
			Date:        "2024-01-25",
			Time:        "10:00",
			Status:      types.StatusConfirmed,
			TotalAmount: 500,
		},
		{
			ID:          "2",
			ClientID:    "2",
			ServiceID:   "2",
			Date:        "2024-01-26",
			Time:        "14:00",
			Status:      types.StatusPending,
			TotalAmount: 800,
		},
	}
}

// SeedStaff returns the sample staff roster.
func SeedStaff() []types.Staff {
	return []types.Staff{
		{
			ID:          "1",
			Name:        "Neha Kapoor",
			Email:       "neha.kapoor@shringar.com",
			Phone:       "+91 98765 43211",
			Role:        "Senior Stylist",
			Specialties: []string{"Hair Styling", "Hair Coloring"},
			Available:   true,
		},
		{
			ID:          "2",
			Name:        "Kavya Singh",
			Email:       "kavya.singh@shringar.com",
			Phone:       "+91 98765 43212",
			Role:        "Beauty Therapist",
			Specialties: []string{"Facial Treatments", "Skincare"},
			Available:   true,
		},
	}
}

// SeedJewelry returns the sample jewelry inventory.
func SeedJewelry() []types.Jewelry {
	return []types.Jewelry{
		{
			ID:          "1",
			Name:        "Gold Diamond Ring",
			Price:       45000,
			Category:    types.JewelryGold,
			Weight:      5.2,
			Description: "Beautiful 18k gold ring with premium diamond",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Silver Necklace Set",
			Price:       8500,
			Category:    types.JewelrySilver,
			Weight:      12.5,
			Description: "Elegant silver necklace with matching earrings",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Emerald Pendant",
			Price:       32000,
			Category:    types.JewelryPreciousStones,
			Weight:      3.8,
			Description: "Exquisite emerald pendant in gold setting",
			InStock:     true,
		},
	}
}
