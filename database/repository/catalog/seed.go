package catalogRepo

import "github.com/molatlhegiM/2Gether-Travels-sub000/models"

// Seed data for the flagship event (4-night conference stay in Lisbon).
// Prices are minor currency units.

func seedPackages() []models.Package {
	return []models.Package{
		{
			ID:          "pkg-essential",
			Name:        "Essential",
			Description: "Conference pass with standard seating and welcome kit.",
			Price:       145000,
			Includes:    []string{"Full conference pass", "Welcome kit", "Lunch vouchers"},
		},
		{
			ID:          "pkg-business",
			Name:        "Business",
			Description: "Priority seating, networking dinner and workshop access.",
			Price:       210000,
			Includes:    []string{"Full conference pass", "Priority seating", "Networking dinner", "Workshop access"},
		},
		{
			ID:          "pkg-executive",
			Name:        "Executive",
			Description: "VIP lounge, speaker meet-and-greet and all workshops.",
			Price:       320000,
			Includes:    []string{"Full conference pass", "VIP lounge", "Speaker meet-and-greet", "All workshops", "Airport fast-track"},
		},
	}
}

func seedHotels() []models.Hotel {
	return []models.Hotel{
		{
			ID:              "hot-riverside",
			Name:            "Riverside Grand",
			Description:     "Five-star hotel on the waterfront, 10 minutes from the venue.",
			PricePerNight:   28000,
			Stars:           5,
			DistanceToVenue: "2.1 km",
		},
		{
			ID:              "hot-central",
			Name:            "Central Plaza",
			Description:     "Modern four-star hotel next to the conference centre.",
			PricePerNight:   19500,
			Stars:           4,
			DistanceToVenue: "400 m",
		},
		{
			ID:              "hot-garden",
			Name:            "Garden Court",
			Description:     "Quiet boutique hotel in the old town.",
			PricePerNight:   14500,
			Stars:           3,
			DistanceToVenue: "3.5 km",
		},
		{
			ID:              "hot-harbour",
			Name:            "Harbour View Suites",
			Description:     "Serviced suites with kitchenettes, ideal for longer stays.",
			PricePerNight:   23000,
			Stars:           4,
			DistanceToVenue: "1.8 km",
		},
	}
}

func seedTransfers() []models.TransferOption {
	return []models.TransferOption{
		{
			ID:          "trf-shared",
			Name:        "Shared Shuttle",
			Description: "Scheduled shuttle between the airport and partner hotels.",
			Price:       4500,
			Vehicle:     "Minibus",
			Capacity:    16,
		},
		{
			ID:          "trf-private",
			Name:        "Private Car",
			Description: "Private sedan with meet-and-greet at arrivals.",
			Price:       12000,
			Vehicle:     "Sedan",
			Capacity:    3,
		},
		{
			ID:          "trf-executive",
			Name:        "Executive Van",
			Description: "Private van for delegations travelling together.",
			Price:       21000,
			Vehicle:     "Van",
			Capacity:    7,
		},
	}
}

func seedTours() []models.Tour {
	return []models.Tour{
		{
			ID:            "tour-oldtown",
			Name:          "Old Town Walking Tour",
			Description:   "Guided walk through the historic quarter.",
			Price:         6500,
			Category:      "city",
			DurationHours: 3,
		},
		{
			ID:            "tour-wine",
			Name:          "Wine Country Day Trip",
			Description:   "Full-day visit to two wineries with tastings and lunch.",
			Price:         18500,
			Category:      "day-trip",
			DurationHours: 9,
		},
		{
			ID:            "tour-coast",
			Name:          "Coastal Villages",
			Description:   "Coastline drive with stops in three fishing villages.",
			Price:         14500,
			Category:      "day-trip",
			DurationHours: 8,
		},
		{
			ID:            "tour-sunset",
			Name:          "Sunset River Cruise",
			Description:   "Two-hour cruise with drinks and live music.",
			Price:         8500,
			Category:      "evening",
			DurationHours: 2,
		},
		{
			ID:            "tour-food",
			Name:          "Food Market Tasting",
			Description:   "Evening tasting walk through the central market.",
			Price:         7500,
			Category:      "evening",
			DurationHours: 3,
		},
		{
			ID:            "tour-palace",
			Name:          "Palace & Gardens",
			Description:   "Half-day coach trip to the hilltop palace.",
			Price:         11000,
			Category:      "city",
			DurationHours: 5,
		},
	}
}
