package catalog

import (
	"time"

	"montecampo/pkg/model"
)

// Load returns the property's catalog. Prices are Colombian pesos per night.
// The data mirrors what the booking site sells today; a real inventory
// backend is out of scope.
func Load() (*Catalog, error) {
	return New(defaultUnits(), defaultSeasonalRules(), defaultBlockedRanges())
}

func defaultUnits() []model.Unit {
	return []model.Unit{
		{
			ID:            "safari-tent-1",
			Name:          "Safari Luxury Tent",
			Type:          model.UnitTypeTent,
			Capacity:      2,
			PricePerNight: 180000,
			MaxUnits:      3,
			Amenities:     []string{"Queen bed", "Private bathroom", "Terrace", "Valley view", "Free WiFi", "Free parking"},
			Description:   "African-style luxury with panoramic mountain views",
		},
		{
			ID:            "forest-cabin-1",
			Name:          "Romantic Forest Cabin",
			Type:          model.UnitTypeCabin,
			Capacity:      2,
			PricePerNight: 220000,
			MaxUnits:      2,
			Amenities:     []string{"King bed", "Private jacuzzi", "Fireplace", "Equipped kitchen", "Private balcony", "Netflix"},
			Description:   "Complete privacy surrounded by nature and comfort",
		},
		{
			ID:            "stardome-1",
			Name:          "Stellar Dome",
			Type:          model.UnitTypeDome,
			Capacity:      4,
			PricePerNight: 200000,
			MaxUnits:      2,
			Amenities:     []string{"Double bed + 2 singles", "Transparent ceiling", "Private bathroom", "Microwave", "Coffee maker"},
			Description:   "Sleep under the stars in a modern geodesic dome",
		},
		{
			ID:            "family-yurt-1",
			Name:          "Andean Family Yurt",
			Type:          model.UnitTypeYurt,
			Capacity:      6,
			PricePerNight: 350000,
			MaxUnits:      1,
			Amenities:     []string{"3 beds", "Full kitchen", "Living room", "Shared bathroom", "Grill", "Board games", "Pets allowed"},
			Description:   "Traditional Asian space adapted for families",
		},
	}
}

func defaultSeasonalRules() []model.SeasonalRule {
	return []model.SeasonalRule{
		{UnitID: "safari-tent-1", StartDate: day(2024, 12, 15), EndDate: day(2025, 1, 15), PriceMultiplier: 1.5, SeasonName: "Holiday High Season"},
		{UnitID: "forest-cabin-1", StartDate: day(2024, 12, 15), EndDate: day(2025, 1, 15), PriceMultiplier: 1.6, SeasonName: "Holiday High Season"},
		{UnitID: "stardome-1", StartDate: day(2024, 12, 15), EndDate: day(2025, 1, 15), PriceMultiplier: 1.4, SeasonName: "Holiday High Season"},
		{UnitID: "family-yurt-1", StartDate: day(2024, 12, 15), EndDate: day(2025, 1, 15), PriceMultiplier: 1.3, SeasonName: "Holiday High Season"},
		{UnitID: "safari-tent-1", StartDate: day(2024, 6, 15), EndDate: day(2024, 7, 31), PriceMultiplier: 1.3, SeasonName: "Summer High Season"},
		{UnitID: "forest-cabin-1", StartDate: day(2024, 6, 15), EndDate: day(2024, 7, 31), PriceMultiplier: 1.4, SeasonName: "Summer High Season"},
		{UnitID: "stardome-1", StartDate: day(2024, 6, 15), EndDate: day(2024, 7, 31), PriceMultiplier: 1.2, SeasonName: "Summer High Season"},
		{UnitID: "family-yurt-1", StartDate: day(2024, 6, 15), EndDate: day(2024, 7, 31), PriceMultiplier: 1.25, SeasonName: "Summer High Season"},
	}
}

func defaultBlockedRanges() []model.BlockedRange {
	return []model.BlockedRange{
		// Maintenance windows
		{UnitID: "safari-tent-1", StartDate: day(2024, 3, 15), EndDate: day(2024, 3, 20)},
		{UnitID: "forest-cabin-1", StartDate: day(2024, 4, 10), EndDate: day(2024, 4, 12)},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
