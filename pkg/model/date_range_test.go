package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    DateRange
		b    DateRange
		want bool
	}{
		{
			name: "disjoint",
			a:    DateRange{date(2024, 3, 1), date(2024, 3, 3)},
			b:    DateRange{date(2024, 3, 10), date(2024, 3, 12)},
			want: false,
		},
		{
			name: "back to back checkout equals checkin",
			a:    DateRange{date(2024, 3, 1), date(2024, 3, 3)},
			b:    DateRange{date(2024, 3, 3), date(2024, 3, 5)},
			want: false,
		},
		{
			name: "partial overlap",
			a:    DateRange{date(2024, 3, 1), date(2024, 3, 4)},
			b:    DateRange{date(2024, 3, 3), date(2024, 3, 6)},
			want: true,
		},
		{
			name: "full containment",
			a:    DateRange{date(2024, 3, 16), date(2024, 3, 18)},
			b:    DateRange{date(2024, 3, 15), date(2024, 3, 20)},
			want: true,
		},
		{
			name: "identical ranges",
			a:    DateRange{date(2024, 3, 1), date(2024, 3, 3)},
			b:    DateRange{date(2024, 3, 1), date(2024, 3, 3)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three nights", date(2024, 6, 1), date(2024, 6, 4), 3},
		{"one night", date(2024, 6, 1), date(2024, 6, 2), 1},
		{"same day", date(2024, 6, 1), date(2024, 6, 1), 0},
		{"across month boundary", date(2024, 6, 29), date(2024, 7, 2), 3},
		{
			"partial day rounds up",
			time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 2, 11, 0, 0, 0, time.UTC),
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NightsBetween(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("NightsBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNormalizedStripsTimeOfDay(t *testing.T) {
	r := DateRange{
		CheckIn:  time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 6, 4, 11, 0, 0, 0, time.UTC),
	}

	n := r.Normalized()
	if !n.CheckIn.Equal(date(2024, 6, 1)) {
		t.Errorf("CheckIn = %v, want midnight", n.CheckIn)
	}
	if !n.CheckOut.Equal(date(2024, 6, 4)) {
		t.Errorf("CheckOut = %v, want midnight", n.CheckOut)
	}
	if n.Nights() != 3 {
		t.Errorf("Nights() = %d, want 3", n.Nights())
	}
}

func TestSeasonalRuleContains(t *testing.T) {
	rule := SeasonalRule{
		UnitID:          "safari-tent-1",
		StartDate:       date(2024, 12, 15),
		EndDate:         date(2025, 1, 15),
		PriceMultiplier: 1.5,
		SeasonName:      "Holiday High Season",
	}

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"start endpoint inclusive", date(2024, 12, 15), true},
		{"end endpoint inclusive", date(2025, 1, 15), true},
		{"inside window", date(2024, 12, 24), true},
		{"day before window", date(2024, 12, 14), false},
		{"day after window", date(2025, 1, 16), false},
		{"time of day irrelevant", time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.Contains(tt.d); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
