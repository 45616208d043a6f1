package game

import "strings"

type Category string

const (
	CategoryEnergy   Category = "energy"
	CategoryStress   Category = "stress"
	CategoryMovement Category = "movement"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryEnergy, CategoryStress, CategoryMovement:
		return true
	default:
		return false
	}
}

// ParseCategory parses user input to a Category.
// Supported: energy, stress, movement (plus a few common aliases).
func ParseCategory(input string) (Category, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "energy":
		return CategoryEnergy, true
	case "stress", "calm":
		return CategoryStress, true
	case "movement", "move":
		return CategoryMovement, true
	default:
		return "", false
	}
}

type Intensity string

const (
	IntensityGentle Intensity = "gentle"
	IntensityNormal Intensity = "normal"
	IntensityActive Intensity = "active"
)

func (i Intensity) IsValid() bool {
	switch i {
	case IntensityGentle, IntensityNormal, IntensityActive:
		return true
	default:
		return false
	}
}

func ParseIntensity(input string) (Intensity, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "gentle", "soft":
		return IntensityGentle, true
	case "normal":
		return IntensityNormal, true
	case "active", "intense":
		return IntensityActive, true
	default:
		return "", false
	}
}

type Availability string

const (
	AvailabilityLow    Availability = "low"
	AvailabilityMedium Availability = "medium"
	AvailabilityHigh   Availability = "high"
)

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityLow, AvailabilityMedium, AvailabilityHigh:
		return true
	default:
		return false
	}
}

func ParseAvailability(input string) (Availability, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low", "short":
		return AvailabilityLow, true
	case "medium", "mid":
		return AvailabilityMedium, true
	case "high", "long":
		return AvailabilityHigh, true
	default:
		return "", false
	}
}

// DurationRange returns the target mission duration bounds (minutes)
// for this availability.
func (a Availability) DurationRange() (min, max int) {
	switch a {
	case AvailabilityLow:
		return 2, 8
	case AvailabilityHigh:
		return 15, 30
	default:
		return 8, 20
	}
}

type Style string

const (
	StyleReflective Style = "reflective"
	StyleActive     Style = "active"
	StyleSocial     Style = "social"
	StylePersonal   Style = "personal"
)

func (s Style) IsValid() bool {
	switch s {
	case StyleReflective, StyleActive, StyleSocial, StylePersonal:
		return true
	default:
		return false
	}
}

func ParseStyle(input string) (Style, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "reflective", "mindful":
		return StyleReflective, true
	case "active":
		return StyleActive, true
	case "social":
		return StyleSocial, true
	case "personal", "home":
		return StylePersonal, true
	default:
		return "", false
	}
}

type MissionStatus string

const (
	MissionPending   MissionStatus = "pending"
	MissionCompleted MissionStatus = "completed"
)

type Mood string

const (
	MoodHappy Mood = "happy"
	MoodSad   Mood = "sad"
)

type DecorationType string

const (
	DecorationHat        DecorationType = "hat"
	DecorationAccessory  DecorationType = "accessory"
	DecorationBackground DecorationType = "background"
	DecorationEffect     DecorationType = "effect"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// Rarities lists all tiers from most to least frequent.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
