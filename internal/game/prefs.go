package game

import "time"

// UserPreferences holds the four onboarding answers that drive mission
// generation. Zero values mean "not answered yet".
type UserPreferences struct {
	Goal         Category
	Availability Availability
	Intensity    Intensity
	Style        Style

	CompletedOnboarding bool
	CreatedAt           time.Time
}

// IsComplete reports whether all four onboarding answers were captured.
func (p UserPreferences) IsComplete() bool {
	return p.Goal.IsValid() &&
		p.Availability.IsValid() &&
		p.Intensity.IsValid() &&
		p.Style.IsValid()
}
