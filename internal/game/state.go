package game

import (
	"math"
	"time"
)

const (
	// MissionRewardCoins / MissionRewardHearts are granted per completed mission.
	MissionRewardCoins  = 10
	MissionRewardHearts = 1

	// MaxPetVisualState caps the per-day pet care progress indicator.
	MaxPetVisualState = 3

	// StartingHearts seeds a new player's wallet so the pet can be fed right away.
	StartingHearts = 3

	dateKeyLayout = "2006-01-02"
)

// DateKey reduces a moment to its calendar-day key, the unit the day-rollover
// transition compares on.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// GameState is the aggregate root: wallet, pet, preferences, the daily
// mission set and lifetime progress counters. All mutators are in-memory and
// guard with no-ops instead of errors.
type GameState struct {
	Coins          int
	Hearts         int
	DailyHearts    int
	PetVisualState int

	Pet             Pet
	UserPreferences UserPreferences
	DailyMissions   []Mission

	CurrentDate            string
	DaysCompleted          int
	TotalMissionsCompleted int

	HasCompletedOnboarding bool
	LastNotificationDate   *string
}

// NewGameState builds the first-launch state: default pet, fallback missions
// for today, starting hearts.
func NewGameState(now time.Time) *GameState {
	s := &GameState{
		Hearts:      StartingHearts,
		Pet:         NewPet(),
		CurrentDate: DateKey(now),
	}
	s.GenerateMissions(now)
	return s
}

// GenerateMissions replaces the daily mission set from the current
// preferences (fallback set when onboarding is incomplete).
func (s *GameState) GenerateMissions(now time.Time) {
	s.DailyMissions = GenerateDailyMissions(s.UserPreferences, now)
}

// UpdatePreferences stores new onboarding answers and regenerates today's
// missions to match.
func (s *GameState) UpdatePreferences(prefs UserPreferences, now time.Time) {
	s.UserPreferences = prefs
	s.GenerateMissions(now)
}

// CompleteMission marks the mission done and grants the reward. Unknown IDs
// and already completed missions are no-ops, so the reward can never be
// granted twice for one mission.
func (s *GameState) CompleteMission(id string) bool {
	for i := range s.DailyMissions {
		m := &s.DailyMissions[i]
		if m.ID != id || m.Completed() {
			continue
		}
		m.Complete()
		s.Coins += MissionRewardCoins
		s.Hearts += MissionRewardHearts
		s.TotalMissionsCompleted++
		return true
	}
	return false
}

// FeedPet spends one heart to feed the pet. Refuses (false, untouched state)
// when the wallet is empty or the daily care cap is reached.
func (s *GameState) FeedPet(now time.Time) bool {
	if s.Hearts <= 0 || s.PetVisualState >= MaxPetVisualState {
		return false
	}
	s.Pet.Feed(now)
	s.Hearts--
	s.PetVisualState++
	s.DailyHearts++
	return true
}

// TodayCompletionPercentage is the rounded percentage of today's missions
// completed; 0 when no missions exist yet.
func (s *GameState) TodayCompletionPercentage() int {
	if len(s.DailyMissions) == 0 {
		return 0
	}
	completed := 0
	for i := range s.DailyMissions {
		if s.DailyMissions[i].Completed() {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(s.DailyMissions)) * 100))
}

func (s *GameState) DayCompleted() bool {
	return s.TodayCompletionPercentage() == 100
}

// Rollover applies the day transition for the given moment: bump the streak
// when yesterday finished at 100%, regenerate missions, reset the daily care
// counters and decay the pet's mood if it went unfed. Calling it again on the
// same calendar day is a no-op. Reports whether a rollover happened.
//
// DaysCompleted only ever increments; a missed day does not reset it.
func (s *GameState) Rollover(now time.Time) bool {
	today := DateKey(now)
	if s.CurrentDate == today {
		return false
	}

	if s.DayCompleted() {
		s.DaysCompleted++
	}

	s.CurrentDate = today
	s.GenerateMissions(now)

	s.DailyHearts = 0
	s.PetVisualState = 0

	if s.Pet.Happy() {
		if days := s.DaysSinceLastFed(now); days > 0 {
			s.Pet.UpdateMood(days)
		}
	}
	return true
}

// DaysSinceLastFed is the feeding gap in whole days, rounded up. A pet that
// was never fed counts as one day.
func (s *GameState) DaysSinceLastFed(now time.Time) int {
	if s.Pet.LastFed == nil {
		return 1
	}
	gap := now.Sub(*s.Pet.LastFed)
	if gap < 0 {
		gap = -gap
	}
	return int(math.Ceil(gap.Hours() / 24))
}
