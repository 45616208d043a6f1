package game

import (
	"testing"
	"time"
)

func completePrefs() UserPreferences {
	return UserPreferences{
		Goal:         CategoryEnergy,
		Availability: AvailabilityMedium,
		Intensity:    IntensityNormal,
		Style:        StylePersonal,
	}
}

func TestGenerateDailyMissionsBasics(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	for _, goal := range []Category{CategoryEnergy, CategoryStress, CategoryMovement} {
		for _, intensity := range []Intensity{IntensityGentle, IntensityNormal, IntensityActive} {
			prefs := completePrefs()
			prefs.Goal = goal
			prefs.Intensity = intensity

			missions := GenerateDailyMissions(prefs, now)
			if len(missions) != DailyMissionCount {
				t.Fatalf("%s/%s: got %d missions, want %d", goal, intensity, len(missions), DailyMissionCount)
			}

			seen := map[string]bool{}
			for _, m := range missions {
				if seen[m.ID] {
					t.Fatalf("%s/%s: duplicate mission id %s", goal, intensity, m.ID)
				}
				seen[m.ID] = true
				if m.Category != goal {
					t.Fatalf("%s/%s: mission category=%s, want %s", goal, intensity, m.Category, goal)
				}
				if m.Intensity != intensity {
					t.Fatalf("%s/%s: mission intensity=%s, want %s", goal, intensity, m.Intensity, intensity)
				}
				if m.Status != MissionPending {
					t.Fatalf("%s/%s: mission status=%s, want pending", goal, intensity, m.Status)
				}
			}
		}
	}
}

func TestGenerateDurationBounds(t *testing.T) {
	now := time.Now()

	cases := []struct {
		availability Availability
		min, max     int
	}{
		{AvailabilityLow, 2, 8},
		{AvailabilityMedium, 8, 20},
		{AvailabilityHigh, 15, 30},
	}

	for _, tc := range cases {
		prefs := completePrefs()
		prefs.Availability = tc.availability

		for _, m := range GenerateDailyMissions(prefs, now) {
			if m.Duration < tc.min || m.Duration > tc.max {
				t.Fatalf("availability=%s: duration %d outside [%d,%d]", tc.availability, m.Duration, tc.min, tc.max)
			}
		}
	}
}

func TestGenerateIncompletePrefsFallsBack(t *testing.T) {
	now := time.Now()

	first := GenerateDailyMissions(UserPreferences{}, now)
	second := GenerateDailyMissions(UserPreferences{Goal: CategoryEnergy}, now)

	if len(first) != DailyMissionCount || len(second) != DailyMissionCount {
		t.Fatalf("fallback counts: %d and %d, want %d", len(first), len(second), DailyMissionCount)
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Title != second[i].Title {
			t.Fatalf("fallback set not deterministic at %d: %q vs %q", i, first[i].Title, second[i].Title)
		}
	}

	categories := map[Category]bool{}
	for _, m := range first {
		categories[m.Category] = true
	}
	if !categories[CategoryStress] || !categories[CategoryMovement] {
		t.Fatalf("fallback set should cover stress and movement, got %v", categories)
	}
}

func TestGenerateDeterministicTitles(t *testing.T) {
	now := time.Now()
	prefs := completePrefs()

	a := GenerateDailyMissions(prefs, now)
	b := GenerateDailyMissions(prefs, now)
	for i := range a {
		if a[i].Title != b[i].Title || a[i].Duration != b[i].Duration {
			t.Fatalf("selection not deterministic at %d: %q/%d vs %q/%d", i, a[i].Title, a[i].Duration, b[i].Title, b[i].Duration)
		}
	}
}

func TestGenerateNarrowStyleStillProducesThree(t *testing.T) {
	// stress/normal has a single social template; the style filter must fall
	// back to the whole bucket.
	prefs := UserPreferences{
		Goal:         CategoryStress,
		Availability: AvailabilityMedium,
		Intensity:    IntensityNormal,
		Style:        StyleSocial,
	}

	missions := GenerateDailyMissions(prefs, time.Now())
	if len(missions) != DailyMissionCount {
		t.Fatalf("got %d missions, want %d", len(missions), DailyMissionCount)
	}
}

func TestGenerateScenarioStressLowGentleReflective(t *testing.T) {
	prefs := UserPreferences{
		Goal:         CategoryStress,
		Availability: AvailabilityLow,
		Intensity:    IntensityGentle,
		Style:        StyleReflective,
	}

	missions := GenerateDailyMissions(prefs, time.Now())
	if len(missions) != 3 {
		t.Fatalf("got %d missions, want 3", len(missions))
	}
	for _, m := range missions {
		if m.Category != CategoryStress {
			t.Fatalf("category=%s, want stress", m.Category)
		}
		if m.Duration > 8 {
			t.Fatalf("duration %d exceeds low-availability bound 8", m.Duration)
		}
	}
}

func TestRemapDuration(t *testing.T) {
	// Authored scale endpoints land on the target range endpoints.
	if got := remapDuration(2, AvailabilityLow); got != 2 {
		t.Fatalf("remap(2, low)=%d, want 2", got)
	}
	if got := remapDuration(20, AvailabilityLow); got != 8 {
		t.Fatalf("remap(20, low)=%d, want 8", got)
	}
	if got := remapDuration(2, AvailabilityHigh); got != 15 {
		t.Fatalf("remap(2, high)=%d, want 15", got)
	}
	if got := remapDuration(20, AvailabilityHigh); got != 30 {
		t.Fatalf("remap(20, high)=%d, want 30", got)
	}
	// Midpoint maps to the middle of the target range.
	if got := remapDuration(11, AvailabilityMedium); got != 14 {
		t.Fatalf("remap(11, medium)=%d, want 14", got)
	}
}
