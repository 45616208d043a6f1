package game

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DailyMissionCount is how many missions a day always holds.
	DailyMissionCount = 3

	// styleMatchThreshold: when fewer style-matched templates than this
	// survive filtering, the whole goal/intensity bucket is used instead.
	styleMatchThreshold = 3

	// Authored template durations live on this scale before remapping.
	authoredDurationMin = 2
	authoredDurationMax = 20
)

// GenerateDailyMissions turns the onboarding preferences into exactly three
// personalized missions. It never fails: incomplete preferences (or an empty
// template bucket) fall back to the default set. Selection is deterministic
// apart from mission IDs.
func GenerateDailyMissions(prefs UserPreferences, now time.Time) []Mission {
	if !prefs.IsComplete() {
		return FallbackMissions(now)
	}

	bucket := missionTemplates[prefs.Goal][prefs.Intensity]
	if len(bucket) == 0 {
		return FallbackMissions(now)
	}

	// Prefer the user's style, but never starve the selection.
	styled := make([]missionTemplate, 0, len(bucket))
	for _, t := range bucket {
		if t.hasStyle(prefs.Style) {
			styled = append(styled, t)
		}
	}
	candidates := bucket
	if len(styled) >= styleMatchThreshold {
		candidates = styled
	}

	selected := selectVaried(candidates, DailyMissionCount)

	missions := make([]Mission, 0, len(selected))
	for _, t := range selected {
		missions = append(missions, Mission{
			ID:          uuid.NewString(),
			Title:       t.Title,
			Description: t.Description,
			Duration:    remapDuration(t.Duration, prefs.Availability),
			Status:      MissionPending,
			Category:    prefs.Goal,
			Intensity:   prefs.Intensity,
			CreatedAt:   now,
		})
	}
	return missions
}

// remapDuration rescales an authored duration into the availability's target
// range by linear normalization against the authored scale, clamped to the
// target bounds.
func remapDuration(authored int, availability Availability) int {
	min, max := availability.DurationRange()

	norm := float64(authored-authoredDurationMin) / float64(authoredDurationMax-authoredDurationMin)
	mapped := int(math.Round(float64(min) + norm*float64(max-min)))

	if mapped < min {
		return min
	}
	if mapped > max {
		return max
	}
	return mapped
}

// selectVaried picks up to count templates, skipping any whose title shares a
// word with an already selected one. If the overlap rule leaves fewer than
// count, remaining untaken templates pad the result in order.
func selectVaried(candidates []missionTemplate, count int) []missionTemplate {
	if len(candidates) <= count {
		return candidates
	}

	selected := make([]missionTemplate, 0, count)
	taken := make([]bool, len(candidates))
	usedWords := map[string]bool{}

	for i, t := range candidates {
		if len(selected) >= count {
			break
		}
		words := strings.Fields(strings.ToLower(t.Title))
		conflict := false
		for _, w := range words {
			if usedWords[w] {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		for _, w := range words {
			usedWords[w] = true
		}
		selected = append(selected, t)
		taken[i] = true
	}

	for i, t := range candidates {
		if len(selected) >= count {
			break
		}
		if !taken[i] {
			selected = append(selected, t)
			taken[i] = true
		}
	}

	return selected
}

// FallbackMissions is the deterministic default set used before onboarding
// completes (or whenever generation has nothing to work with).
func FallbackMissions(now time.Time) []Mission {
	return []Mission{
		{
			ID:          "default-1",
			Title:       "Deep breathing",
			Description: "Take 5 slow, deep breaths",
			Duration:    3,
			Status:      MissionPending,
			Category:    CategoryStress,
			Intensity:   IntensityGentle,
			CreatedAt:   now,
		},
		{
			ID:          "default-2",
			Title:       "Five-minute walk",
			Description: "Take a short walk around your space",
			Duration:    5,
			Status:      MissionPending,
			Category:    CategoryMovement,
			Intensity:   IntensityNormal,
			CreatedAt:   now,
		},
		{
			ID:          "default-3",
			Title:       "Gratitude moment",
			Description: "Think of something positive about your day",
			Duration:    2,
			Status:      MissionPending,
			Category:    CategoryStress,
			Intensity:   IntensityGentle,
			CreatedAt:   now,
		},
	}
}
