package game

import (
	"time"

	"pawmate/internal/storage"
)

// Snapshot flattens the state into the persisted wire format.
func (s *GameState) Snapshot() storage.GameStateSnapshot {
	missions := make([]storage.MissionSnapshot, 0, len(s.DailyMissions))
	for i := range s.DailyMissions {
		m := &s.DailyMissions[i]
		missions = append(missions, storage.MissionSnapshot{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Duration:    m.Duration,
			Status:      string(m.Status),
			Category:    string(m.Category),
			Intensity:   string(m.Intensity),
			CreatedAt:   m.CreatedAt,
		})
	}

	return storage.GameStateSnapshot{
		Coins:          s.Coins,
		Hearts:         s.Hearts,
		DailyHearts:    s.DailyHearts,
		PetVisualState: s.PetVisualState,
		Pet: storage.PetSnapshot{
			Name:       s.Pet.Name,
			Mood:       string(s.Pet.Mood),
			LastFed:    s.Pet.LastFed,
			Level:      s.Pet.Level,
			Experience: s.Pet.Experience,
		},
		UserPreferences:        PreferencesSnapshot(s.UserPreferences),
		DailyMissions:          missions,
		CurrentDate:            s.CurrentDate,
		DaysCompleted:          s.DaysCompleted,
		TotalMissionsCompleted: s.TotalMissionsCompleted,
		HasCompletedOnboarding: s.HasCompletedOnboarding,
		LastNotificationDate:   s.LastNotificationDate,
	}
}

// StateFromSnapshot rebuilds a behavior-bearing GameState from a persisted
// snapshot, default-filling anything a drifted schema left out.
func StateFromSnapshot(snap *storage.GameStateSnapshot, now time.Time) *GameState {
	if snap == nil {
		return NewGameState(now)
	}

	s := &GameState{
		Coins:                  snap.Coins,
		Hearts:                 snap.Hearts,
		DailyHearts:            snap.DailyHearts,
		PetVisualState:         snap.PetVisualState,
		Pet:                    petFromSnapshot(snap.Pet),
		UserPreferences:        PreferencesFromSnapshot(&snap.UserPreferences),
		CurrentDate:            snap.CurrentDate,
		DaysCompleted:          snap.DaysCompleted,
		TotalMissionsCompleted: snap.TotalMissionsCompleted,
		HasCompletedOnboarding: snap.HasCompletedOnboarding,
		LastNotificationDate:   snap.LastNotificationDate,
	}

	if s.Coins < 0 {
		s.Coins = 0
	}
	if s.Hearts < 0 {
		s.Hearts = 0
	}
	if s.PetVisualState < 0 {
		s.PetVisualState = 0
	}
	if s.PetVisualState > MaxPetVisualState {
		s.PetVisualState = MaxPetVisualState
	}
	if s.CurrentDate == "" {
		s.CurrentDate = DateKey(now)
	}

	for _, ms := range snap.DailyMissions {
		s.DailyMissions = append(s.DailyMissions, missionFromSnapshot(ms))
	}
	if len(s.DailyMissions) == 0 {
		s.GenerateMissions(now)
	}
	return s
}

func petFromSnapshot(snap storage.PetSnapshot) Pet {
	p := Pet{
		Name:       snap.Name,
		Mood:       Mood(snap.Mood),
		LastFed:    snap.LastFed,
		Level:      snap.Level,
		Experience: snap.Experience,
	}
	if p.Name == "" {
		p.Name = "Wellness"
	}
	if p.Mood != MoodHappy && p.Mood != MoodSad {
		p.Mood = MoodSad
	}
	if p.Level < 1 {
		p.Level = 1
	}
	return p
}

func missionFromSnapshot(snap storage.MissionSnapshot) Mission {
	m := Mission{
		ID:          snap.ID,
		Title:       snap.Title,
		Description: snap.Description,
		Duration:    snap.Duration,
		Status:      MissionStatus(snap.Status),
		Category:    Category(snap.Category),
		Intensity:   Intensity(snap.Intensity),
		CreatedAt:   snap.CreatedAt,
	}
	if m.Status != MissionCompleted {
		m.Status = MissionPending
	}
	return m
}

func PreferencesSnapshot(p UserPreferences) storage.PreferencesSnapshot {
	return storage.PreferencesSnapshot{
		Goal:                string(p.Goal),
		Availability:        string(p.Availability),
		Intensity:           string(p.Intensity),
		Style:               string(p.Style),
		CompletedOnboarding: p.CompletedOnboarding,
		CreatedAt:           p.CreatedAt,
	}
}

func PreferencesFromSnapshot(snap *storage.PreferencesSnapshot) UserPreferences {
	if snap == nil {
		return UserPreferences{}
	}
	return UserPreferences{
		Goal:                Category(snap.Goal),
		Availability:        Availability(snap.Availability),
		Intensity:           Intensity(snap.Intensity),
		Style:               Style(snap.Style),
		CompletedOnboarding: snap.CompletedOnboarding,
		CreatedAt:           snap.CreatedAt,
	}
}

func InventorySnapshot(inv []Decoration) []storage.DecorationSnapshot {
	out := make([]storage.DecorationSnapshot, 0, len(inv))
	for i := range inv {
		d := &inv[i]
		out = append(out, storage.DecorationSnapshot{
			ID:          d.ID,
			Name:        d.Name,
			Type:        string(d.Type),
			Emoji:       d.Emoji,
			Rarity:      string(d.Rarity),
			Description: d.Description,
			IsUnlocked:  d.IsUnlocked,
			IsEquipped:  d.IsEquipped,
			ObtainedAt:  d.ObtainedAt,
		})
	}
	return out
}

// InventoryFromSnapshot rebuilds the inventory against the current catalog:
// unlock/equip flags are merged by ID so catalog additions appear (locked)
// and removed entries drop out.
func InventoryFromSnapshot(snaps []storage.DecorationSnapshot) []Decoration {
	inv := NewInventory()
	byID := map[string]*storage.DecorationSnapshot{}
	for i := range snaps {
		byID[snaps[i].ID] = &snaps[i]
	}
	for i := range inv {
		snap, ok := byID[inv[i].ID]
		if !ok {
			continue
		}
		inv[i].IsUnlocked = snap.IsUnlocked
		inv[i].IsEquipped = snap.IsEquipped && snap.IsUnlocked
		inv[i].ObtainedAt = snap.ObtainedAt
	}
	return inv
}
