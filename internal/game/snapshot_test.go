package game

import (
	"testing"
	"time"

	"pawmate/internal/storage"
)

func TestStateFromNilSnapshot(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	state := StateFromSnapshot(nil, now)

	if state.Hearts != StartingHearts || state.Coins != 0 {
		t.Fatalf("fresh state economy: coins=%d hearts=%d", state.Coins, state.Hearts)
	}
	if state.CurrentDate != "2025-06-01" {
		t.Fatalf("currentDate=%q", state.CurrentDate)
	}
	if len(state.DailyMissions) != DailyMissionCount {
		t.Fatalf("fresh state should carry %d missions", DailyMissionCount)
	}
}

func TestStateFromSnapshotDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	snap := &storage.GameStateSnapshot{
		Coins:          -5,
		Hearts:         -1,
		PetVisualState: 99,
		Pet:            storage.PetSnapshot{Mood: "ecstatic", Level: 0},
	}

	state := StateFromSnapshot(snap, now)
	if state.Coins != 0 || state.Hearts != 0 {
		t.Fatalf("negative values should clamp to zero: coins=%d hearts=%d", state.Coins, state.Hearts)
	}
	if state.PetVisualState != MaxPetVisualState {
		t.Fatalf("petVisualState=%d, want clamp to %d", state.PetVisualState, MaxPetVisualState)
	}
	if state.Pet.Mood != MoodSad {
		t.Fatalf("unknown mood should default to sad, got %s", state.Pet.Mood)
	}
	if state.Pet.Level != 1 || state.Pet.Name != "Wellness" {
		t.Fatalf("pet defaults: %+v", state.Pet)
	}
	if state.CurrentDate != DateKey(now) {
		t.Fatalf("empty currentDate should fill from now")
	}
	if len(state.DailyMissions) != DailyMissionCount {
		t.Fatalf("empty mission list should regenerate")
	}
}

func TestSnapshotRoundTripBehavior(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	state := NewGameState(now)
	state.UpdatePreferences(UserPreferences{
		Goal:         CategoryEnergy,
		Availability: AvailabilityLow,
		Intensity:    IntensityGentle,
		Style:        StylePersonal,
	}, now)
	state.CompleteMission(state.DailyMissions[0].ID)
	state.FeedPet(now)

	rebuilt := StateFromSnapshot(ptr(state.Snapshot()), now)

	if rebuilt.Coins != state.Coins || rebuilt.Hearts != state.Hearts {
		t.Fatalf("economy drifted: %d/%d vs %d/%d", rebuilt.Coins, rebuilt.Hearts, state.Coins, state.Hearts)
	}
	if rebuilt.TodayCompletionPercentage() != state.TodayCompletionPercentage() {
		t.Fatalf("completion drifted")
	}
	if rebuilt.Pet.Mood != MoodHappy {
		t.Fatalf("pet mood lost")
	}

	// The rebuilt state enforces the same rules: repeating the completed
	// mission pays nothing.
	if rebuilt.CompleteMission(rebuilt.DailyMissions[0].ID) {
		t.Fatalf("rebuilt state rewarded a repeat completion")
	}
}

func TestInventorySnapshotRoundTrip(t *testing.T) {
	now := time.Now()
	inv := NewInventory()
	inv[0].Unlock(now)
	if err := EquipDecoration(inv, inv[0].ID); err != nil {
		t.Fatalf("equip: %v", err)
	}

	rebuilt := InventoryFromSnapshot(InventorySnapshot(inv))
	if len(rebuilt) != CatalogSize() {
		t.Fatalf("rebuilt inventory size %d, want %d", len(rebuilt), CatalogSize())
	}
	if !rebuilt[0].IsUnlocked || !rebuilt[0].IsEquipped {
		t.Fatalf("flags lost: %+v", rebuilt[0])
	}
	for i := 1; i < len(rebuilt); i++ {
		if rebuilt[i].IsUnlocked {
			t.Fatalf("%s came back unlocked", rebuilt[i].ID)
		}
	}
}

func TestInventoryFromSnapshotDropsUnknownEquips(t *testing.T) {
	snaps := []storage.DecorationSnapshot{
		// Equipped but no longer unlocked: the equip flag must not survive.
		{ID: "hat_cap", IsUnlocked: false, IsEquipped: true},
		// Not in the catalog anymore: silently dropped.
		{ID: "hat_retired", IsUnlocked: true},
	}

	inv := InventoryFromSnapshot(snaps)
	for i := range inv {
		if inv[i].ID == "hat_cap" && inv[i].IsEquipped {
			t.Fatalf("locked decoration came back equipped")
		}
		if inv[i].ID == "hat_retired" {
			t.Fatalf("retired decoration resurrected")
		}
	}
}

func ptr[T any](v T) *T { return &v }
