package game

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"pawmate/internal/storage"
)

// Service wires the rules engine to persistence. Every operation is a
// load-modify-save cycle: state comes off disk, the day rollover is applied,
// the mutation runs in memory and the result is written back. Single local
// user, no concurrent writers.
type Service struct {
	store    *storage.Store
	roulette *Roulette

	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		store:    storage.NewStore(db),
		roulette: NewRoulette(nil),
		now:      time.Now,
	}
}

func (s *Service) Store() *storage.Store { return s.store }

// loadState reads the saved state, degrading to a fresh default on a missing
// or corrupt snapshot, then applies the day rollover. The caller decides when
// to save.
func (s *Service) loadState(ctx context.Context) (*GameState, bool) {
	now := s.now()
	snap, err := s.store.LoadGameState(ctx)
	if err != nil {
		// Corrupt snapshot: start over rather than brick the app.
		snap = nil
	}
	state := StateFromSnapshot(snap, now)
	rolled := state.Rollover(now)
	return state, rolled
}

func (s *Service) saveState(ctx context.Context, state *GameState) error {
	return s.store.SaveGameState(ctx, state.Snapshot())
}

func (s *Service) loadInventory(ctx context.Context) []Decoration {
	snaps, err := s.store.LoadInventory(ctx)
	if err != nil || snaps == nil {
		return NewInventory()
	}
	return InventoryFromSnapshot(snaps)
}

// Today returns the current state with the day rollover applied (and
// persisted when it fired).
func (s *Service) Today(ctx context.Context) (*GameState, error) {
	state, rolled := s.loadState(ctx)
	if rolled {
		if err := s.saveState(ctx, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// CompleteResult reports one mission-completion attempt.
type CompleteResult struct {
	Mission           Mission
	Rewarded          bool
	Coins             int
	Hearts            int
	CompletionPercent int
	DayCompleted      bool
}

// CompleteMission completes a mission referenced either by its list position
// (1-based, as printed by `paw today`) or by its ID. Completing an already
// completed mission is reported, not rewarded.
func (s *Service) CompleteMission(ctx context.Context, ref string) (*CompleteResult, error) {
	state, _ := s.loadState(ctx)

	mission := findMission(state.DailyMissions, ref)
	if mission == nil {
		return nil, fmt.Errorf("no mission %q today", ref)
	}

	rewarded := state.CompleteMission(mission.ID)
	if rewarded {
		if err := s.saveState(ctx, state); err != nil {
			return nil, err
		}
	}

	return &CompleteResult{
		Mission:           *mission,
		Rewarded:          rewarded,
		Coins:             state.Coins,
		Hearts:            state.Hearts,
		CompletionPercent: state.TodayCompletionPercentage(),
		DayCompleted:      state.DayCompleted(),
	}, nil
}

func findMission(missions []Mission, ref string) *Mission {
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(missions) {
		return &missions[n-1]
	}
	for i := range missions {
		if missions[i].ID == ref {
			return &missions[i]
		}
	}
	return nil
}

// FeedResult reports one feeding attempt; Reason is set when the pet was not
// fed (empty wallet or daily care cap).
type FeedResult struct {
	Fed            bool
	Reason         string
	Hearts         int
	PetVisualState int
	Pet            Pet
}

func (s *Service) FeedPet(ctx context.Context) (*FeedResult, error) {
	state, _ := s.loadState(ctx)

	res := &FeedResult{}
	switch {
	case state.Hearts <= 0:
		res.Reason = "no hearts left — complete a mission to earn one"
	case state.PetVisualState >= MaxPetVisualState:
		res.Reason = "your pet is full for today — come back tomorrow"
	default:
		state.FeedPet(s.now())
		res.Fed = true
		if err := s.saveState(ctx, state); err != nil {
			return nil, err
		}
	}

	res.Hearts = state.Hearts
	res.PetVisualState = state.PetVisualState
	res.Pet = state.Pet
	return res, nil
}

// SpinOutcome is a roulette result plus the resulting wallet balance.
type SpinOutcome struct {
	SpinResult
	Coins int
}

// Spin deducts the cost, draws a prize and merges it into the persisted
// inventory. A failed spin (not enough coins) changes nothing.
func (s *Service) Spin(ctx context.Context) (*SpinOutcome, error) {
	state, _ := s.loadState(ctx)

	result := s.roulette.Spin(state.Coins, s.now())
	if !result.Success {
		return &SpinOutcome{SpinResult: result, Coins: state.Coins}, nil
	}

	state.Coins -= result.CoinsSpent

	inv := s.loadInventory(ctx)
	MergePrize(inv, *result.Prize)

	if err := s.store.SaveSpin(ctx, state.Snapshot(), InventorySnapshot(inv)); err != nil {
		return nil, err
	}
	return &SpinOutcome{SpinResult: result, Coins: state.Coins}, nil
}

// Equip equips an unlocked decoration, keeping at most one item equipped per
// decoration type.
func (s *Service) Equip(ctx context.Context, id string) ([]Decoration, error) {
	inv := s.loadInventory(ctx)
	if err := EquipDecoration(inv, id); err != nil {
		return nil, err
	}
	if err := s.store.SaveInventory(ctx, InventorySnapshot(inv)); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) Inventory(ctx context.Context) []Decoration {
	return s.loadInventory(ctx)
}

func (s *Service) CollectionStats(ctx context.Context) CollectionStats {
	return Stats(s.loadInventory(ctx))
}

// CompleteOnboarding validates and stores the four onboarding answers, flags
// onboarding done and regenerates today's missions from the new preferences.
func (s *Service) CompleteOnboarding(ctx context.Context, prefs UserPreferences) (*GameState, error) {
	if !prefs.IsComplete() {
		return nil, fmt.Errorf("all four answers are required (goal, time, intensity, style)")
	}

	now := s.now()
	prefs.CompletedOnboarding = true
	if prefs.CreatedAt.IsZero() {
		prefs.CreatedAt = now
	}

	state, _ := s.loadState(ctx)
	state.UpdatePreferences(prefs, now)
	state.HasCompletedOnboarding = true

	if err := s.store.SaveUserPreferences(ctx, PreferencesSnapshot(prefs)); err != nil {
		return nil, err
	}
	if err := s.store.SetOnboardingCompleted(ctx, true); err != nil {
		return nil, err
	}
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *Service) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	return s.store.HasCompletedOnboarding(ctx)
}

// MotivationalMessage computes the reminder text for the notification side
// and records that a reminder went out today.
func (s *Service) MotivationalMessage(ctx context.Context) (string, error) {
	state, _ := s.loadState(ctx)

	today := DateKey(s.now())
	state.LastNotificationDate = &today
	if err := s.saveState(ctx, state); err != nil {
		return "", err
	}
	return MotivationalMessage(state), nil
}

// Reset wipes all saved data.
func (s *Service) Reset(ctx context.Context) error {
	return s.store.ClearAllData(ctx)
}
