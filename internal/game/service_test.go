package game

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"pawmate/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := NewService(db)
	svc.roulette = NewRoulette(rand.New(rand.NewSource(1)))
	return svc
}

func testPrefs() UserPreferences {
	return UserPreferences{
		Goal:         CategoryStress,
		Availability: AvailabilityMedium,
		Intensity:    IntensityNormal,
		Style:        StyleReflective,
	}
}

func TestOnboardingFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	done, err := svc.HasCompletedOnboarding(ctx)
	if err != nil {
		t.Fatalf("flag before: %v", err)
	}
	if done {
		t.Fatalf("fresh install should not report onboarding complete")
	}

	if _, err := svc.CompleteOnboarding(ctx, UserPreferences{Goal: CategoryStress}); err == nil {
		t.Fatalf("partial answers should be rejected")
	}

	state, err := svc.CompleteOnboarding(ctx, testPrefs())
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if len(state.DailyMissions) != DailyMissionCount {
		t.Fatalf("got %d missions after onboarding, want %d", len(state.DailyMissions), DailyMissionCount)
	}
	for _, m := range state.DailyMissions {
		if m.Category != CategoryStress {
			t.Fatalf("mission category %s, want %s", m.Category, CategoryStress)
		}
	}

	done, err = svc.HasCompletedOnboarding(ctx)
	if err != nil {
		t.Fatalf("flag after: %v", err)
	}
	if !done {
		t.Fatalf("onboarding flag should persist")
	}

	// Reload sees the same missions, not a regenerated set.
	again, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if again.DailyMissions[0].ID != state.DailyMissions[0].ID {
		t.Fatalf("missions regenerated on reload")
	}
}

func TestCompleteMissionByPositionAndID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, err := svc.CompleteOnboarding(ctx, testPrefs()); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	res, err := svc.CompleteMission(ctx, "1")
	if err != nil {
		t.Fatalf("complete by position: %v", err)
	}
	if !res.Rewarded || res.Coins != MissionRewardCoins || res.Hearts != StartingHearts+MissionRewardHearts {
		t.Fatalf("reward wrong: %+v", res)
	}

	// Same mission again, now by ID: reported but not rewarded twice.
	res2, err := svc.CompleteMission(ctx, res.Mission.ID)
	if err != nil {
		t.Fatalf("complete by id: %v", err)
	}
	if res2.Rewarded {
		t.Fatalf("second completion should not be rewarded")
	}
	if res2.Coins != res.Coins {
		t.Fatalf("coins changed on repeat completion: %d -> %d", res.Coins, res2.Coins)
	}

	if _, err := svc.CompleteMission(ctx, "99"); err == nil {
		t.Fatalf("completing an unknown mission should fail")
	}

	// All three done marks the day complete.
	if _, err := svc.CompleteMission(ctx, "2"); err != nil {
		t.Fatalf("complete 2: %v", err)
	}
	res3, err := svc.CompleteMission(ctx, "3")
	if err != nil {
		t.Fatalf("complete 3: %v", err)
	}
	if !res3.DayCompleted || res3.CompletionPercent != 100 {
		t.Fatalf("day should be complete: %+v", res3)
	}
}

func TestFeedPetFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, err := svc.CompleteOnboarding(ctx, testPrefs()); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	res, err := svc.FeedPet(ctx)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if !res.Fed || res.Hearts != StartingHearts-1 || !res.Pet.Happy() {
		t.Fatalf("first feed: %+v", res)
	}

	// The mood change persists.
	state, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if !state.Pet.Happy() {
		t.Fatalf("pet mood did not persist")
	}

	// Burn the remaining hearts, then the wallet guard fires.
	for i := 0; i < StartingHearts-1; i++ {
		if _, err := svc.FeedPet(ctx); err != nil {
			t.Fatalf("feed %d: %v", i, err)
		}
	}
	res, err = svc.FeedPet(ctx)
	if err != nil {
		t.Fatalf("feed with empty wallet: %v", err)
	}
	if res.Fed || res.Reason == "" {
		t.Fatalf("expected a refusal with a reason: %+v", res)
	}
}

func TestSpinFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, err := svc.CompleteOnboarding(ctx, testPrefs()); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	out, err := svc.Spin(ctx)
	if err != nil {
		t.Fatalf("broke spin: %v", err)
	}
	if out.Success {
		t.Fatalf("spin with 0 coins should fail")
	}
	if out.CoinsNeeded != SpinCost {
		t.Fatalf("coinsNeeded=%d, want %d", out.CoinsNeeded, SpinCost)
	}

	// Seed a wallet directly through the store.
	state, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	state.Coins = 70
	if err := svc.Store().SaveGameState(ctx, state.Snapshot()); err != nil {
		t.Fatalf("seed coins: %v", err)
	}

	out, err = svc.Spin(ctx)
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if !out.Success || out.Coins != 70-SpinCost {
		t.Fatalf("spin outcome: %+v", out)
	}
	if out.Prize == nil {
		t.Fatalf("successful spin should carry a prize")
	}

	// The prize landed in the persisted inventory.
	inv := svc.Inventory(ctx)
	found := false
	for i := range inv {
		if inv[i].ID == out.Prize.ID {
			found = inv[i].IsUnlocked
		}
	}
	if !found {
		t.Fatalf("prize %s not unlocked in inventory", out.Prize.ID)
	}

	// And the wallet deduction stuck.
	state, err = svc.Today(ctx)
	if err != nil {
		t.Fatalf("today after spin: %v", err)
	}
	if state.Coins != 70-SpinCost {
		t.Fatalf("coins=%d after spin, want %d", state.Coins, 70-SpinCost)
	}
}

func TestEquipFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.Equip(ctx, "hat_cap"); err == nil {
		t.Fatalf("equipping a locked decoration should fail")
	}

	inv := svc.Inventory(ctx)
	now := time.Now()
	for i := range inv {
		if inv[i].ID == "hat_cap" {
			inv[i].Unlock(now)
		}
	}
	if err := svc.Store().SaveInventory(ctx, InventorySnapshot(inv)); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}

	updated, err := svc.Equip(ctx, "hat_cap")
	if err != nil {
		t.Fatalf("equip: %v", err)
	}
	equipped := false
	for i := range updated {
		if updated[i].ID == "hat_cap" {
			equipped = updated[i].IsEquipped
		}
	}
	if !equipped {
		t.Fatalf("hat_cap not equipped")
	}
}

func TestServiceRolloverAcrossDays(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }

	if _, err := svc.CompleteOnboarding(ctx, testPrefs()); err != nil {
		t.Fatalf("onboard: %v", err)
	}
	for _, ref := range []string{"1", "2", "3"} {
		if _, err := svc.CompleteMission(ctx, ref); err != nil {
			t.Fatalf("complete %s: %v", ref, err)
		}
	}
	day1State, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	oldIDs := map[string]bool{}
	for _, m := range day1State.DailyMissions {
		oldIDs[m.ID] = true
	}

	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }

	day2State, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today day2: %v", err)
	}
	if day2State.DaysCompleted != 1 {
		t.Fatalf("daysCompleted=%d after a perfect day, want 1", day2State.DaysCompleted)
	}
	if day2State.CurrentDate != "2025-06-02" {
		t.Fatalf("currentDate=%q", day2State.CurrentDate)
	}
	for _, m := range day2State.DailyMissions {
		if oldIDs[m.ID] {
			t.Fatalf("mission %s carried over from the previous day", m.ID)
		}
		if m.Completed() {
			t.Fatalf("new day mission already completed")
		}
	}

	// The rollover was persisted, not just computed in memory.
	again, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today again: %v", err)
	}
	if again.DailyMissions[0].ID != day2State.DailyMissions[0].ID {
		t.Fatalf("rollover result was not persisted")
	}
}

func TestMotivationalMessageChanges(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, err := svc.CompleteOnboarding(ctx, testPrefs()); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	msg, err := svc.MotivationalMessage(ctx)
	if err != nil {
		t.Fatalf("message: %v", err)
	}
	if msg == "" {
		t.Fatalf("expected a non-empty message")
	}

	for _, ref := range []string{"1", "2", "3"} {
		if _, err := svc.CompleteMission(ctx, ref); err != nil {
			t.Fatalf("complete %s: %v", ref, err)
		}
	}
	msg2, err := svc.MotivationalMessage(ctx)
	if err != nil {
		t.Fatalf("message after completion: %v", err)
	}
	if msg2 == msg {
		t.Fatalf("message should reflect the completed day")
	}

	state, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if state.LastNotificationDate == nil || *state.LastNotificationDate != state.CurrentDate {
		t.Fatalf("reminder date not recorded: %v", state.LastNotificationDate)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, err := svc.CompleteOnboarding(ctx, testPrefs()); err != nil {
		t.Fatalf("onboard: %v", err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	done, err := svc.HasCompletedOnboarding(ctx)
	if err != nil {
		t.Fatalf("flag: %v", err)
	}
	if done {
		t.Fatalf("reset should clear the onboarding flag")
	}
	state, err := svc.Today(ctx)
	if err != nil {
		t.Fatalf("today after reset: %v", err)
	}
	if state.Coins != 0 || state.Hearts != StartingHearts {
		t.Fatalf("state after reset: coins=%d hearts=%d", state.Coins, state.Hearts)
	}
}
