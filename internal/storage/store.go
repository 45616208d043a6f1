package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const (
	keyGameState   = "game_state"
	keyPreferences = "user_preferences"
	keyInventory   = "inventory"
	keyOnboarding  = "onboarding_completed"
)

// Store is the key-value snapshot persistence boundary. Missing rows come
// back as nil so callers can degrade to fresh defaults; on-disk corruption
// surfaces as an error for the caller to apply the same policy.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("snapshot get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("snapshot put %s: %w", key, err)
	}
	return nil
}

func putTx(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("snapshot put %s: %w", key, err)
	}
	return nil
}

func (s *Store) SaveGameState(ctx context.Context, snap GameStateSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal game state: %w", err)
	}
	return s.put(ctx, keyGameState, string(data))
}

// LoadGameState returns nil with no error when nothing was saved yet.
func (s *Store) LoadGameState(ctx context.Context) (*GameStateSnapshot, error) {
	raw, ok, err := s.get(ctx, keyGameState)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var snap GameStateSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	return &snap, nil
}

func (s *Store) SaveUserPreferences(ctx context.Context, snap PreferencesSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	return s.put(ctx, keyPreferences, string(data))
}

func (s *Store) LoadUserPreferences(ctx context.Context) (*PreferencesSnapshot, error) {
	raw, ok, err := s.get(ctx, keyPreferences)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var snap PreferencesSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return &snap, nil
}

func (s *Store) SaveInventory(ctx context.Context, inv []DecorationSnapshot) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal inventory: %w", err)
	}
	return s.put(ctx, keyInventory, string(data))
}

// LoadInventory returns nil when no inventory was saved yet; the caller
// seeds a fresh one from the catalog.
func (s *Store) LoadInventory(ctx context.Context) ([]DecorationSnapshot, error) {
	raw, ok, err := s.get(ctx, keyInventory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var inv []DecorationSnapshot
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}
	return inv, nil
}

// SaveSpin persists the wallet deduction and the inventory unlock in one
// transaction so a crash between the two cannot eat the player's coins.
func (s *Store) SaveSpin(ctx context.Context, state GameStateSnapshot, inv []DecorationSnapshot) error {
	stateData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal game state: %w", err)
	}
	invData, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal inventory: %w", err)
	}
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := putTx(ctx, tx, keyGameState, string(stateData)); err != nil {
			return err
		}
		return putTx(ctx, tx, keyInventory, string(invData))
	})
}

func (s *Store) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	raw, ok, err := s.get(ctx, keyOnboarding)
	if err != nil || !ok {
		return false, err
	}
	var completed bool
	if err := json.Unmarshal([]byte(raw), &completed); err != nil {
		return false, fmt.Errorf("decode onboarding flag: %w", err)
	}
	return completed, nil
}

func (s *Store) SetOnboardingCompleted(ctx context.Context, completed bool) error {
	data, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("marshal onboarding flag: %w", err)
	}
	return s.put(ctx, keyOnboarding, string(data))
}

// ClearAllData wipes every snapshot. Used by `paw reset`.
func (s *Store) ClearAllData(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("clear snapshots: %w", err)
	}
	return nil
}
