package game

import "time"

// Decoration is a cosmetic item for the pet, unlockable through the roulette.
type Decoration struct {
	ID          string
	Name        string
	Type        DecorationType
	Emoji       string
	Rarity      Rarity
	Description string
	IsUnlocked  bool
	IsEquipped  bool
	ObtainedAt  *time.Time
}

// Unlock flags the decoration as owned and records when it was obtained.
// Repeat unlocks keep the original timestamp.
func (d *Decoration) Unlock(now time.Time) {
	d.IsUnlocked = true
	if d.ObtainedAt == nil {
		t := now
		d.ObtainedAt = &t
	}
}

// Equip only takes effect on unlocked decorations.
func (d *Decoration) Equip() {
	if d.IsUnlocked {
		d.IsEquipped = true
	}
}

func (d *Decoration) Unequip() {
	d.IsEquipped = false
}
