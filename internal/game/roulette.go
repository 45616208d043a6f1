package game

import (
	"fmt"
	"math/rand"
	"time"
)

// SpinCost is the coin price of one roulette spin.
const SpinCost = 50

// SpinResult reports one roulette attempt. A failed spin mutates nothing;
// on success the caller deducts CoinsSpent and merges Prize into the
// persisted inventory.
type SpinResult struct {
	Success     bool
	Prize       *Decoration
	CoinsSpent  int
	CoinsNeeded int
	Message     string
}

// Roulette draws weighted-random decorations. The rand source is injectable
// so tests can drive the distribution deterministically.
type Roulette struct {
	rng *rand.Rand
}

func NewRoulette(rng *rand.Rand) *Roulette {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Roulette{rng: rng}
}

// Spin validates the wallet and, on success, draws one prize. The prize is a
// fresh unlocked copy of a catalog entry, never the catalog entry itself.
func (r *Roulette) Spin(playerCoins int, now time.Time) SpinResult {
	if playerCoins < SpinCost {
		return SpinResult{
			Success:     false,
			CoinsNeeded: SpinCost - playerCoins,
		}
	}

	prize := r.draw()
	prize.Unlock(now)

	return SpinResult{
		Success:    true,
		Prize:      &prize,
		CoinsSpent: SpinCost,
		Message:    r.winMessage(prize.Rarity),
	}
}

// draw picks a rarity tier on a [0,100) roll — legendary 3%, epic 12%,
// rare 25%, common 60% — then a uniform entry within the tier.
func (r *Roulette) draw() Decoration {
	roll := r.rng.Float64() * 100

	var rarity Rarity
	switch {
	case roll <= 3:
		rarity = RarityLegendary
	case roll <= 15:
		rarity = RarityEpic
	case roll <= 40:
		rarity = RarityRare
	default:
		rarity = RarityCommon
	}

	tier := decorationsByRarity(rarity)
	return tier[r.rng.Intn(len(tier))]
}

func (r *Roulette) winMessage(rarity Rarity) string {
	pool := winMessages[rarity]
	if len(pool) == 0 {
		pool = winMessages[RarityCommon]
	}
	return pool[r.rng.Intn(len(pool))]
}

var winMessages = map[Rarity][]string{
	RarityCommon: {
		"Nice! A new decoration for your collection",
		"Well done! Every small prize counts",
		"Sweet! Your pet looks better every day",
	},
	RarityRare: {
		"Amazing! You got something special",
		"Lucky you! An uncommon decoration",
		"Excellent! Your style just leveled up",
	},
	RarityEpic: {
		"EPIC! You unlocked something extraordinary",
		"Impressive! An epic-tier decoration",
		"WOW! Your pet will be the envy of everyone",
	},
	RarityLegendary: {
		"🌟 LEGENDARY! This is the top prize! 🌟",
		"👑 Unbelievable! You got the impossible 👑",
		"⚡ Incredible! Ultra rare decoration unlocked ⚡",
	},
}

// MergePrize reconciles a spin prize into the persisted inventory by ID.
// A prize that is already unlocked is a harmless repeat unlock.
func MergePrize(inventory []Decoration, prize Decoration) {
	for i := range inventory {
		if inventory[i].ID != prize.ID {
			continue
		}
		if !inventory[i].IsUnlocked {
			inventory[i].IsUnlocked = true
			inventory[i].ObtainedAt = prize.ObtainedAt
		}
		return
	}
}

// EquipDecoration equips the decoration with the given ID, first unequipping
// any other inventory item of the same type so at most one item per type is
// ever equipped. Locked decorations cannot be equipped.
func EquipDecoration(inventory []Decoration, id string) error {
	target := -1
	for i := range inventory {
		if inventory[i].ID == id {
			target = i
			break
		}
	}
	if target == -1 {
		return fmt.Errorf("unknown decoration: %s", id)
	}
	if !inventory[target].IsUnlocked {
		return fmt.Errorf("decoration %s is still locked", id)
	}

	for i := range inventory {
		if i != target && inventory[i].Type == inventory[target].Type {
			inventory[i].Unequip()
		}
	}
	inventory[target].Equip()
	return nil
}

// CollectionStats summarizes a player's decoration collection.
type CollectionStats struct {
	Total             int
	Unlocked          int
	Equipped          int
	UnlockedByRarity  map[Rarity]int
	CompletionPercent int
}

func Stats(inventory []Decoration) CollectionStats {
	stats := CollectionStats{
		Total:            len(inventory),
		UnlockedByRarity: map[Rarity]int{},
	}
	for i := range inventory {
		d := &inventory[i]
		if d.IsUnlocked {
			stats.Unlocked++
			stats.UnlockedByRarity[d.Rarity]++
		}
		if d.IsEquipped {
			stats.Equipped++
		}
	}
	if size := CatalogSize(); size > 0 {
		stats.CompletionPercent = int(float64(stats.Unlocked)/float64(size)*100 + 0.5)
	}
	return stats
}

// PetDisplay is the composed emoji rendering of the pet with its equipped
// decorations, used by the CLI and the TUI.
type PetDisplay struct {
	Main       string
	Background string
	Effects    []string
	Full       string
}

func DisplayPet(pet Pet, inventory []Decoration) PetDisplay {
	display := PetDisplay{Main: pet.MoodEmoji()}

	for i := range inventory {
		d := &inventory[i]
		if !d.IsEquipped {
			continue
		}
		switch d.Type {
		case DecorationHat:
			display.Main = d.Emoji + display.Main
		case DecorationAccessory:
			display.Main = display.Main + d.Emoji
		case DecorationBackground:
			display.Background = d.Emoji
		case DecorationEffect:
			display.Effects = append(display.Effects, d.Emoji)
		}
	}

	display.Full = display.Background + display.Main
	for _, e := range display.Effects {
		display.Full += e
	}
	return display
}

// CollectionGoal describes progress toward the legendary collection, the
// long-term chase the roulette dangles in front of the player.
type CollectionGoal struct {
	Title       string
	Description string
	Progress    int
	IsComplete  bool
}

func LegendaryGoal(inventory []Decoration) CollectionGoal {
	unlocked, total := 0, 0
	for i := range inventory {
		if inventory[i].Rarity != RarityLegendary {
			continue
		}
		total++
		if inventory[i].IsUnlocked {
			unlocked++
		}
	}

	if total > 0 && unlocked == total {
		return CollectionGoal{
			Title:       "🏆 Collection complete!",
			Description: "You unlocked every legendary decoration",
			Progress:    100,
			IsComplete:  true,
		}
	}

	progress := 0
	if total > 0 {
		progress = int(float64(unlocked)/float64(total)*100 + 0.5)
	}
	return CollectionGoal{
		Title:       "💎 Legendary decorations",
		Description: fmt.Sprintf("%d/%d unlocked", unlocked, total),
		Progress:    progress,
	}
}
