package game

// catalog is the immutable set of every decoration the roulette can award.
// Player inventories are always clones of this table, never shared slices.
var catalog = []Decoration{
	// Hats
	{ID: "hat_cap", Name: "Cool Cap", Type: DecorationHat, Emoji: "🧢", Rarity: RarityCommon, Description: "A sporty cap for a casual look"},
	{ID: "hat_party", Name: "Party Hat", Type: DecorationHat, Emoji: "🎉", Rarity: RarityRare, Description: "Perfect for celebrating wins"},
	{ID: "hat_top", Name: "Top Hat", Type: DecorationHat, Emoji: "🎩", Rarity: RarityEpic, Description: "Elegance and distinction"},
	{ID: "hat_crown", Name: "Royal Crown", Type: DecorationHat, Emoji: "👑", Rarity: RarityLegendary, Description: "For true wellness royalty"},

	// Accessories
	{ID: "acc_sunglasses", Name: "Sunglasses", Type: DecorationAccessory, Emoji: "🕶️", Rarity: RarityCommon, Description: "Look sharp on any occasion"},
	{ID: "acc_bowtie", Name: "Fancy Bow", Type: DecorationAccessory, Emoji: "🎀", Rarity: RarityRare, Description: "For special occasions"},
	{ID: "acc_medal", Name: "Gold Medal", Type: DecorationAccessory, Emoji: "🏅", Rarity: RarityEpic, Description: "A prize for your dedication"},

	// Backgrounds
	{ID: "bg_nature", Name: "Nature Scene", Type: DecorationBackground, Emoji: "🌿", Rarity: RarityCommon, Description: "A calming natural backdrop"},
	{ID: "bg_fire", Name: "Epic Flames", Type: DecorationBackground, Emoji: "🔥", Rarity: RarityRare, Description: "For true warriors"},
	{ID: "bg_space", Name: "Star Galaxy", Type: DecorationBackground, Emoji: "🌌", Rarity: RarityEpic, Description: "Drift among the stars"},

	// Effects
	{ID: "effect_hearts", Name: "Floating Hearts", Type: DecorationEffect, Emoji: "💖", Rarity: RarityCommon, Description: "Show your love for wellness"},
	{ID: "effect_sparkles", Name: "Magic Sparkles", Type: DecorationEffect, Emoji: "✨", Rarity: RarityRare, Description: "Glittering particles around you"},
	{ID: "acc_rainbow", Name: "Rainbow Aura", Type: DecorationEffect, Emoji: "🌈", Rarity: RarityLegendary, Description: "A magical glow all around you"},
	{ID: "effect_lightning", Name: "Power Bolts", Type: DecorationEffect, Emoji: "⚡", Rarity: RarityLegendary, Description: "Pure energy wraps around you"},
}

// CatalogSize is the number of decorations obtainable in total.
func CatalogSize() int { return len(catalog) }

// NewInventory clones the catalog into a fresh, fully locked player inventory.
func NewInventory() []Decoration {
	inv := make([]Decoration, len(catalog))
	copy(inv, catalog)
	return inv
}

func decorationsByRarity(r Rarity) []Decoration {
	var out []Decoration
	for _, d := range catalog {
		if d.Rarity == r {
			out = append(out, d)
		}
	}
	return out
}
