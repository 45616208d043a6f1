package game

import "time"

const (
	// FeedExperience is awarded per feeding.
	FeedExperience = 10

	// LevelUpThresholdPerLevel: the pet levels up once experience reaches
	// Level * LevelUpThresholdPerLevel.
	LevelUpThresholdPerLevel = 100
)

// Pet is the emotional companion the player keeps happy by feeding it.
type Pet struct {
	Name       string
	Mood       Mood
	LastFed    *time.Time
	Level      int
	Experience int
}

// NewPet returns the default starting pet. It begins sad; the first feeding
// cheers it up.
func NewPet() Pet {
	return Pet{
		Name:  "Wellness",
		Mood:  MoodSad,
		Level: 1,
	}
}

func (p *Pet) Happy() bool { return p.Mood == MoodHappy }

// Feed cheers the pet up, stamps the feed time and grants experience,
// leveling up when the threshold for the current level is reached.
func (p *Pet) Feed(now time.Time) {
	p.Mood = MoodHappy
	t := now
	p.LastFed = &t
	p.Experience += FeedExperience
	if p.Experience >= p.Level*LevelUpThresholdPerLevel {
		p.Level++
	}
}

// UpdateMood applies the decay rule: the pet turns sad when it has gone
// more than one day without being fed.
func (p *Pet) UpdateMood(daysSinceLastFed int) {
	if daysSinceLastFed > 1 {
		p.Mood = MoodSad
	}
}

func (p *Pet) MoodEmoji() string {
	if p.Happy() {
		return "😊"
	}
	return "😢"
}

func (p *Pet) StatusText() string {
	if p.Happy() {
		return "Happy and motivated"
	}
	return "Needs attention"
}
