package storage

import "time"

// Snapshot records are the persisted wire format: plain data holders with no
// behavior. The game package rebuilds behavior-bearing entities from them on
// load (and never the other way around).

type GameStateSnapshot struct {
	Coins          int `json:"coins"`
	Hearts         int `json:"hearts"`
	DailyHearts    int `json:"dailyHearts"`
	PetVisualState int `json:"petVisualState"`

	Pet             PetSnapshot         `json:"pet"`
	UserPreferences PreferencesSnapshot `json:"userPreferences"`
	DailyMissions   []MissionSnapshot   `json:"dailyMissions"`

	CurrentDate            string `json:"currentDate"`
	DaysCompleted          int    `json:"daysCompleted"`
	TotalMissionsCompleted int    `json:"totalMissionsCompleted"`

	HasCompletedOnboarding bool    `json:"hasCompletedOnboarding"`
	LastNotificationDate   *string `json:"lastNotificationDate"`
}

type PetSnapshot struct {
	Name       string     `json:"name"`
	Mood       string     `json:"mood"`
	LastFed    *time.Time `json:"lastFed"`
	Level      int        `json:"level"`
	Experience int        `json:"experience"`
}

type PreferencesSnapshot struct {
	Goal                string    `json:"goal"`
	Availability        string    `json:"availability"`
	Intensity           string    `json:"intensity"`
	Style               string    `json:"style"`
	CompletedOnboarding bool      `json:"completedOnboarding"`
	CreatedAt           time.Time `json:"createdAt"`
}

type MissionSnapshot struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	Intensity   string    `json:"intensity"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DecorationSnapshot struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Emoji       string     `json:"emoji"`
	Rarity      string     `json:"rarity"`
	Description string     `json:"description"`
	IsUnlocked  bool       `json:"isUnlocked"`
	IsEquipped  bool       `json:"isEquipped"`
	ObtainedAt  *time.Time `json:"obtainedAt"`
}
