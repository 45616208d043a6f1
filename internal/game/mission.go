package game

import "time"

// Mission is a short wellness activity the user can complete once per day.
type Mission struct {
	ID          string
	Title       string
	Description string
	Duration    int // minutes
	Status      MissionStatus
	Category    Category
	Intensity   Intensity
	CreatedAt   time.Time
}

func (m *Mission) Completed() bool {
	return m.Status == MissionCompleted
}

func (m *Mission) Complete() {
	m.Status = MissionCompleted
}
