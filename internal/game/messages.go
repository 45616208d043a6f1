package game

import "fmt"

// MotivationalMessage computes the daily reminder text from the current
// state: streak, today's completion, the pet's mood and the heart balance.
// Pure function; the notification side only delivers the string.
func MotivationalMessage(s *GameState) string {
	completion := s.TodayCompletionPercentage()

	var pool []string
	switch {
	case completion == 100:
		pool = []string{
			"🏆 Day complete! Your pet is beaming with pride.",
			"✨ All missions done. Enjoy the rest of your day!",
			fmt.Sprintf("🎉 Perfect day number %d in the making!", s.DaysCompleted+1),
		}
	case s.Pet.Mood == MoodSad && s.Hearts > 0:
		pool = []string{
			fmt.Sprintf("💝 %s misses you. You have %d hearts to spend!", s.Pet.Name, s.Hearts),
			"🎯 Your pet could use some care. A quick feeding would help.",
			"😢 Someone small and fluffy is waiting for you.",
		}
	case s.DaysCompleted >= 3:
		pool = []string{
			fmt.Sprintf("🔥 %d full days and counting! You're unstoppable.", s.DaysCompleted),
			fmt.Sprintf("⭐ Your %d-day run is inspiring. Keep it going!", s.DaysCompleted),
			fmt.Sprintf("💫 %d days of caring for yourself. Your pet is so proud.", s.DaysCompleted),
		}
	case completion > 0:
		pool = []string{
			"🎯 You're partway there. One more mission?",
			"💪 Good start! A few minutes finishes the day.",
			"🌟 Momentum looks good on you. Keep going!",
		}
	default:
		pool = []string{
			"🌱 Your wellness day is waiting! Small steps, big changes.",
			"💪 Time for a little self-care. Your pet is waiting too.",
			"✨ A moment for yourself can change the whole day.",
		}
	}

	// Deterministic pick: rotate through the pool as lifetime progress grows,
	// so the message varies day to day but stays a pure function of state.
	return pool[s.TotalMissionsCompleted%len(pool)]
}
