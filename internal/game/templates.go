package game

// missionTemplate is an authored mission blueprint. Durations are on the
// authored 2-20 minute scale and get remapped per availability at
// generation time.
type missionTemplate struct {
	Title       string
	Description string
	Duration    int
	Styles      []Style
}

func (t missionTemplate) hasStyle(s Style) bool {
	for _, ts := range t.Styles {
		if ts == s {
			return true
		}
	}
	return false
}

// missionTemplates is the full authored catalog, bucketed by wellness goal
// and preferred intensity.
var missionTemplates = map[Category]map[Intensity][]missionTemplate{
	CategoryEnergy: {
		IntensityGentle: {
			{
				Title:       "Revitalizing water",
				Description: "Drink a tall glass of fresh water and feel the hydration",
				Duration:    2,
				Styles:      []Style{StylePersonal, StyleReflective},
			},
			{
				Title:       "Energizing breath",
				Description: "Take 10 deep breaths near an open window",
				Duration:    3,
				Styles:      []Style{StylePersonal, StyleReflective},
			},
			{
				Title:       "Morning stretch",
				Description: "Gently stretch your arms and legs like a cat",
				Duration:    5,
				Styles:      []Style{StylePersonal, StyleActive},
			},
		},
		IntensityNormal: {
			{
				Title:       "Brisk walk",
				Description: "Walk for 10 minutes at a steady pace, indoors or out",
				Duration:    10,
				Styles:      []Style{StyleActive, StylePersonal},
			},
			{
				Title:       "Healthy snack",
				Description: "Eat a piece of fruit or a handful of nuts for natural energy",
				Duration:    5,
				Styles:      []Style{StylePersonal},
			},
			{
				Title:       "Motivation music",
				Description: "Play your favorite song and move to the beat",
				Duration:    4,
				Styles:      []Style{StylePersonal, StyleActive},
			},
		},
		IntensityActive: {
			{
				Title:       "Mini workout",
				Description: "Do 20 jumping jacks or squats right where you are",
				Duration:    8,
				Styles:      []Style{StyleActive},
			},
			{
				Title:       "Stair sprints",
				Description: "Climb up and down the stairs 3 times with energy",
				Duration:    6,
				Styles:      []Style{StyleActive},
			},
			{
				Title:       "Free dance",
				Description: "Put on music and dance like nobody is watching for 5 minutes",
				Duration:    5,
				Styles:      []Style{StyleActive, StylePersonal},
			},
		},
	},

	CategoryStress: {
		IntensityGentle: {
			{
				Title:       "Zen breathing",
				Description: "Breathe slowly and deeply: inhale 4 seconds, exhale 6",
				Duration:    5,
				Styles:      []Style{StyleReflective, StylePersonal},
			},
			{
				Title:       "Mental gratitude",
				Description: "Think of 3 things you feel grateful for today",
				Duration:    3,
				Styles:      []Style{StyleReflective, StylePersonal},
			},
			{
				Title:       "Mindful pause",
				Description: "Sit comfortably and watch your thoughts without judging them",
				Duration:    7,
				Styles:      []Style{StyleReflective},
			},
		},
		IntensityNormal: {
			{
				Title:       "Calming sounds",
				Description: "Listen to nature sounds or soft relaxing music",
				Duration:    8,
				Styles:      []Style{StyleReflective, StylePersonal},
			},
			{
				Title:       "Tidy your space",
				Description: "Organize your desk or a small personal corner",
				Duration:    10,
				Styles:      []Style{StylePersonal},
			},
			{
				Title:       "Reach out",
				Description: "Send a message or call someone who makes you smile",
				Duration:    5,
				Styles:      []Style{StyleSocial},
			},
		},
		IntensityActive: {
			{
				Title:       "Walking meditation",
				Description: "Walk slowly and pay attention to every step",
				Duration:    12,
				Styles:      []Style{StyleActive, StyleReflective},
			},
			{
				Title:       "Journal your feelings",
				Description: "Write down how you feel right now, unfiltered",
				Duration:    8,
				Styles:      []Style{StyleReflective, StylePersonal},
			},
			{
				Title:       "Gentle yoga",
				Description: "Flow through 3 or 4 simple yoga poses to unwind",
				Duration:    10,
				Styles:      []Style{StyleActive, StyleReflective},
			},
		},
	},

	CategoryMovement: {
		IntensityGentle: {
			{
				Title:       "Neck circles",
				Description: "Roll your neck gently, 10 circles to each side",
				Duration:    3,
				Styles:      []Style{StylePersonal, StyleActive},
			},
			{
				Title:       "Home stroll",
				Description: "Take a quiet lap around your home or room",
				Duration:    5,
				Styles:      []Style{StylePersonal, StyleActive},
			},
			{
				Title:       "Hands and wrists",
				Description: "Rotate your wrists and stretch your fingers after screen time",
				Duration:    2,
				Styles:      []Style{StylePersonal},
			},
		},
		IntensityNormal: {
			{
				Title:       "Take the stairs",
				Description: "Use the stairs instead of the elevator when you get the chance",
				Duration:    5,
				Styles:      []Style{StyleActive},
			},
			{
				Title:       "Active cleanup",
				Description: "Clean something around the house while moving with energy",
				Duration:    12,
				Styles:      []Style{StylePersonal, StyleActive},
			},
			{
				Title:       "Power walk",
				Description: "Head out for a quick walk around the block",
				Duration:    15,
				Styles:      []Style{StyleActive},
			},
		},
		IntensityActive: {
			{
				Title:       "Quick HIIT",
				Description: "Two minutes of intense exercise: burpees, squats, push-ups",
				Duration:    8,
				Styles:      []Style{StyleActive},
			},
			{
				Title:       "Run in place",
				Description: "Jog in place for 3 minutes at medium intensity",
				Duration:    5,
				Styles:      []Style{StyleActive},
			},
			{
				Title:       "Strength challenge",
				Description: "Do as many push-ups or squats as you can in 2 minutes",
				Duration:    6,
				Styles:      []Style{StyleActive},
			},
		},
	},
}
