package models

// Screens the app can be on. The state machine in services owns the
// transitions between them.
type Screen string

const (
	ScreenLoading      Screen = "loading"
	ScreenAuthLoading  Screen = "auth-loading"
	ScreenAuth         Screen = "auth"
	ScreenProfileSetup Screen = "profile-setup"
	ScreenSwipe        Screen = "swipe"
	ScreenMatches      Screen = "matches"
	ScreenChat         Screen = "chat"
)

// Swipe directions
const (
	SwipeAccept = "accept"
	SwipeReject = "reject"
)

// Experience levels a profile may declare
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
	ExperienceExpert       = "Expert"
)

// ExperienceLevels lists the accepted values in ascending order.
var ExperienceLevels = []string{
	ExperienceBeginner,
	ExperienceIntermediate,
	ExperienceAdvanced,
	ExperienceExpert,
}

// HackathonGoals are the selectable goals shown during profile setup.
var HackathonGoals = []string{"Chill", "Win", "Just Learn", "Network", "Build Portfolio"}
