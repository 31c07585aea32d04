package utils

import "codesaathi_server/models"

// MatchScore estimates how well two profiles fit as teammates, as a
// percentage in [50, 99]. Shared goals weigh more than shared skills:
// a team that wants the same thing out of the hackathon matters more than
// overlapping toolboxes. Complementary (non-overlapping) skills still add
// a little.
func MatchScore(mine, theirs models.UserProfile) int {
	score := 50

	sharedSkills := overlap(mine.Skills, theirs.Skills)
	sharedGoals := overlap(mine.Goals, theirs.Goals)

	score += sharedSkills * 8
	score += sharedGoals * 12

	// Complementary skills: candidates who bring something we lack.
	score += (len(theirs.Skills) - sharedSkills) * 2

	if mine.Experience != "" && mine.Experience == theirs.Experience {
		score += 5
	}

	if score > 99 {
		score = 99
	}
	return score
}

func overlap(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	count := 0
	for _, s := range b {
		if _, ok := set[s]; ok {
			count++
		}
	}
	return count
}
