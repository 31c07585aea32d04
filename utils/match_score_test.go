package utils

import (
	"testing"

	"codesaathi_server/models"

	"github.com/stretchr/testify/assert"
)

func TestMatchScoreBounds(t *testing.T) {
	empty := models.UserProfile{}
	assert.Equal(t, 50, MatchScore(empty, empty))

	loaded := models.UserProfile{
		Skills:     []string{"Python", "React", "SQL", "AWS", "Docker", "Figma"},
		Goals:      []string{"Win", "Chill", "Network", "Just Learn"},
		Experience: models.ExperienceExpert,
	}
	assert.Equal(t, 99, MatchScore(loaded, loaded), "score is capped at 99")
}

func TestMatchScoreRewardsSharedGoalsOverSkills(t *testing.T) {
	mine := models.UserProfile{
		Skills: []string{"Python"},
		Goals:  []string{"Win"},
	}
	sharedGoal := models.UserProfile{Goals: []string{"Win"}}
	sharedSkill := models.UserProfile{Skills: []string{"Python"}}

	assert.Greater(t, MatchScore(mine, sharedGoal), MatchScore(mine, sharedSkill))
}

func TestMatchScoreCountsComplementarySkills(t *testing.T) {
	mine := models.UserProfile{Skills: []string{"Python"}}
	complement := models.UserProfile{Skills: []string{"Figma", "UI/UX"}}
	nothing := models.UserProfile{}

	assert.Greater(t, MatchScore(mine, complement), MatchScore(mine, nothing))
}

func TestMatchScoreSameExperienceBonus(t *testing.T) {
	mine := models.UserProfile{Experience: models.ExperienceIntermediate}
	peer := models.UserProfile{Experience: models.ExperienceIntermediate}
	other := models.UserProfile{Experience: models.ExperienceExpert}

	assert.Equal(t, 55, MatchScore(mine, peer))
	assert.Equal(t, 50, MatchScore(mine, other))
}
