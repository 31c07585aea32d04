package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"codesaathi_server/models"
	"codesaathi_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchService discovers swipe candidates for a user.
type MatchService struct {
	Dynamo *DynamoService

	// Table overrides the default profiles table name when set.
	Table string
}

func (ms *MatchService) tableName() string {
	if ms.Table != "" {
		return ms.Table
	}
	return models.UserProfilesTable
}

// CandidatesFor scans the profiles table for everyone except the requesting
// user, scores each candidate against the user's own profile, and returns
// them ordered best match first. A fresh deployment with no other profiles
// falls back to the seeded demo candidates so the feed is never empty.
func (ms *MatchService) CandidatesFor(ctx context.Context, self *models.UserProfile) ([]models.UserProfile, error) {
	selfID := ""
	if self != nil {
		selfID = self.UserID
	}

	var candidates []models.UserProfile
	err := ms.Dynamo.ScanWithFilter(ctx, ms.tableName(), func(item map[string]types.AttributeValue) bool {
		idAttr, ok := item["userId"].(*types.AttributeValueMemberS)
		if !ok {
			return false
		}
		return idAttr.Value != selfID
	}, &candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	if len(candidates) == 0 {
		log.Printf("No candidate profiles found for %s, using seeded candidates", selfID)
		seeded := make([]models.UserProfile, len(models.DefaultCandidates))
		copy(seeded, models.DefaultCandidates)
		return seeded, nil
	}

	if self != nil {
		for i := range candidates {
			candidates[i].MatchPercentage = utils.MatchScore(*self, candidates[i])
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchPercentage > candidates[j].MatchPercentage
	})

	log.Printf("Found %d candidates for %s", len(candidates), selfID)
	return candidates, nil
}
