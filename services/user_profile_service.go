package services

import (
	"context"
	"errors"
	"fmt"

	"codesaathi_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserProfileService is the profile store.
type UserProfileService struct {
	Dynamo *DynamoService

	// Table overrides the default profiles table name when set.
	Table string
}

func (ups *UserProfileService) tableName() string {
	if ups.Table != "" {
		return ups.Table
	}
	return models.UserProfilesTable
}

// GetProfile retrieves a user profile by ID. A missing profile is a valid
// result and comes back as (nil, nil); only transport failures error.
func (ups *UserProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, ups.tableName(), key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// SaveProfile upserts a profile keyed by userId. PutItem overwrites the
// whole record, so saving the same content twice leaves exactly one row.
func (ups *UserProfileService) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}
	if err := ups.Dynamo.PutItem(ctx, ups.tableName(), profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// DeleteProfile removes a user profile.
func (ups *UserProfileService) DeleteProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ups.Dynamo.DeleteItem(ctx, ups.tableName(), key)
}

func validateProfile(profile models.UserProfile) error {
	if profile.UserID == "" {
		return &ValidationError{Field: "userId", Reason: "is required"}
	}
	if profile.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if len(profile.Skills) == 0 {
		return &ValidationError{Field: "skills", Reason: "must contain at least one entry"}
	}
	if profile.Experience == "" {
		return &ValidationError{Field: "experience", Reason: "is required"}
	}
	for _, level := range models.ExperienceLevels {
		if profile.Experience == level {
			return nil
		}
	}
	return &ValidationError{Field: "experience", Reason: "must be one of Beginner, Intermediate, Advanced, Expert"}
}
