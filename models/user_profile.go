package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID          string   `dynamodbav:"userId" json:"userId"`
	Name            string   `dynamodbav:"name" json:"name"`
	Bio             string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Skills          []string `dynamodbav:"skills,omitempty" json:"skills,omitempty"`
	Experience      string   `dynamodbav:"experience,omitempty" json:"experience,omitempty"`
	Goals           []string `dynamodbav:"goals,omitempty" json:"goals,omitempty"`
	MatchPercentage int      `dynamodbav:"matchPercentage,omitempty" json:"matchPercentage,omitempty"`
	Image           string   `dynamodbav:"image,omitempty" json:"image,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
