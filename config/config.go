package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment-driven settings for the server.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	AWSRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	S3BucketName string `env:"S3_BUCKET_NAME"`

	// Table names are overridable so staging stacks can point at their own tables.
	UserProfilesTable string `env:"USER_PROFILES_TABLE" envDefault:"UserProfiles"`
	UsersTable        string `env:"USERS_TABLE" envDefault:"Users"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return cfg, nil
}
