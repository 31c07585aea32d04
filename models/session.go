package models

import "time"

// Session is the authenticated identity for one app run. It lives only in
// the server's session table; nothing outside the auth service mutates it.
type Session struct {
	UserID    string    `json:"userId"`
	EmailID   string    `json:"emailId"`
	Token     string    `json:"token"`
	FullName  string    `json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	// JustSignedUp is set on the session returned by sign-up and consumed
	// exactly once by the next routing decision, which forces a brand-new
	// account through profile setup before its profile row lands.
	JustSignedUp bool `json:"justSignedUp,omitempty"`
}

// UserAccount is the stored credential record backing a session.
type UserAccount struct {
	EmailID      string `dynamodbav:"emailId" json:"emailId"`
	UserID       string `dynamodbav:"userId" json:"userId"`
	FullName     string `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	PasswordHash string `dynamodbav:"passwordHash" json:"-"`
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}

// UsersTable is the DynamoDB table name for user accounts
const UsersTable = "Users"
