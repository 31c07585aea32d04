package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"codesaathi_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the session gateway. Credentials live in the Users table;
// live sessions are held in memory keyed by an opaque token.
type AuthService struct {
	Dynamo *DynamoService

	// Table overrides the default users table name when set.
	Table string

	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewAuthService(dynamo *DynamoService) *AuthService {
	return &AuthService{
		Dynamo:   dynamo,
		sessions: make(map[string]*models.Session),
	}
}

func (as *AuthService) tableName() string {
	if as.Table != "" {
		return as.Table
	}
	return models.UsersTable
}

// SignUp registers a new account and opens a session for it. The returned
// session carries JustSignedUp=true so the next routing decision sends the
// user to profile setup even before a profile row exists.
func (as *AuthService) SignUp(ctx context.Context, email, password, fullName string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	key := map[string]types.AttributeValue{
		"emailId": &types.AttributeValueMemberS{Value: email},
	}
	_, err := as.Dynamo.GetItem(ctx, as.tableName(), key)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrItemNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := models.UserAccount{
		EmailID:      email,
		UserID:       uuid.NewString(),
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := as.Dynamo.PutItem(ctx, as.tableName(), account); err != nil {
		return nil, fmt.Errorf("failed to store account: %w", err)
	}

	log.Printf("New account registered for %s (userId=%s)", email, account.UserID)
	return as.openSession(account, true), nil
}

// SignIn checks the stored credentials and opens a session.
func (as *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	key := map[string]types.AttributeValue{
		"emailId": &types.AttributeValueMemberS{Value: email},
	}
	item, err := as.Dynamo.GetItem(ctx, as.tableName(), key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	var account models.UserAccount
	if err := attributevalue.UnmarshalMap(item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	log.Printf("User %s signed in", account.UserID)
	return as.openSession(account, false), nil
}

func (as *AuthService) openSession(account models.UserAccount, justSignedUp bool) *models.Session {
	session := &models.Session{
		UserID:       account.UserID,
		EmailID:      account.EmailID,
		FullName:     account.FullName,
		Token:        uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		JustSignedUp: justSignedUp,
	}

	as.mu.Lock()
	as.sessions[session.Token] = session
	as.mu.Unlock()
	return session
}

// CurrentSession returns the session for a token, or nil when there is none.
// It never fails hard; an unknown token is simply "unauthenticated".
func (as *AuthService) CurrentSession(token string) *models.Session {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.sessions[token]
}

// ConsumeJustSignedUp reports whether the session belongs to a freshly
// registered account, clearing the flag in the same step so later routing
// decisions do not see stale state.
func (as *AuthService) ConsumeJustSignedUp(token string) bool {
	as.mu.Lock()
	defer as.mu.Unlock()

	session, ok := as.sessions[token]
	if !ok {
		return false
	}
	fresh := session.JustSignedUp
	session.JustSignedUp = false
	return fresh
}

// SignOut drops the session. Always succeeds locally.
func (as *AuthService) SignOut(token string) {
	as.mu.Lock()
	delete(as.sessions, token)
	as.mu.Unlock()
}
