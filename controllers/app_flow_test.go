package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"codesaathi_server/models"
	"codesaathi_server/routes"
	"codesaathi_server/services"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryDynamo is a minimal in-memory services.DynamoDBAPI for router tests.
type memoryDynamo struct {
	mu     sync.Mutex
	keys   map[string]string
	tables map[string]map[string]map[string]types.AttributeValue
}

func newMemoryDynamo() *memoryDynamo {
	return &memoryDynamo{
		keys: map[string]string{
			"Users":        "emailId",
			"UserProfiles": "userId",
		},
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

func (m *memoryDynamo) key(table string, item map[string]types.AttributeValue) string {
	if attr, ok := item[m.keys[table]].(*types.AttributeValueMemberS); ok {
		return attr.Value
	}
	return ""
}

func (m *memoryDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	if m.tables[table] == nil {
		m.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	m.tables[table][m.key(table, params.Item)] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *memoryDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	return &dynamodb.GetItemOutput{Item: m.tables[table][m.key(table, params.Key)]}, nil
}

func (m *memoryDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := *params.TableName
	delete(m.tables[table], m.key(table, params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (m *memoryDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []map[string]types.AttributeValue
	for _, item := range m.tables[*params.TableName] {
		items = append(items, item)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func newTestRouter() *mux.Router {
	dynamo := &services.DynamoService{Client: newMemoryDynamo()}

	auth := services.NewAuthService(dynamo)
	profiles := &services.UserProfileService{Dynamo: dynamo}
	matches := &services.MatchService{Dynamo: dynamo}
	chat := services.NewChatService()
	chat.ReplyDelay = func() time.Duration { return 10 * time.Millisecond }
	app := services.NewAppService(auth, profiles, matches, chat)

	r := mux.NewRouter()
	routes.RegisterAuthRoutes(r, auth)
	routes.RegisterUserProfileRoutes(r, auth, profiles)
	routes.RegisterAppRoutes(r, app)
	routes.RegisterSwipeRoutes(r, app)
	routes.RegisterMatchRoutes(r, app)
	routes.RegisterChatRoutes(r, app)
	return r
}

// doJSON posts (or gets) JSON and decodes the response body into out.
func doJSON(t *testing.T, r *mux.Router, method, path, token string, body, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestSignUpToChatFlow(t *testing.T) {
	r := newTestRouter()

	// Sign up.
	var session models.Session
	rec := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "riya@example.com",
		"password": "hunter22",
		"fullName": "Riya",
	}, &session)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, session.Token)
	token := session.Token

	// Intro finishes; a fresh sign-up lands on profile setup.
	var state struct {
		Screen models.Screen `json:"screen"`
	}
	rec = doJSON(t, r, http.MethodPost, "/api/app/event", token, map[string]string{"event": "intro-finished"}, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ScreenProfileSetup, state.Screen)

	// Save a profile and move on to swipe.
	rec = doJSON(t, r, http.MethodPost, "/api/profiles", token, map[string]interface{}{
		"name":       "Riya",
		"bio":        "Full-stack developer",
		"skills":     []string{"Python"},
		"experience": "Intermediate",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/app/event", token, map[string]string{"event": "profile-saved"}, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ScreenSwipe, state.Screen)

	// Accept the first candidate.
	var current struct {
		Profile   *models.UserProfile `json:"profile"`
		Exhausted bool                `json:"exhausted"`
	}
	rec = doJSON(t, r, http.MethodGet, "/api/swipe/current", token, nil, &current)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, current.Profile)

	var decided struct {
		Matched bool                `json:"matched"`
		Profile *models.UserProfile `json:"profile"`
	}
	rec = doJSON(t, r, http.MethodPost, "/api/swipe/decide", token, map[string]string{"direction": "accept"}, &decided)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decided.Matched)

	// Open matches, then the chat.
	rec = doJSON(t, r, http.MethodPost, "/api/app/event", token, map[string]string{"event": "open-matches"}, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ScreenMatches, state.Screen)

	var matchList struct {
		Matches []models.UserProfile `json:"matches"`
	}
	rec = doJSON(t, r, http.MethodGet, "/api/matches", token, nil, &matchList)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, matchList.Matches, 1)

	rec = doJSON(t, r, http.MethodPost, "/api/app/event", token, map[string]string{
		"event":   "start-chat",
		"matchId": matchList.Matches[0].UserID,
	}, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ScreenChat, state.Screen)

	// The thread opens with the seeded greeting; sending appends.
	var sent models.Message
	rec = doJSON(t, r, http.MethodPost, "/api/chat/message", token, map[string]string{"text": "hello"}, &sent)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.UserID, sent.SenderID)

	var msgs struct {
		Messages []models.Message `json:"messages"`
	}
	rec = doJSON(t, r, http.MethodGet, "/api/chat/messages", token, nil, &msgs)
	require.Equal(t, http.StatusOK, rec.Code)
	require.GreaterOrEqual(t, len(msgs.Messages), 2)
	assert.Equal(t, matchList.Matches[0].UserID, msgs.Messages[0].SenderID)
}

func TestEventRejectedOffScreen(t *testing.T) {
	r := newTestRouter()

	var state struct {
		Screen models.Screen `json:"screen"`
		Error  string        `json:"error"`
	}
	rec := doJSON(t, r, http.MethodPost, "/api/app/event", "anon", map[string]string{"event": "open-matches"}, &state)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSaveProfileRequiresAuth(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, http.MethodPost, "/api/profiles", "", map[string]interface{}{
		"name": "Riya",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSaveProfileValidationOverHTTP(t *testing.T) {
	r := newTestRouter()

	var session models.Session
	rec := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "a@example.com",
		"password": "pw",
	}, &session)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/profiles", session.Token, map[string]interface{}{
		"name": "No Skills",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
