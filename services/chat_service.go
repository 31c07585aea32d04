package services

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"codesaathi_server/models"

	"github.com/google/uuid"
)

// chatGreeting opens every new thread, attributed to the matched profile.
const chatGreeting = "Hey! Saw your profile and loved your skills! Want to team up for the upcoming hackathon? 🚀"

// chatResponses is the fixed set an auto-reply is drawn from.
var chatResponses = []string{
	"That sounds great! What's your experience with React?",
	"I'd love to work together! When does the hackathon start?",
	"Perfect! I think our skills complement each other well.",
	"Awesome! Let's brainstorm some project ideas.",
	"I'm excited to collaborate! What type of projects interest you?",
}

// ChatThread is an ephemeral conversation with one match. It exists only
// while the chat screen is open; closing it cancels any pending auto-reply
// so nothing mutates a torn-down thread.
type ChatThread struct {
	ID      string
	MatchID string
	UserID  string
	Match   models.UserProfile

	mu       sync.Mutex
	messages []models.Message
	pending  []*time.Timer
	closed   bool
}

// ChatService simulates the counterpart side of a conversation. There is no
// real messaging infrastructure behind it.
type ChatService struct {
	// ReplyDelay produces the wait before an auto-reply. Defaults to a
	// uniform draw from [1s, 3s). Tests shrink it.
	ReplyDelay func() time.Duration

	// PickResponse selects the auto-reply text. Defaults to a uniform
	// draw from chatResponses.
	PickResponse func() string

	// Broadcast, when set, fans a message out to realtime listeners of
	// the thread's room.
	Broadcast func(threadID string, msg models.Message)
}

func NewChatService() *ChatService {
	return &ChatService{
		ReplyDelay: func() time.Duration {
			return time.Second + time.Duration(rand.Int63n(int64(2*time.Second)))
		},
		PickResponse: func() string {
			return chatResponses[rand.Intn(len(chatResponses))]
		},
	}
}

// Open starts a thread with a match, seeded with a single greeting message
// attributed to the match.
func (cs *ChatService) Open(match models.UserProfile, userID string) *ChatThread {
	thread := &ChatThread{
		ID:      uuid.NewString(),
		MatchID: match.UserID,
		UserID:  userID,
		Match:   match,
	}
	thread.messages = append(thread.messages, models.Message{
		MessageID: uuid.NewString(),
		ThreadID:  thread.ID,
		SenderID:  match.UserID,
		Text:      chatGreeting,
		CreatedAt: time.Now().UTC(),
	})
	log.Printf("Chat thread %s opened between %s and %s", thread.ID, userID, match.UserID)
	return thread
}

// Send appends the user's message immediately and schedules exactly one
// simulated reply from the match.
func (cs *ChatService) Send(thread *ChatThread, text string) (models.Message, error) {
	thread.mu.Lock()
	defer thread.mu.Unlock()

	if thread.closed {
		return models.Message{}, ErrThreadClosed
	}

	msg := models.Message{
		MessageID: uuid.NewString(),
		ThreadID:  thread.ID,
		SenderID:  thread.UserID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	thread.messages = append(thread.messages, msg)

	timer := time.AfterFunc(cs.ReplyDelay(), func() {
		cs.deliverReply(thread)
	})
	thread.pending = append(thread.pending, timer)

	return msg, nil
}

func (cs *ChatService) deliverReply(thread *ChatThread) {
	thread.mu.Lock()
	defer thread.mu.Unlock()

	// The screen may have been left between scheduling and firing.
	if thread.closed {
		return
	}

	reply := models.Message{
		MessageID: uuid.NewString(),
		ThreadID:  thread.ID,
		SenderID:  thread.MatchID,
		Text:      cs.PickResponse(),
		CreatedAt: time.Now().UTC(),
	}
	thread.messages = append(thread.messages, reply)

	if cs.Broadcast != nil {
		cs.Broadcast(thread.ID, reply)
	}
}

// Messages returns a snapshot of the thread in order.
func (cs *ChatService) Messages(thread *ChatThread) []models.Message {
	thread.mu.Lock()
	defer thread.mu.Unlock()
	out := make([]models.Message, len(thread.messages))
	copy(out, thread.messages)
	return out
}

// Close tears the thread down, stopping any replies still in flight.
func (cs *ChatService) Close(thread *ChatThread) {
	thread.mu.Lock()
	defer thread.mu.Unlock()

	if thread.closed {
		return
	}
	thread.closed = true
	for _, timer := range thread.pending {
		timer.Stop()
	}
	thread.pending = nil
	log.Printf("Chat thread %s closed", thread.ID)
}
