package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"codesaathi_server/models"
)

// Event is a navigation event. Each variant names one edge of the screen
// state machine; anything else the UI does stays on its current screen.
type Event interface {
	eventName() string
}

type IntroFinished struct{}
type LoginSucceeded struct{}
type ProfileSaved struct{}
type OpenMatches struct{}
type Back struct{}
type StartChat struct{ MatchID string }
type Logout struct{}

func (IntroFinished) eventName() string  { return "intro-finished" }
func (LoginSucceeded) eventName() string { return "login-success" }
func (ProfileSaved) eventName() string   { return "profile-saved" }
func (OpenMatches) eventName() string    { return "open-matches" }
func (Back) eventName() string           { return "back" }
func (StartChat) eventName() string      { return "start-chat" }
func (Logout) eventName() string         { return "logout" }

// ParseEvent maps a wire-level event name to its variant.
func ParseEvent(name, matchID string) (Event, error) {
	switch name {
	case "intro-finished":
		return IntroFinished{}, nil
	case "login-success":
		return LoginSucceeded{}, nil
	case "profile-saved":
		return ProfileSaved{}, nil
	case "open-matches":
		return OpenMatches{}, nil
	case "back":
		return Back{}, nil
	case "start-chat":
		return StartChat{MatchID: matchID}, nil
	case "logout":
		return Logout{}, nil
	default:
		return nil, fmt.Errorf("unknown event %q", name)
	}
}

// appSession is the cross-screen state owned by the state machine for one
// signed-in device: the active screen, the swipe feed, the match ledger and
// the open chat thread, if any.
type appSession struct {
	screen models.Screen
	feed   *CandidateFeed
	ledger *MatchLedger
	thread *ChatThread
}

// AppService sequences screens. All cross-screen state is mutated here and
// nowhere else; screens only read it through the accessors below.
type AppService struct {
	Auth     *AuthService
	Profiles *UserProfileService
	Matches  *MatchService
	Chat     *ChatService

	mu   sync.Mutex
	apps map[string]*appSession
}

func NewAppService(auth *AuthService, profiles *UserProfileService, matches *MatchService, chat *ChatService) *AppService {
	return &AppService{
		Auth:     auth,
		Profiles: profiles,
		Matches:  matches,
		Chat:     chat,
		apps:     make(map[string]*appSession),
	}
}

func (as *AppService) app(token string) *appSession {
	app, ok := as.apps[token]
	if !ok {
		app = &appSession{screen: models.ScreenLoading, ledger: NewMatchLedger()}
		as.apps[token] = app
	}
	return app
}

// Screen reports the active screen for a device.
func (as *AppService) Screen(token string) models.Screen {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.app(token).screen
}

// Dispatch applies one event to the state machine and returns the screen
// that is active afterwards. An event that is not legal on the current
// screen returns ErrInvalidTransition and changes nothing. A failed session
// check returns the error and leaves the user where they are.
func (as *AppService) Dispatch(ctx context.Context, token string, ev Event) (models.Screen, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	app := as.app(token)

	switch ev := ev.(type) {
	case IntroFinished:
		// auth-loading is allowed so a failed session check can be retried.
		if app.screen != models.ScreenLoading && app.screen != models.ScreenAuthLoading {
			return app.screen, ErrInvalidTransition
		}
		return as.resolveRouting(ctx, token, app)

	case LoginSucceeded:
		if app.screen != models.ScreenAuth && app.screen != models.ScreenAuthLoading {
			return app.screen, ErrInvalidTransition
		}
		return as.resolveRouting(ctx, token, app)

	case ProfileSaved:
		if app.screen != models.ScreenProfileSetup {
			return app.screen, ErrInvalidTransition
		}
		return as.enterSwipe(ctx, token, app)

	case OpenMatches:
		if app.screen != models.ScreenSwipe {
			return app.screen, ErrInvalidTransition
		}
		app.screen = models.ScreenMatches
		return app.screen, nil

	case Back:
		switch app.screen {
		case models.ScreenMatches:
			app.screen = models.ScreenSwipe
		case models.ScreenChat:
			if app.thread != nil {
				as.Chat.Close(app.thread)
				app.thread = nil
			}
			app.screen = models.ScreenMatches
		default:
			return app.screen, ErrInvalidTransition
		}
		return app.screen, nil

	case StartChat:
		if app.screen != models.ScreenMatches {
			return app.screen, ErrInvalidTransition
		}
		match := app.ledger.Find(ev.MatchID)
		if match == nil {
			return app.screen, ErrNotMatched
		}
		userID := ""
		if sess := as.Auth.CurrentSession(token); sess != nil {
			userID = sess.UserID
		}
		app.thread = as.Chat.Open(*match, userID)
		app.screen = models.ScreenChat
		return app.screen, nil

	case Logout:
		if app.screen != models.ScreenSwipe {
			return app.screen, ErrInvalidTransition
		}
		as.Auth.SignOut(token)
		if app.thread != nil {
			as.Chat.Close(app.thread)
		}
		// The whole app session is scoped to the sign-in; start over.
		as.apps[token] = &appSession{screen: models.ScreenAuth, ledger: NewMatchLedger()}
		log.Printf("Session %s logged out", token)
		return models.ScreenAuth, nil

	default:
		return app.screen, fmt.Errorf("unhandled event %q", ev.eventName())
	}
}

// resolveRouting is the session check run while on the auth-loading screen.
// It decides between auth, profile-setup and swipe. The freshly-registered
// flag is consumed before the profile fetch so it can never leak into a
// later check, whatever the outcome here.
func (as *AppService) resolveRouting(ctx context.Context, token string, app *appSession) (models.Screen, error) {
	app.screen = models.ScreenAuthLoading

	sess := as.Auth.CurrentSession(token)
	if sess == nil {
		app.screen = models.ScreenAuth
		return app.screen, nil
	}

	fresh := as.Auth.ConsumeJustSignedUp(token)

	profile, err := as.Profiles.GetProfile(ctx, sess.UserID)
	if err != nil {
		// Stay put; the caller shows the error and may retry the event.
		return app.screen, err
	}

	if fresh || profile == nil {
		app.screen = models.ScreenProfileSetup
		return app.screen, nil
	}

	return as.enterSwipe(ctx, token, app)
}

// enterSwipe moves to the swipe screen, building the candidate feed on
// first entry. The feed survives round trips to matches/chat so the cursor
// never rewinds within a session.
func (as *AppService) enterSwipe(ctx context.Context, token string, app *appSession) (models.Screen, error) {
	if app.feed == nil {
		var self *models.UserProfile
		if sess := as.Auth.CurrentSession(token); sess != nil {
			profile, err := as.Profiles.GetProfile(ctx, sess.UserID)
			if err != nil {
				return app.screen, err
			}
			self = profile
		}

		candidates, err := as.Matches.CandidatesFor(ctx, self)
		if err != nil {
			return app.screen, err
		}
		app.feed = NewCandidateFeed(candidates, app.ledger)
	}

	app.screen = models.ScreenSwipe
	return app.screen, nil
}

// CurrentCandidate returns the profile under the swipe cursor, or nil when
// the feed is exhausted.
func (as *AppService) CurrentCandidate(token string) (*models.UserProfile, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	app := as.app(token)
	if app.feed == nil {
		return nil, ErrInvalidTransition
	}
	return app.feed.Current(), nil
}

// DecideSwipe records an accept/reject on the current candidate and
// returns the candidate when the decision produced a match.
func (as *AppService) DecideSwipe(token, direction string) (*models.UserProfile, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	app := as.app(token)
	if app.screen != models.ScreenSwipe || app.feed == nil {
		return nil, ErrInvalidTransition
	}

	current := app.feed.Current()
	app.feed.Decide(direction)
	if direction == models.SwipeAccept && current != nil {
		return current, nil
	}
	return nil, nil
}

// MatchList returns the accepted candidates in the order they were
// accepted.
func (as *AppService) MatchList(token string) []models.UserProfile {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.app(token).ledger.All()
}

// SendChatMessage appends a message to the open thread.
func (as *AppService) SendChatMessage(token, text string) (models.Message, error) {
	as.mu.Lock()
	thread := as.app(token).thread
	as.mu.Unlock()

	if thread == nil {
		return models.Message{}, ErrNoActiveChat
	}
	return as.Chat.Send(thread, text)
}

// ChatMessages returns the open thread's messages in order.
func (as *AppService) ChatMessages(token string) ([]models.Message, error) {
	as.mu.Lock()
	thread := as.app(token).thread
	as.mu.Unlock()

	if thread == nil {
		return nil, ErrNoActiveChat
	}
	return as.Chat.Messages(thread), nil
}
