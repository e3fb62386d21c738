package services

import (
	"context"
	"sync"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/tokens"
	"github.com/sachink160/multitool-client/internal/client/validate"
	"github.com/sachink160/multitool-client/internal/logging"
)

// State is the authentication state of the session.
type State int

const (
	StateBootstrapping State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateBootstrapping:
		return "bootstrapping"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// AuthAPI is the part of the backend client used by the session.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (models.TokenPair, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Observer is notified after every state transition.
type Observer func(state State, user *models.User)

// Session owns the current user. It starts in StateBootstrapping and is
// safe for concurrent use.
type Session struct {
	api    AuthAPI
	store  tokens.Store
	logger logging.Logger

	mu        sync.RWMutex
	state     State
	user      *models.User
	observers []Observer
}

func NewSession(api AuthAPI, store tokens.Store, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{api: api, store: store, logger: logger, state: StateBootstrapping}
}

// Subscribe registers fn for state transitions.
func (s *Session) Subscribe(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns a copy of the current user, or nil when anonymous.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated && s.user.IsAdmin()
}

// RequireAuth returns ErrNotAuthenticated unless a user is logged in.
func (s *Session) RequireAuth() error {
	if s.State() != StateAuthenticated {
		return ErrNotAuthenticated
	}
	return nil
}

// RequireAdmin returns ErrForbidden unless an admin is logged in.
func (s *Session) RequireAdmin() error {
	if err := s.RequireAuth(); err != nil {
		return err
	}
	if !s.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func (s *Session) transition(ctx context.Context, state State, user *models.User) {
	s.mu.Lock()
	prev := s.state
	s.state = state
	s.user = user
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	if prev != state {
		s.logger.Info(ctx, "session state changed", "from", prev.String(), "to", state.String())
	}
	for _, fn := range observers {
		fn(state, user)
	}
}

// Bootstrap resolves the initial state from the persisted tokens. A stored
// token that no longer yields a user is cleared.
func (s *Session) Bootstrap(ctx context.Context) error {
	_, ok, err := s.store.Read(ctx)
	if err != nil {
		s.transition(ctx, StateAnonymous, nil)
		return err
	}
	if !ok {
		s.transition(ctx, StateAnonymous, nil)
		return nil
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.logger.Info(ctx, "stored session rejected", "error", err)
		if cerr := s.store.Clear(ctx); cerr != nil {
			s.logger.Error(ctx, "failed to clear tokens", "error", cerr)
		}
		s.transition(ctx, StateAnonymous, nil)
		return nil
	}

	s.transition(ctx, StateAuthenticated, user)
	return nil
}

// Login exchanges credentials, stores the new pair and loads the user. On
// any failure the previous tokens and state are left as they were.
func (s *Session) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return &validate.ValidationError{Message: "username and password are required"}
	}

	pair, err := s.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	prevPair, hadPrev, err := s.store.Read(ctx)
	if err != nil {
		return err
	}
	s.mu.RLock()
	prevState, prevUser := s.state, s.user
	s.mu.RUnlock()

	if err := s.store.Save(ctx, pair); err != nil {
		return err
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.restore(ctx, prevPair, hadPrev)
		s.transition(ctx, prevState, prevUser)
		return err
	}

	s.transition(ctx, StateAuthenticated, user)
	return nil
}

func (s *Session) restore(ctx context.Context, pair models.TokenPair, had bool) {
	var err error
	if had {
		err = s.store.Save(ctx, pair)
	} else {
		err = s.store.Clear(ctx)
	}
	if err != nil {
		s.logger.Error(ctx, "failed to restore tokens", "error", err)
	}
}

// Register creates an account. It never changes the session state.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", err
	}
	res, err := s.api.Register(ctx, req)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// Logout invalidates the server session on a best-effort basis, then
// always clears local tokens and the user.
func (s *Session) Logout(ctx context.Context) error {
	if _, ok, _ := s.store.Read(ctx); ok {
		if err := s.api.Logout(ctx); err != nil {
			s.logger.Warn(ctx, "server logout failed", "error", err)
		}
	}
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear tokens", "error", err)
	}
	s.transition(ctx, StateAnonymous, nil)
	return nil
}

// HandleAuthFailure drops the session after the client gave up on
// refreshing. It is registered as the client's auth-failure handler.
func (s *Session) HandleAuthFailure(ctx context.Context) {
	if s.State() == StateAnonymous {
		return
	}
	s.logger.Warn(ctx, "authentication expired")
	s.transition(ctx, StateAnonymous, nil)
}

// Refresh re-fetches the current user, e.g. after a subscription change.
func (s *Session) Refresh(ctx context.Context) error {
	if err := s.RequireAuth(); err != nil {
		return err
	}
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if s.State() == StateAuthenticated {
		s.transition(ctx, StateAuthenticated, user)
	}
	return nil
}
