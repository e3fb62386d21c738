package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/tokens"
	"github.com/sachink160/multitool-client/internal/client/validate"
)

// ---- fake auth API ----

type fakeAuthAPI struct {
	LoginRet models.TokenPair
	LoginErr error

	RegisterErr error
	LogoutErr   error

	UserRet *models.User
	UserErr error

	LoginCalls    int
	RegisterCalls int
	LogoutCalls   int
	UserCalls     int
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (models.TokenPair, error) {
	f.LoginCalls++
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error) {
	f.RegisterCalls++
	return models.MessageResponse{Message: "User registered"}, f.RegisterErr
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	f.UserCalls++
	return f.UserRet, f.UserErr
}

// ---- helpers ----

var storedPair = models.TokenPair{AccessToken: "a0", RefreshToken: "r0"}

func newTestSession(t *testing.T, api *fakeAuthAPI, pair *models.TokenPair) (*Session, tokens.Store) {
	t.Helper()
	store := tokens.NewMemoryStore()
	if pair != nil {
		require.NoError(t, store.Save(context.Background(), *pair))
	}
	return NewSession(api, store, nil), store
}

func readPair(t *testing.T, store tokens.Store) (models.TokenPair, bool) {
	t.Helper()
	p, ok, err := store.Read(context.Background())
	require.NoError(t, err)
	return p, ok
}

// ---- TESTS ----

func TestSession_StartsBootstrapping(t *testing.T) {
	s, _ := newTestSession(t, &fakeAuthAPI{}, nil)
	require.Equal(t, StateBootstrapping, s.State())
	require.Nil(t, s.User())
}

func TestBootstrap_NoTokenIsAnonymousWithoutNetwork(t *testing.T) {
	api := &fakeAuthAPI{}
	s, _ := newTestSession(t, api, nil)

	require.NoError(t, s.Bootstrap(context.Background()))
	require.Equal(t, StateAnonymous, s.State())
	require.Zero(t, api.UserCalls)
}

func TestBootstrap_ValidToken(t *testing.T) {
	api := &fakeAuthAPI{UserRet: &models.User{ID: "u1", Username: "alice"}}
	s, _ := newTestSession(t, api, &storedPair)

	require.NoError(t, s.Bootstrap(context.Background()))
	require.Equal(t, StateAuthenticated, s.State())
	require.Equal(t, "alice", s.User().Username)
}

func TestBootstrap_RejectedTokenIsCleared(t *testing.T) {
	api := &fakeAuthAPI{UserErr: errors.New("unauthorized")}
	s, store := newTestSession(t, api, &storedPair)

	require.NoError(t, s.Bootstrap(context.Background()))
	require.Equal(t, StateAnonymous, s.State())
	_, ok := readPair(t, store)
	require.False(t, ok)
}

func TestLogin_Success(t *testing.T) {
	api := &fakeAuthAPI{
		LoginRet: models.TokenPair{AccessToken: "a1", RefreshToken: "r1"},
		UserRet:  &models.User{ID: "u1", Username: "alice"},
	}
	s, store := newTestSession(t, api, nil)
	require.NoError(t, s.Bootstrap(context.Background()))

	var seen []State
	s.Subscribe(func(st State, _ *models.User) { seen = append(seen, st) })

	require.NoError(t, s.Login(context.Background(), "alice", "pw"))
	require.Equal(t, StateAuthenticated, s.State())
	require.Equal(t, []State{StateAuthenticated}, seen)

	p, ok := readPair(t, store)
	require.True(t, ok)
	require.Equal(t, api.LoginRet, p)
}

func TestLogin_FailureLeavesTokensAndState(t *testing.T) {
	api := &fakeAuthAPI{
		UserRet:  &models.User{ID: "u0", Username: "old"},
		LoginErr: errors.New("Incorrect username or password"),
	}
	s, store := newTestSession(t, api, &storedPair)
	require.NoError(t, s.Bootstrap(context.Background()))

	err := s.Login(context.Background(), "bob", "bad")
	require.EqualError(t, err, "Incorrect username or password")
	require.Equal(t, StateAuthenticated, s.State())
	require.Equal(t, "old", s.User().Username)

	p, ok := readPair(t, store)
	require.True(t, ok)
	require.Equal(t, storedPair, p)
}

func TestLogin_ProfileFailureRestoresPreviousPair(t *testing.T) {
	api := &fakeAuthAPI{LoginRet: models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}}
	s, store := newTestSession(t, api, &storedPair)
	api.UserErr = errors.New("boom")
	require.NoError(t, s.Bootstrap(context.Background()))
	require.NoError(t, store.Save(context.Background(), storedPair))

	require.Error(t, s.Login(context.Background(), "alice", "pw"))
	require.Equal(t, StateAnonymous, s.State())
	p, ok := readPair(t, store)
	require.True(t, ok)
	require.Equal(t, storedPair, p)
}

func TestLogin_RequiresCredentials(t *testing.T) {
	api := &fakeAuthAPI{}
	s, _ := newTestSession(t, api, nil)

	err := s.Login(context.Background(), "", "")
	require.ErrorIs(t, err, validate.ErrInvalid)
	require.Zero(t, api.LoginCalls)
}

func TestRegister_ValidatesBeforeNetworkAndKeepsState(t *testing.T) {
	api := &fakeAuthAPI{}
	s, _ := newTestSession(t, api, nil)
	require.NoError(t, s.Bootstrap(context.Background()))

	_, err := s.Register(context.Background(), models.RegisterRequest{Username: "al"})
	require.ErrorIs(t, err, validate.ErrInvalid)
	require.Zero(t, api.RegisterCalls)

	msg, err := s.Register(context.Background(), models.RegisterRequest{
		Username: "alice", Fullname: "Alice", Email: "a@example.com", UserType: "user", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "User registered", msg)
	require.Equal(t, StateAnonymous, s.State())
}

func TestLogout_AlwaysClears(t *testing.T) {
	api := &fakeAuthAPI{UserRet: &models.User{ID: "u1"}, LogoutErr: errors.New("server down")}
	s, store := newTestSession(t, api, &storedPair)
	require.NoError(t, s.Bootstrap(context.Background()))

	require.NoError(t, s.Logout(context.Background()))
	require.Equal(t, 1, api.LogoutCalls)
	require.Equal(t, StateAnonymous, s.State())
	require.Nil(t, s.User())
	_, ok := readPair(t, store)
	require.False(t, ok)
}

func TestHandleAuthFailure_DropsToAnonymous(t *testing.T) {
	api := &fakeAuthAPI{UserRet: &models.User{ID: "u1"}}
	s, _ := newTestSession(t, api, &storedPair)
	require.NoError(t, s.Bootstrap(context.Background()))

	s.HandleAuthFailure(context.Background())
	require.Equal(t, StateAnonymous, s.State())
	require.ErrorIs(t, s.RequireAuth(), ErrNotAuthenticated)
}

func TestRequireAdmin(t *testing.T) {
	api := &fakeAuthAPI{UserRet: &models.User{ID: "u1", UserType: "user"}}
	s, _ := newTestSession(t, api, &storedPair)
	require.ErrorIs(t, s.RequireAdmin(), ErrNotAuthenticated)

	require.NoError(t, s.Bootstrap(context.Background()))
	require.ErrorIs(t, s.RequireAdmin(), ErrForbidden)

	api.UserRet = &models.User{ID: "u1", UserType: "Admin"}
	require.NoError(t, s.Refresh(context.Background()))
	require.NoError(t, s.RequireAdmin())
	require.True(t, s.IsAdmin())
}
