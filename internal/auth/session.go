package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/logger"
)

var ErrInvalidSession = errors.New("credential and user id are required")

type State int

const (
	Loading State = iota
	SignedOut
	SignedIn
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case SignedOut:
		return "signed_out"
	case SignedIn:
		return "signed_in"
	}
	return "unknown"
}

// Store holds the current session and keeps it in step with its repository.
// Outbound requests read the credential through Credential.
type Store struct {
	mu     sync.RWMutex
	repo   SessionRepository
	logger logger.ZapLogger

	state      State
	credential string
	user       *model.User
}

func NewStore(repo SessionRepository, log logger.ZapLogger) *Store {
	return &Store{
		repo:   repo,
		logger: log,
		state:  Loading,
	}
}

// Restore installs the persisted session when both credential and user are
// present. Anything else, including a read failure, leaves the store signed out.
func (s *Store) Restore(ctx context.Context) error {
	persisted, err := s.repo.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential, s.user = "", nil
	s.state = SignedOut

	if err != nil {
		s.logger.Warn("failed to restore session", zap.Error(err))
		return fmt.Errorf("restore session: %w", err)
	}
	if !persisted.Complete() {
		s.logger.Debug("no session to restore")
		return nil
	}

	user := *persisted.User
	s.credential, s.user = persisted.Credential, &user
	s.state = SignedIn
	s.logger.Debug("session restored", zap.Int64("user_id", user.ID))
	return nil
}

func (s *Store) SignIn(ctx context.Context, credential string, user model.User) error {
	if credential == "" || user.ID == 0 {
		return ErrInvalidSession
	}

	if err := s.repo.Save(ctx, &model.Session{Credential: credential, User: &user}); err != nil {
		s.logger.Error("failed to persist session", zap.Int64("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.credential, s.user = credential, &user
	s.state = SignedIn
	s.mu.Unlock()

	s.logger.Info("signed in", zap.Int64("user_id", user.ID))
	return nil
}

// SignOut forgets the session in memory first, so a failing repository never
// leaves the credential in use.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.credential, s.user = "", nil
	s.state = SignedOut
	s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		s.logger.Error("failed to clear session", zap.Error(err))
		return fmt.Errorf("clear session: %w", err)
	}

	s.logger.Info("signed out")
	return nil
}

func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready reports whether Restore has finished.
func (s *Store) Ready() bool {
	return s.State() != Loading
}

func (s *Store) Signed() bool {
	return s.State() == SignedIn
}

// CredentialExpiry reads the exp claim when the credential happens to be a
// JWT. The signature is not checked; the result is informational only.
func CredentialExpiry(credential string) (time.Time, bool) {
	if credential == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
