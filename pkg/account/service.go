package account

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Hasher is the subset of password.Hasher the service needs.
type Hasher interface {
	HashContext(ctx context.Context, plaintext string) (string, error)
	VerifyContext(ctx context.Context, encoded, candidate string) (bool, error)
}

// Service registers and authenticates accounts.
type Service struct {
	store  Store
	hasher Hasher
	now    func() time.Time
	logger *slog.Logger

	dummyMu   sync.Mutex
	dummyHash string
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService panics when store or hasher is nil.
func NewService(store Store, hasher Hasher, opts ...ServiceOption) *Service {
	if store == nil {
		panic("account: store is required")
	}
	if hasher == nil {
		panic("account: hasher is required")
	}
	s := &Service{
		store:  store,
		hasher: hasher,
		now:    time.Now,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("account"))
	return s
}

// Register validates the credentials, hashes the password off the request
// goroutine and stores the new account. Policy violations are returned as
// validator.ValidationErrors.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	if err := ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.HashContext(ctx, password)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, s.unavailable(ctx, "create_user", err)
	}

	s.logger.InfoContext(ctx, "account registered", logger.UserID(u.ID), logger.Username(u.Username))
	return &u, nil
}

// Authenticate returns the account when password matches. Unknown usernames
// and wrong passwords both yield ErrInvalidCredentials, and an unknown
// username still pays for one key derivation.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if err := ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	u, err := s.store.GetUserByUsername(ctx, username)
	switch {
	case errors.Is(err, ErrUserNotFound):
		encoded, derr := s.dummy(ctx)
		if derr != nil {
			return nil, derr
		}
		if _, verr := s.hasher.VerifyContext(ctx, encoded, password); verr != nil {
			return nil, verr
		}
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, s.unavailable(ctx, "get_user", err)
	}

	ok, err := s.hasher.VerifyContext(ctx, u.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.InfoContext(ctx, "login rejected", logger.UserID(u.ID))
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// UsernameByID lets the Service act as a session.UserResolver.
func (s *Service) UsernameByID(ctx context.Context, id uuid.UUID) (string, error) {
	name, err := s.store.UsernameByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", s.unavailable(ctx, "username_by_id", err)
	}
	return name, nil
}

// dummy returns a valid record of a random password. Only a successful
// derivation is cached; a failure is returned and retried on the next call,
// so unknown users never verify against an empty record.
func (s *Service) dummy(ctx context.Context) (string, error) {
	s.dummyMu.Lock()
	defer s.dummyMu.Unlock()

	if s.dummyHash != "" {
		return s.dummyHash, nil
	}
	hash, err := s.hasher.HashContext(context.WithoutCancel(ctx), uuid.NewString())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to prepare dummy credential", logger.Error(err))
		return "", err
	}
	s.dummyHash = hash
	return hash, nil
}

func (s *Service) unavailable(ctx context.Context, op string, err error) error {
	s.logger.ErrorContext(ctx, "account store call failed", logger.Event(op), logger.Error(err))
	return errors.Join(ErrStoreUnavailable, err)
}
