package auth

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/internal/repo"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	users    repo.UserRepo
	sessions repo.SessionRepo

	ttl time.Duration
	loc *time.Location
	now func() time.Time

	mu        sync.RWMutex
	listeners map[int]dto.AuthListener
	nextID    int

	logger logger.Interface
}

func New(
	users repo.UserRepo,
	sessions repo.SessionRepo,
	ttl time.Duration,
	loc *time.Location,
	l logger.Interface,
) *AuthUseCase {
	return &AuthUseCase{
		users:     users,
		sessions:  sessions,
		ttl:       ttl,
		loc:       loc,
		now:       time.Now,
		listeners: make(map[int]dto.AuthListener),
		logger:    l,
	}
}

func (uc *AuthUseCase) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return nil, fmt.Errorf("AuthUseCase - SignIn: %w", errs.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("AuthUseCase - SignIn - uc.users.GetByEmail: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("AuthUseCase - SignIn: %w", errs.ErrInvalidCredentials)
	}

	now := uc.now()
	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
		View: entity.ViewState{
			Current: entity.MonthOf(now, uc.loc),
		},
	}

	err = uc.sessions.Save(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("AuthUseCase - SignIn - uc.sessions.Save: %w", err)
	}

	uc.notify(ctx, entity.SignedIn, session)

	return session, nil
}

func (uc *AuthUseCase) SignOut(ctx context.Context, token string) error {
	session, err := uc.Session(ctx, token)
	if err != nil {
		return fmt.Errorf("AuthUseCase - SignOut: %w", err)
	}

	err = uc.sessions.Delete(ctx, token)
	if err != nil {
		return fmt.Errorf("AuthUseCase - SignOut - uc.sessions.Delete: %w", err)
	}

	uc.notify(ctx, entity.SignedOut, session)

	return nil
}

func (uc *AuthUseCase) Session(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, fmt.Errorf("AuthUseCase - Session: %w", errs.ErrSessionNotFound)
	}

	session, err := uc.sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("AuthUseCase - Session - uc.sessions.Get: %w", err)
	}

	if !session.ExpiresAt.After(uc.now()) {
		return nil, fmt.Errorf("AuthUseCase - Session - expired: %w", errs.ErrSessionNotFound)
	}

	return session, nil
}

func (uc *AuthUseCase) SaveView(ctx context.Context, session *entity.Session) error {
	err := uc.sessions.Save(ctx, session)
	if err != nil {
		return fmt.Errorf("AuthUseCase - SaveView - uc.sessions.Save: %w", err)
	}

	return nil
}

// OnAuthStateChange registers listener for sign-in and sign-out. Listeners run
// synchronously in registration order.
func (uc *AuthUseCase) OnAuthStateChange(listener dto.AuthListener) func() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := uc.nextID
	uc.nextID++
	uc.listeners[id] = listener

	return func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()

		delete(uc.listeners, id)
	}
}

func (uc *AuthUseCase) CreateUser(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("AuthUseCase - CreateUser: email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("AuthUseCase - CreateUser - bcrypt.GenerateFromPassword: %w", err)
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
	}

	err = uc.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("AuthUseCase - CreateUser - uc.users.Create: %w", err)
	}

	uc.logger.Info("AuthUseCase - CreateUser - created user %s", user.Email)

	return user, nil
}

func (uc *AuthUseCase) notify(ctx context.Context, event entity.AuthEvent, session *entity.Session) {
	uc.mu.RLock()
	ids := make([]int, 0, len(uc.listeners))
	for id := range uc.listeners {
		ids = append(ids, id)
	}
	listeners := make([]dto.AuthListener, 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, uc.listeners[id])
	}
	uc.mu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, event, session)
	}
}
