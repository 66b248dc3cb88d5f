package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/redis/go-redis/v9"
)

const sessionNamespace = "gallery:session"

type SessionRepo struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewSessionRepo(client redis.UniversalClient) *SessionRepo {
	return &SessionRepo{client: client, now: time.Now}
}

func key(token string) string {
	return sessionNamespace + ":" + token
}

// Save stores the session until its ExpiresAt.
func (r *SessionRepo) Save(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("SessionRepo - Save: %w", errs.ErrSessionNotFound)
	}

	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("SessionRepo - Save - json.Marshal: %w", err)
	}

	err = r.client.Set(ctx, key(session.Token), b, ttl).Err()
	if err != nil {
		return fmt.Errorf("SessionRepo - Save - r.client.Set: %w", err)
	}

	return nil
}

func (r *SessionRepo) Get(ctx context.Context, token string) (*entity.Session, error) {
	b, err := r.client.Get(ctx, key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("SessionRepo - Get: %w", errs.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("SessionRepo - Get - r.client.Get: %w", err)
	}

	var session entity.Session
	if err = json.Unmarshal(b, &session); err != nil {
		return nil, fmt.Errorf("SessionRepo - Get - json.Unmarshal: %w", err)
	}

	return &session, nil
}

func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	err := r.client.Del(ctx, key(token)).Err()
	if err != nil {
		return fmt.Errorf("SessionRepo - Delete - r.client.Del: %w", err)
	}

	return nil
}
