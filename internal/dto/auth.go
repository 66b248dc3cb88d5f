package dto

import (
	"context"

	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
)

// AuthListener is notified after every sign-in and sign-out.
type AuthListener func(ctx context.Context, event entity.AuthEvent, session *entity.Session)
