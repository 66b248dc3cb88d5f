package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	ImageUploaded EventType = "image_uploaded"
	ImageDeleted  EventType = "image_deleted"
	UserSignedIn  EventType = "signed_in"
	UserSignedOut EventType = "signed_out"
)

// GalleryEvent is published to the event feed after a successful mutation or
// an auth state change.
type GalleryEvent struct {
	ID          uuid.UUID  `json:"id"`
	Type        EventType  `json:"type"`
	ImageID     *uuid.UUID `json:"image_id,omitempty"`
	StoragePath string     `json:"storage_path,omitempty"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}
