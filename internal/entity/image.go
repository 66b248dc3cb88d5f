package entity

import (
	"time"

	"github.com/google/uuid"
)

// ImageRecord is one row of image_metadata. StoragePath joins it to the object
// in the object store.
type ImageRecord struct {
	ID uuid.UUID `json:"id"`

	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	StoragePath  string `json:"storage_path"`
	PublicURL    string `json:"public_url"`

	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`

	CreatedAt time.Time `json:"created_at"`
}

// UploadOptions are passed to the object store on writes.
type UploadOptions struct {
	CacheControl string
	Upsert       bool
}
