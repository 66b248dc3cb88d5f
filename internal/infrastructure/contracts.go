package infrastructure

import (
	"context"

	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
)

type (
	EventsSender interface {
		SendEvent(ctx context.Context, event entity.GalleryEvent) error
		Close() error
	}
)

// NopEventsSender drops every event. Used when the event feed is disabled.
type NopEventsSender struct{}

func (NopEventsSender) SendEvent(context.Context, entity.GalleryEvent) error { return nil }

func (NopEventsSender) Close() error { return nil }
