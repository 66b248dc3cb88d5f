package gallery

import (
	"context"
	"fmt"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/internal/dto"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/internal/infrastructure"
	"github.com/andreyxaxa/Photo-Gallery/internal/repo"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
)

const _defaultEventTimeout = time.Second

type GalleryUseCase struct {
	objects  repo.ObjectStore
	metadata repo.ImageMetadataRepo
	events   infrastructure.EventsSender

	eventTimeout time.Duration

	loc *time.Location
	now func() time.Time

	logger logger.Interface
}

type Option func(*GalleryUseCase)

// Clock replaces time.Now, used for month defaults and storage paths.
func Clock(now func() time.Time) Option {
	return func(uc *GalleryUseCase) {
		uc.now = now
	}
}

// EventTimeout bounds each event feed write made while serving a request.
func EventTimeout(timeout time.Duration) Option {
	return func(uc *GalleryUseCase) {
		uc.eventTimeout = timeout
	}
}

func New(
	objects repo.ObjectStore,
	metadata repo.ImageMetadataRepo,
	events infrastructure.EventsSender,
	loc *time.Location,
	l logger.Interface,
	opts ...Option,
) *GalleryUseCase {
	uc := &GalleryUseCase{
		objects:  objects,
		metadata: metadata,
		events:   events,
		loc:      loc,
		now:      time.Now,
		logger:   l,

		eventTimeout: _defaultEventTimeout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Load refreshes view.Available and returns every image of view.Current.
// A zero current month means the month of now.
func (uc *GalleryUseCase) Load(ctx context.Context, view *entity.ViewState) (*dto.GalleryPage, error) {
	// 1. месяцы, в которых есть хотя бы одно изображение
	times, err := uc.metadata.ListCreatedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Load - uc.metadata.ListCreatedAt: %w", err)
	}

	view.Available = AvailableMonths(times, uc.loc)

	if view.Current.IsZero() {
		view.Current = entity.MonthOf(uc.now(), uc.loc)
	}

	// 2. изображения текущего месяца
	start, end := view.Current.Range(uc.loc)

	images, err := uc.metadata.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Load - uc.metadata.ListBetween: %w", err)
	}

	return &dto.GalleryPage{
		Month:     view.Current,
		Label:     view.Current.Label(),
		Images:    images,
		Available: view.Available,
		Prev:      Older(view.Available, view.Current),
		Next:      Newer(view.Available, view.Current),
		ShowPager: len(view.Available) > 1,
	}, nil
}

// Navigate moves to the neighbouring available month and reloads. With no
// month in that direction the view is left as is.
func (uc *GalleryUseCase) Navigate(ctx context.Context, view *entity.ViewState, direction dto.Direction) (*dto.GalleryPage, error) {
	var target *entity.Month

	switch direction {
	case dto.Previous:
		target = Older(view.Available, view.Current)
	case dto.Next:
		target = Newer(view.Available, view.Current)
	}

	if target != nil {
		view.Current = *target
	}

	page, err := uc.Load(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Navigate - uc.Load: %w", err)
	}

	return page, nil
}

func (uc *GalleryUseCase) publish(ctx context.Context, event entity.GalleryEvent) {
	ctx, cancel := context.WithTimeout(ctx, uc.eventTimeout)
	defer cancel()

	err := uc.events.SendEvent(ctx, event)
	if err != nil {
		uc.logger.Error(err, "GalleryUseCase - publish - event=%s", event.Type)
	}
}
