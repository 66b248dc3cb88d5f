package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andreyxaxa/Photo-Gallery/config"
	"github.com/andreyxaxa/Photo-Gallery/internal/controller/restapi"
	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/internal/infrastructure"
	infrakafka "github.com/andreyxaxa/Photo-Gallery/internal/infrastructure/kafka"
	"github.com/andreyxaxa/Photo-Gallery/internal/repo/cache"
	"github.com/andreyxaxa/Photo-Gallery/internal/repo/persistent"
	"github.com/andreyxaxa/Photo-Gallery/internal/usecase/auth"
	"github.com/andreyxaxa/Photo-Gallery/internal/usecase/gallery"
	"github.com/andreyxaxa/Photo-Gallery/migrations"
	"github.com/andreyxaxa/Photo-Gallery/pkg/httpserver"
	"github.com/andreyxaxa/Photo-Gallery/pkg/kafka/producer"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/andreyxaxa/Photo-Gallery/pkg/postgres"
	"github.com/andreyxaxa/Photo-Gallery/pkg/redisclient"
	"github.com/andreyxaxa/Photo-Gallery/pkg/s3client"
	"github.com/google/uuid"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level, cfg.Log.Format)

	loc, err := cfg.Gallery.Location()
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - cfg.Gallery.Location: %w", err))
	}

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket,
		s3client.Region(cfg.S3.Region),
		s3client.CreateBucket(cfg.S3.CreateBucket),
	)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// postgres
	if cfg.PG.AutoMigrate {
		err = postgres.Migrate(cfg.PG.URL, migrations.FS, migrations.Dir)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - postgres.Migrate: %w", err))
		}
	}

	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	// redis
	rdb, err := redisclient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - redisclient.New: %w", err))
	}
	defer rdb.Close()

	// Events
	var events infrastructure.EventsSender = infrastructure.NopEventsSender{}
	if cfg.Kafka.Enabled {
		kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic,
			producer.WriteTimeout(cfg.Kafka.WriteTimeout),
		)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - producer.New: %w", err))
		}

		events = infrakafka.NewEventProducer(kafkaProducer)
	}
	defer func() {
		if err := events.Close(); err != nil {
			l.Error(fmt.Errorf("app - Run - events.Close: %w", err))
		}
	}()

	// Use-Case

	// gallery use-case
	galleryUseCase := gallery.New(
		persistent.NewObjectRepo(s3c, cfg.S3.Bucket, cfg.S3.Endpoint, cfg.S3.PublicURL),
		persistent.NewImageMetadataRepo(pg),
		events,
		loc,
		l,
	)

	// auth use-case
	authUseCase := auth.New(
		persistent.NewUserRepo(pg),
		cache.NewSessionRepo(rdb.Client),
		cfg.Session.TTL,
		loc,
		l,
	)

	unsubscribe := authUseCase.OnAuthStateChange(authEventsListener(events, l))
	defer unsubscribe()

	// HTTP Server
	httpServer := httpserver.New(l,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Prefork(cfg.HTTP.UsePreforkMode),
		httpserver.BodyLimit(cfg.Upload.BodyLimit()),
	)
	restapi.NewRouter(httpServer.App, cfg, galleryUseCase, authUseCase, l)

	// Start Components
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

// authEventsListener logs sign-in and sign-out and forwards them to the
// event feed.
func authEventsListener(events infrastructure.EventsSender, l logger.Interface) func(context.Context, entity.AuthEvent, *entity.Session) {
	return func(ctx context.Context, event entity.AuthEvent, session *entity.Session) {
		l.Info("app - auth state changed: %s user=%s", event, session.Email)

		eventType := entity.UserSignedIn
		if event == entity.SignedOut {
			eventType = entity.UserSignedOut
		}

		userID := session.UserID
		err := events.SendEvent(ctx, entity.GalleryEvent{
			ID:         uuid.New(),
			Type:       eventType,
			UserID:     &userID,
			OccurredAt: time.Now(),
		})
		if err != nil {
			l.Error(err, "app - authEventsListener - events.SendEvent")
		}
	}
}
