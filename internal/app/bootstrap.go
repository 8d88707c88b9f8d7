// Package app is the composition root. Bootstrap stays orchestration-only;
// behavior lives in the packages it wires together.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"lattice-cms.io/lattice/internal/api/handlers"
	"lattice-cms.io/lattice/internal/api/middleware"
	"lattice-cms.io/lattice/internal/audit"
	"lattice-cms.io/lattice/internal/config"
	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/infrastructure"
	"lattice-cms.io/lattice/internal/jobs"
	"lattice-cms.io/lattice/internal/lexicon"
	"lattice-cms.io/lattice/internal/pkg/logger"
	"lattice-cms.io/lattice/internal/pkg/worker"
	"lattice-cms.io/lattice/internal/processor"
	"lattice-cms.io/lattice/internal/service"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
	Events *domain.Dispatcher
}

// Bootstrap initializes all dependencies with manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		EventPoolSize:   cfg.Worker.EventPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	lex, err := lexicon.New()
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init lexicon: %w", err)
	}

	dispatcher := domain.NewDispatcher(func(task func(ctx context.Context)) error {
		return pools.SubmitDetached(task)
	})
	registerActivityStream(dispatcher)

	rt := &processor.Runtime{
		Lexicon: lex,
		Events:  dispatcher,
		Audit:   audit.NewLogger(db.EntClient),
		Policy:  middleware.ContextPolicy{},
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewAuditRetentionWorker(db.EntClient, cfg.Audit.Retention))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river client: %w", err)
	}
	// Audit retention runs daily and once on startup.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.AuditRetentionArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	server := handlers.NewServer(handlers.ServerDeps{
		Client:       db.EntClient,
		PropertySets: service.NewPropertySetService(db.EntClient, rt),
		Categories:   service.NewCategoryService(db.EntClient, rt),
		ContentTypes: service.NewContentTypeService(db.EntClient, rt),
		JWTConfig: middleware.JWTConfig{
			SigningKey: []byte(cfg.Auth.SigningSecret),
			Issuer:     cfg.Auth.Issuer,
			ExpiresIn:  cfg.Auth.TokenTTL,
		},
		Readiness: dbReadiness{db: db},
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server),
		DB:     db,
		Pools:  pools,
		Events: dispatcher,
	}, nil
}

// dbReadiness pings the shared pool for the readiness probe.
type dbReadiness struct {
	db *infrastructure.DatabaseClients
}

func (r dbReadiness) Ready(c *gin.Context) error {
	return r.db.Pool.Ping(c.Request.Context())
}

// registerActivityStream subscribes the async activity-stream listener to
// the after events. Handlers on the event pool never veto; the operation
// has already committed when they run.
func registerActivityStream(dispatcher *domain.Dispatcher) {
	log := func(ctx context.Context, event *domain.Event) (string, error) {
		logger.Info("activity",
			zap.String("event", string(event.Name)),
			zap.String("object_type", event.ObjectType),
			zap.String("object_id", event.ObjectID),
			zap.String("actor", event.Actor),
		)
		return "", nil
	}
	for _, name := range []domain.EventName{
		domain.EventPropertySetAfterSave,
		domain.EventPropertySetAfterRemove,
		domain.EventCategoryAfterSave,
		domain.EventCategoryAfterRemove,
		domain.EventContentTypeAfterSave,
		domain.EventContentTypeAfterRemove,
	} {
		dispatcher.RegisterAsync(name, log)
	}
}
