// Command server runs the tadipaar externment monitoring service.
//
// Dependency wiring lives here; business logic stays in the internal
// packages. Postgres, Redis, and Kafka are all optional: without them the
// service runs fully in-memory, which is the development mode the demo seed
// targets.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"tadipaar/internal/analytics"
	"tadipaar/internal/area"
	"tadipaar/internal/audit"
	"tadipaar/internal/auth"
	"tadipaar/internal/checkin"
	"tadipaar/internal/externee"
	"tadipaar/internal/jurisdiction"
	"tadipaar/internal/officer"
	"tadipaar/internal/platform/config"
	"tadipaar/internal/platform/httpserver"
	"tadipaar/internal/platform/logger"
	"tadipaar/internal/platform/postgres"
	platformredis "tadipaar/internal/platform/redis"
	"tadipaar/internal/seed"
	httptransport "tadipaar/internal/transport/http"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(cfg.PostgresDSN)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("postgres connected")
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("redis connected")
	}

	// Stores: Postgres when configured, in-memory otherwise.
	var (
		externeeStore externee.Store
		officerStore  officer.Store
		areaStore     area.Store
		checkinStore  checkin.Store
		alertStore    checkin.AlertStore
	)
	if db != nil {
		externeeStore = externee.NewPostgresStore(db)
		officerStore = officer.NewPostgresStore(db)
		areaStore = area.NewPostgresStore(db)
		checkinStore = checkin.NewPostgresStore(db)
		alertStore = checkin.NewPostgresAlertStore(db)
	} else {
		externeeStore = externee.NewInMemoryStore()
		officerStore = officer.NewInMemoryStore()
		areaStore = area.NewInMemoryStore()
		checkinStore = checkin.NewInMemoryStore()
		alertStore = checkin.NewInMemoryAlertStore()
	}

	var revocations auth.RevocationList
	var throttle checkin.Throttle
	if redisClient != nil {
		revocations = auth.NewRedisRevocationList(redisClient.Client)
		throttle = checkin.NewRedisThrottle(redisClient)
	} else {
		revocations = auth.NewInMemoryRevocationList()
		throttle = checkin.NewInMemoryThrottle()
	}

	// Audit pipeline: publisher -> worker -> store (+ optional Kafka).
	publisher := audit.NewPublisher(1024, log)
	auditStore := audit.NewInMemoryStore()
	var sink audit.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("kafka audit sink enabled", "topic", cfg.AuditTopic)
	}
	worker := audit.NewWorker(auditStore, sink, publisher.Inbox(), log)

	directory := jurisdiction.NewDemarcatedDirectory()

	var accountStore auth.AccountStore
	if db != nil {
		accountStore = auth.NewPostgresAccountStore(db)
	} else {
		accountStore = auth.NewInMemoryAccountStore()
	}
	tokens := auth.NewTokenManager(cfg.JWTSigningKey, cfg.SessionTTL)
	authService := auth.NewService(accountStore, tokens, revocations, log)

	areas := area.NewService(areaStore, externeeStore, directory, publisher, log)
	externees := externee.NewService(externeeStore, areas, directory, publisher, log)
	officers := officer.NewService(officerStore, directory, publisher, log)
	checkins := checkin.NewService(checkinStore, alertStore, externees, areas, throttle, directory, publisher, log)
	dashboards := analytics.NewService(externees, checkins, officers, areas, log)

	if cfg.SeedDemoData {
		err := seed.Demo(ctx, seed.Stores{
			Accounts:  authService,
			Areas:     areaStore,
			Externees: externeeStore,
			Officers:  officerStore,
		}, log)
		if err != nil {
			log.Error("demo seed failed", "error", err)
			os.Exit(1)
		}
	}

	router := httptransport.NewRouter(httptransport.Dependencies{
		Logger:     log,
		AdminToken: cfg.AdminToken,
		Session:    auth.RequireSession(tokens, revocations, log),
		Auth:       auth.NewHandler(authService, log),
		Externees:  externee.NewHandler(externees, log),
		Officers:   officer.NewHandler(officers, log),
		Areas:      area.NewHandler(areas, log),
		Checkins:   checkin.NewHandler(checkins, log),
		Analytics:  analytics.NewHandler(dashboards, log),
		DB:         db,
		Redis:      redisClient,
	})

	srv := httpserver.New(cfg.Addr, router)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		log.Info("tadipaar listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
