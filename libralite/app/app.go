package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/skhanzad/libralite/libralite/config"
	"github.com/skhanzad/libralite/libralite/internal/handler"
	"github.com/skhanzad/libralite/libralite/internal/repository"
	"github.com/skhanzad/libralite/libralite/internal/server"
	"github.com/skhanzad/libralite/libralite/internal/service"
	"github.com/skhanzad/libralite/libralite/migrations"
	"github.com/skhanzad/libralite/pkg/auth"
	"github.com/skhanzad/libralite/pkg/circuit_breaker"
	"github.com/skhanzad/libralite/pkg/kafka"
	"github.com/skhanzad/libralite/pkg/logger"
	"github.com/skhanzad/libralite/pkg/metrics"
	"github.com/skhanzad/libralite/pkg/postgres"
	"github.com/skhanzad/libralite/pkg/redis"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Run serves the HTTP API until SIGINT or SIGTERM.
func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "libralite")
	db, repo := openRepository(cfg, log)
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	authCfg, generated, err := auth.EnsureSecret(cfg.Auth)
	if err != nil {
		log.Fatal("auth.EnsureSecret", zap.Error(err))
	}
	if generated {
		log.Warn("JWT_SECRET is not set, member tokens will not survive a restart")
	}
	tokens := auth.NewManager(authCfg)

	opts := []service.Option{
		service.WithHoldShelfRetention(cfg.Circulation.HoldShelfRetention),
		service.WithTokenIssuer(tokens),
		service.WithMetrics(metrics.NewCirculation(reg)),
	}

	if cfg.Redis.Enabled() {
		client, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			log.Fatal("redis.New", zap.Error(err))
		}
		defer client.Close() //nolint:errcheck
		opts = append(opts, service.WithLoginLimiter(
			redis.NewLoginLimiter(client, cfg.Circulation.LoginMaxAttempts, cfg.Circulation.LoginWindow)))
	} else {
		log.Info("redis is not configured, login throttling disabled")
	}

	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		cb := circuit_breaker.New(100, time.Second, 0.2, 2)
		opts = append(opts, service.WithEnqueuer(kafka.NewEnqueuer(producer, cb)))
	} else {
		log.Info("kafka is not configured, hold-ready events are not published")
	}

	svc := service.NewService(repo, log, opts...)

	h := handler.New(svc, log,
		handler.WithAdminKey(cfg.AdminAPIKey),
		handler.WithTokenParser(tokens),
		handler.WithMetrics(reg),
	)
	if cfg.AdminAPIKey == "" {
		log.Warn("ADMIN_API_KEY is not set, admin endpoints reject every request")
	}

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	termSig := waitSignal()
	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

// RunNotifier consumes hold-ready events and marks shelf entries notified.
func RunNotifier(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "notifier")
	if !cfg.Kafka.Enabled() {
		log.Fatal("KAFKA_ADDRS is required for the notifier")
	}
	db, repo := openRepository(cfg, log)
	defer db.Close()

	svc := service.NewService(repo, log,
		service.WithHoldShelfRetention(cfg.Circulation.HoldShelfRetention))

	group, err := kafka.NewConsumer(cfg.Kafka, kafka.NotifierConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		kafka.Consume(ctx, group, handler.NewConsumer(svc.DeliverHoldReady, log), log, kafka.HoldReadyTopic)
	}()

	termSig := waitSignal()
	log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	cancel()
	if err = group.Close(); err != nil {
		log.Error("consumer group close", zap.Error(err))
	}
	<-done
	log.Info("Graceful shutdown finished")
}

// ExpireHolds runs one hold shelf sweep, for use from cron.
func ExpireHolds(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "expire-holds")
	db, repo := openRepository(cfg, log)
	defer db.Close()

	svc := service.NewService(repo, log,
		service.WithHoldShelfRetention(cfg.Circulation.HoldShelfRetention))
	n, err := svc.CheckExpiredHoldShelfItems(ctx)
	if err != nil {
		return err
	}
	log.Info("hold shelf sweep finished", zap.Int("expired", n))
	return nil
}

func openRepository(cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, repository.Store) {
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	return db, repo
}

func waitSignal() os.Signal {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	return <-sig
}
