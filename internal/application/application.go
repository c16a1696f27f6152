package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/AnatolNica/HeroNexus-sub001/internal/config"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/service/account"
	marvelservice "github.com/AnatolNica/HeroNexus-sub001/internal/domain/service/marvel"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/service/roulette"
	"github.com/AnatolNica/HeroNexus-sub001/internal/infrastructure/cache"
	"github.com/AnatolNica/HeroNexus-sub001/internal/infrastructure/marvel"
	"github.com/AnatolNica/HeroNexus-sub001/internal/infrastructure/notifier"
	"github.com/AnatolNica/HeroNexus-sub001/internal/infrastructure/persistence"
	"github.com/AnatolNica/HeroNexus-sub001/internal/server"
	"github.com/AnatolNica/HeroNexus-sub001/internal/worker"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/application/connectors"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/application/modules"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/probe"
)

const cachePrefix = "heronexus:"

// Run wires the service and blocks until ctx is cancelled or a module fails.
func Run(ctx context.Context, cfg config.Config) error {
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	defer pg.Close(ctx)

	rds := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer rds.Close(ctx)

	if cfg.Postgres.AutoMigrate {
		if err := persistence.Migrate(cfg.Postgres.DSN); err != nil {
			return fmt.Errorf("persistence.Migrate: %w", err)
		}

		logger(ctx).Info("migrations applied")
	}

	db := pg.Client(ctx)
	roulettes := persistence.NewRouletteRepository(db)
	users := persistence.NewUserRepository(db)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger(ctx).Error("asynqClient.Close", logx.Error(err))
		}
	}()

	catalog := roulette.NewCatalog(roulettes)
	spins := roulette.NewSpinService(
		roulettes,
		users,
		roulette.WithMaxAttempts(cfg.Spin.MaxAttempts),
		roulette.WithPublisher(worker.NewPublisher(asynqClient, cfg.Spin.RareChance, cfg.Notifier.Enabled())),
	)
	accounts := account.NewService(users, cfg.Spin.MaxAttempts)

	keys, err := marvel.NewKeyPool(cfg.Marvel.PublicKeys, cfg.Marvel.PrivateKeys, cfg.Marvel.KeyMaxUsage)
	if err != nil {
		return fmt.Errorf("marvel.NewKeyPool: %w", err)
	}

	characters := marvelservice.NewService(
		marvel.NewClient(cfg.Marvel.BaseURL, keys, cfg.Marvel.Timeout),
		cache.NewRedis(rds.Client(ctx), cachePrefix),
		cfg.Marvel.CacheTTL,
	)

	var announcer worker.Announcer

	if cfg.Notifier.Enabled() {
		bot, err := notifier.NewTelegramBot(cfg.Notifier.BotToken, cfg.Notifier.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		announcer = bot
	} else {
		logger(ctx).Info("rare-win announcements disabled")
	}

	router := server.NewRouter(
		server.NewServer(
			server.NewRouletteServer(catalog, spins),
			server.NewCharacterServer(characters),
			server.NewAccountServer(accounts),
			[]byte(cfg.Auth.JWTSecret),
		),
		server.RouterOptions{
			CORSOrigins:    cfg.HTTP.CORSOrigins,
			LogFieldMaxLen: cfg.App.LogFieldMaxLen,
		},
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	})

	modules.MetricServer{
		ListenAddress: cfg.Ops.MetricsListenAddress,
		Gatherer:      prometheus.DefaultGatherer,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Ops.ProbeListenAddress,
		Checks: map[string]probe.Check{
			"postgres": pg.Ping,
			"redis":    rds.Ping,
		},
	}.Run(ctx, g)

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
		Concurrency:   cfg.Ops.AsynqConcurrency,
	}.Run(ctx, g, worker.Queues(), worker.NewHandlers(characters, announcer).Handlers()...)

	logger(ctx).Info("application started",
		slog.String("name", cfg.App.Name),
		slog.String("version", cfg.App.Version),
	)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
