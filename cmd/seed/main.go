// Command seed loads roulettes and starting balances from a YAML file.
//
//	go run ./cmd/seed -file seed.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AnatolNica/HeroNexus-sub001/internal/config"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/service/account"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/service/roulette"
	"github.com/AnatolNica/HeroNexus-sub001/internal/infrastructure/persistence"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/application/connectors"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

func main() {
	file := flag.String("file", "seed.yaml", "path to the seed file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(logx.NewHandler(os.Stdout, cfg.App.LogFormat, cfg.App.LogLevel)))

	if err = run(ctx, cfg, *file); err != nil {
		slog.Error("seed failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context, cfg config.Config, path string) error {
	seed, err := readSeed(path)
	if err != nil {
		return err
	}

	if err = persistence.Migrate(cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("persistence.Migrate: %w", err)
	}

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	defer pg.Close(ctx)

	db := pg.Client(ctx)
	catalog := roulette.NewCatalog(persistence.NewRouletteRepository(db))
	accounts := account.NewService(persistence.NewUserRepository(db), cfg.Spin.MaxAttempts)

	drafts, err := seed.drafts()
	if err != nil {
		return err
	}

	created, err := catalog.CreateBatch(ctx, drafts)
	if err != nil {
		return fmt.Errorf("catalog.CreateBatch: %w", err)
	}

	for _, r := range created {
		slog.Info("roulette created", slog.String(logx.FieldRouletteID, r.ID.String()), slog.String("name", r.Name))
	}

	for _, u := range seed.Users {
		id, coins, err := u.parse()
		if err != nil {
			return err
		}

		_, err = accounts.Create(ctx, id, coins)

		switch {
		case domain.HasCode(err, errcodes.UserAlreadyExists):
			slog.Warn("user already exists", slog.String(logx.FieldUserID, u.ID))
		case err != nil:
			return fmt.Errorf("accounts.Create: %w", err)
		default:
			slog.Info("user created", slog.String(logx.FieldUserID, u.ID), slog.String("coins", coins.StringFixed(2)))
		}
	}

	return nil
}
