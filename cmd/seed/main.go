// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/litoralverde/training-api/internal/config"
	"github.com/litoralverde/training-api/internal/core"
	"github.com/litoralverde/training-api/internal/user"
)

// Seed accounts for a fresh deployment. Admins are never created
// through the public registration flow, only through this utility.
var accounts = []struct {
	Email    string
	Name     string
	Password string
	Role     user.Role
}{
	{
		Email:    "admin@litoralverde.com.br",
		Name:     "Administrador",
		Password: "admin123",
		Role:     user.RoleAdmin,
	},
	{
		Email:    "teste@litoralverde.com.br",
		Name:     "Usuário Teste",
		Password: "teste123",
		Role:     user.RoleUser,
	},
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("seed error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := core.NewDatabase(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(ctx); err != nil {
			slog.Error("mongodb close error", "error", err)
		}
	}()

	repo := user.NewRepository(db.DB)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return err
	}

	for _, account := range accounts {
		hash, err := core.HashPassword(account.Password)
		if err != nil {
			return err
		}

		record := &user.User{
			ID:           uuid.New().String(),
			Email:        account.Email,
			Name:         account.Name,
			PasswordHash: hash,
			Role:         account.Role,
			CreatedAt:    time.Now().UTC(),
		}

		if err := repo.Upsert(ctx, record); err != nil {
			return err
		}

		slog.Info("account seeded",
			"email", account.Email,
			"role", account.Role,
		)
	}

	return nil
}
