// Package main provides idempotent data seeding for Lattice: the default
// admin account, the stock content types and a starter category tree.
// Migrations are expected to have run before seeding.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"lattice-cms.io/lattice/ent"
	"lattice-cms.io/lattice/ent/category"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/user"
	"lattice-cms.io/lattice/internal/config"
	"lattice-cms.io/lattice/internal/infrastructure"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	if err := seedDefaultAdmin(ctx, client, cfg.Auth.BcryptCost); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedContentTypes(ctx, client); err != nil {
		return fmt.Errorf("seed content types: %w", err)
	}
	if err := seedCategories(ctx, client); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func seedDefaultAdmin(ctx context.Context, client *ent.Client, bcryptCost int) error {
	exists, err := client.User.Query().
		Where(user.UsernameEQ("admin")).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("Admin account already present, skipping")
		return nil
	}

	password := os.Getenv("LATTICE_ADMIN_PASSWORD")
	if password == "" {
		password = uuid.NewString()
		logger.Warn("LATTICE_ADMIN_PASSWORD not set, generated one-time password",
			zap.String("password", password),
		)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	_, err = client.User.Create().
		SetID("user-" + id.String()).
		SetUsername("admin").
		SetDisplayName("Administrator").
		SetPasswordHash(string(hash)).
		SetPermissions([]string{"platform:admin"}).
		Save(ctx)
	if err != nil {
		return err
	}
	logger.Info("Seeded default admin account")
	return nil
}

// stockContentTypes mirrors the types every fresh installation ships with.
var stockContentTypes = []struct {
	Name           string
	MimeType       string
	FileExtensions string
	Binary         bool
}{
	{"HTML", "text/html", ".html", false},
	{"XML", "text/xml", ".xml", false},
	{"Text", "text/plain", ".txt", false},
	{"CSS", "text/css", ".css", false},
	{"JavaScript", "text/javascript", ".js", false},
	{"RSS", "application/rss+xml", ".rss", false},
	{"JSON", "application/json", ".json", false},
	{"PDF", "application/pdf", ".pdf", true},
}

func seedContentTypes(ctx context.Context, client *ent.Client) error {
	for _, ct := range stockContentTypes {
		exists, err := client.ContentType.Query().
			Where(contenttype.NameEQ(ct.Name)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		if _, err := client.ContentType.Create().
			SetID("ct-" + id.String()).
			SetName(ct.Name).
			SetMimeType(ct.MimeType).
			SetFileExtensions(ct.FileExtensions).
			SetBinary(ct.Binary).
			Save(ctx); err != nil {
			return err
		}
		logger.Info("Seeded content type", zap.String("name", ct.Name))
	}
	return nil
}

func seedCategories(ctx context.Context, client *ent.Client) error {
	for rank, name := range []string{"Templates", "Snippets", "Chunks"} {
		exists, err := client.Category.Query().
			Where(category.NameEQ(name)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		if _, err := client.Category.Create().
			SetID("cat-" + id.String()).
			SetName(name).
			SetRank(rank).
			Save(ctx); err != nil {
			return err
		}
		logger.Info("Seeded category", zap.String("name", name))
	}
	return nil
}
