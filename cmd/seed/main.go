package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/angelmondragon/groupdrive-backend/internal/catalog"
	"github.com/angelmondragon/groupdrive-backend/internal/groups"
	"github.com/angelmondragon/groupdrive-backend/internal/users"
	"github.com/angelmondragon/groupdrive-backend/pkg/config"
	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	"github.com/angelmondragon/groupdrive-backend/pkg/logger"
	"github.com/angelmondragon/groupdrive-backend/pkg/redis"
	"github.com/angelmondragon/groupdrive-backend/pkg/security"
)

const tempPasswordLength = 16

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})
	_ = godotenv.Load()

	withCatalog := flag.Bool("catalog", true, "copy the built-in price list into the catalog tables")
	withGroups := flag.Bool("groups", true, "upsert the sample brand groups")
	adminEmail := flag.String("admin-email", "", "create or promote this user to admin")
	adminPassword := flag.String("admin-password", "", "password for a newly created admin (generated when empty)")
	adminName := flag.String("admin-name", "Admin", "display name for a newly created admin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})
	ctx := logg.WithField(context.Background(), "env", cfg.App.Env)

	dbClient, err := db.New(ctx, cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if *withCatalog {
		if err := seedCatalog(ctx, cfg, dbClient, logg); err != nil {
			logg.Error(ctx, "catalog seeding failed", err)
			os.Exit(1)
		}
	}

	if *withGroups {
		svc, err := groups.NewService(dbClient, logg)
		if err != nil {
			logg.Error(ctx, "failed to create groups service", err)
			os.Exit(1)
		}
		res, err := svc.SeedSamples(ctx)
		if err != nil {
			logg.Error(ctx, "group seeding failed", err)
			os.Exit(1)
		}
		fmt.Printf("groups: %d created, %d skipped\n", res.Created, res.Skipped)
	}

	if *adminEmail != "" {
		if err := ensureAdmin(ctx, dbClient, cfg.Password, *adminName, *adminEmail, *adminPassword); err != nil {
			logg.Error(ctx, "admin seeding failed", err)
			os.Exit(1)
		}
		fmt.Println("admin ready:", users.NormalizeEmail(*adminEmail))
	}
}

// seedCatalog clears the shared cache as well when Redis is reachable, so
// running API instances pick up the new prices.
func seedCatalog(ctx context.Context, cfg *config.Config, dbClient *db.Client, logg *logger.Logger) error {
	var redisClient *redis.Client
	if cfg.FeatureFlags.CatalogCache {
		rc, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Warn(ctx, "redis unavailable, catalog cache will expire on its own")
		} else {
			redisClient = rc
			defer rc.Close()
		}
	}

	stack, err := catalog.NewStack(catalog.StackParams{
		DB:       dbClient,
		Redis:    redisClient,
		Config:   cfg.Catalog,
		UseCache: redisClient != nil,
		Logger:   logg,
	})
	if err != nil {
		return err
	}
	res, err := stack.Seeder.Seed(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("catalog: %d brands, %d entries\n", res.Brands, res.Entries)
	return nil
}

func ensureAdmin(ctx context.Context, dbClient *db.Client, pwCfg config.PasswordConfig, name, email, password string) error {
	repo := users.NewRepository(dbClient.DB())
	email = users.NormalizeEmail(email)

	existing, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return repo.UpdateRole(ctx, existing.ID, enums.UserRoleAdmin)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("lookup user: %w", err)
	}

	if password == "" {
		generated, err := security.GenerateTempPassword(tempPasswordLength)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		password = generated
		fmt.Println("generated admin password:", password)
	}
	if len(password) < security.MinPasswordLength {
		return fmt.Errorf("admin password must be at least %d characters", security.MinPasswordLength)
	}
	hash, err := security.HashPassword(password, pwCfg)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = repo.Create(ctx, users.CreateUserDTO{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         enums.UserRoleAdmin,
	})
	return err
}
