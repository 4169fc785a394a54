// Package dbtest opens throwaway sqlite databases that mirror the Postgres
// schema closely enough for repository tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/angelmondragon/groupdrive-backend/pkg/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'member',
		is_premium BOOLEAN NOT NULL DEFAULT 0,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE groups (
		id TEXT PRIMARY KEY,
		car_model TEXT NOT NULL,
		brand TEXT NOT NULL,
		city TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		max_members INTEGER NOT NULL CHECK (max_members > 0),
		current_members INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'forming',
		created_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE group_members (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		user_email TEXT NOT NULL,
		joined_at DATETIME,
		UNIQUE (group_id, user_id)
	)`,
	`CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		group_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		on_road_price INTEGER NOT NULL,
		car_model TEXT NOT NULL,
		variant TEXT NOT NULL,
		transmission TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (user_id, group_id)
	)`,
	`CREATE TABLE car_preferences (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		car_model TEXT NOT NULL,
		variant TEXT NOT NULL,
		transmission TEXT NOT NULL,
		on_road_price INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (group_id, user_id)
	)`,
	`CREATE TABLE dealer_offers (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL,
		dealer_name TEXT NOT NULL,
		price NUMERIC NOT NULL,
		delivery_time TEXT NOT NULL,
		bonus_items TEXT NOT NULL DEFAULT '',
		votes INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	)`,
	`CREATE TABLE votes (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		offer_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (group_id, user_id)
	)`,
	`CREATE TABLE catalog_brands (
		name TEXT PRIMARY KEY,
		created_at DATETIME
	)`,
	`CREATE TABLE catalog_entries (
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		variant TEXT NOT NULL,
		transmission TEXT NOT NULL,
		price INTEGER NOT NULL CHECK (price > 0),
		updated_at DATETIME,
		PRIMARY KEY (brand, model, variant, transmission)
	)`,
}

// Open returns a gorm connection to a private in-memory database with the
// full schema applied.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// a single connection keeps the shared-cache database alive and
	// serialises writers the way row locks would in Postgres
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		if err := conn.Exec(stmt).Error; err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}
	return conn
}

// OpenClient wraps Open in a db.Client.
func OpenClient(t testing.TB) *db.Client {
	t.Helper()
	return db.NewFromGorm(Open(t))
}
