package main

import (
	"fmt"
	"log"

	"roofing-site-be/internal/config"
	"roofing-site-be/internal/model"
	"roofing-site-be/pkg/database"
)

func main() {
	// 1. Configuration (.env is loaded by config.Load)
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: gen_random_uuid() lives in pgcrypto on older Postgres
	log.Println("Step 1: Setting up Extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate All Models
	models := []interface{}{
		&model.AuthUser{},
		&model.Profile{},
		&model.ContactSubmission{},
		&model.ChatConversation{},
		&model.ChatMessage{},
		&model.AdminLog{},
	}
	log.Printf("Step 2: Running AutoMigrate for %d Tables...", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: keep updated_at honest for writes that bypass GORM
	log.Println("Step 3: Creating updated_at triggers...")
	for _, sql := range postMigrationSQL(updatedAtTables) {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}

// Tables with an updated_at column.
var updatedAtTables = []string{"auth_users", "profiles", "chat_conversations"}

const updatedAtFunctionSQL = `CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
DECLARE _new_value TIMESTAMP WITH TIME ZONE;
BEGIN
  _new_value := now();
  IF NEW.updated_at IS DISTINCT FROM _new_value THEN NEW.updated_at = _new_value; END IF;
  RETURN NEW;
END; $$;`

// postMigrationSQL creates the trigger function and attaches it to every table.
// Each trigger is dropped first so reruns are safe.
func postMigrationSQL(tables []string) []string {
	statements := []string{updatedAtFunctionSQL}
	for _, table := range tables {
		trigger := fmt.Sprintf("set_%s_updated_at", table)
		statements = append(statements,
			fmt.Sprintf(`DROP TRIGGER IF EXISTS %s ON %s;`, trigger, table),
			fmt.Sprintf(`CREATE TRIGGER %s BEFORE UPDATE ON %s FOR EACH ROW EXECUTE FUNCTION set_current_timestamp_updated_at();`, trigger, table),
		)
	}
	return statements
}
