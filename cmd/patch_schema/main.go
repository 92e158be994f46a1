package main

import (
	"context"
	"os"
	"sort"

	"roofing-site-be/internal/config"
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/repository/unitofwork"
	"roofing-site-be/internal/service"
	"roofing-site-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Applies the same idempotent column patch as POST /api/functions/patch-schema.
func main() {
	cfg := config.Load()

	color.Cyan("🔧 Patching schema\n")

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		color.Red("Failed to connect: %v", err)
		os.Exit(1)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	schema := service.NewSchemaService(unitofwork.NewRepositoryFactory(db), nil, sysLogger)
	added, err := schema.Patch(context.Background(), uuid.Nil)
	if err != nil {
		color.Red("Patch failed: %v", err)
		os.Exit(1)
	}

	if len(added) == 0 {
		color.Green("Schema already up to date")
		return
	}

	tables := make([]string, 0, len(added))
	for table := range added {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		color.Yellow("%s", table)
		for _, column := range added[table] {
			color.Green("  + %s", column)
		}
	}
	color.Green("Schema patched successfully")
}
