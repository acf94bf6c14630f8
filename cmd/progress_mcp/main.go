// Package main runs the progress MCP server over stdio for one user (local use from an
// MCP client). The backend also serves the same tools at /mcp over HTTP for the
// authenticated caller.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/gorillabuild/gorillabuild/internal/config"
	"github.com/gorillabuild/gorillabuild/internal/db"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/bodyweight"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/exercises"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/goals"
	progressmcp "github.com/gorillabuild/gorillabuild/internal/gymstats/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userID := flag.String("user", "", "user id whose progress the tools read")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	if *userID == "" {
		log.Fatal("user id not set, use -user")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GORILLA_POSTGRES_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	bodyWeightRepo := bodyweight.NewRepo(dbPool)
	goalsRepo := goals.NewRepo(dbPool)
	service := progressmcp.NewProgressService(
		progressmcp.NewPoolSchemaRepo(dbPool),
		exercises.NewService(exercises.NewRepo(dbPool), bodyWeightRepo, goalsRepo),
		goalsRepo,
		bodyWeightRepo,
	)

	server := progressmcp.NewServer(service, *userID)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
