package main

import (
	"fmt"
	"os"
	"path/filepath"

	"taskflow/internal/config"
	"taskflow/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// getEnvironment determines the current environment from TF_ENV
func getEnvironment() Environment {
	switch os.Getenv("TF_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(env Environment, cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, cfg: cfg}
}

// CreateRepository creates a repository instance for the current
// environment. Testing uses an in-memory database, development a local
// file, production the configured database path.
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Testing:
		return sqlite.New(":memory:")
	case Development:
		return sqlite.New("taskflow.db")
	default:
		return rf.createProductionRepository()
	}
}

func (rf *RepositoryFactory) createProductionRepository() (sqlite.Repository, error) {
	dbPath := rf.cfg.GetDatabasePath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
