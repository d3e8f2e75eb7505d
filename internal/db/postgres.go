package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/arquinori/portfolio-backend/internal/config"
	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/types"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(cfg *config.Config, log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresName)

	serviceLog.Info("Connecting to Postgres...")
	// TranslateError maps driver duplicate-key errors to
	// gorm.ErrDuplicatedKey, which the profile repo relies on.
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	return AutoMigrate(s.db)
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

// AutoMigrate is shared with the sqlite-backed tests so both backends
// migrate the exact same model set.
func AutoMigrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&types.Profile{},
		&types.Project{},
		&types.Experience{},
		&types.Education{},
		&types.Course{},
		&types.Skill{},
		&types.Interest{},
	)
}
