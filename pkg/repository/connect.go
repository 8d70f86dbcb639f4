package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"neat.bar/Neat/configs"
	"neat.bar/Neat/pkg/model"
)

// Repository owns the database handle. It is constructed once at startup and
// injected into everything that needs storage; there is no package-level
// instance.
type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

var (
	// ErrStorage wraps engine-level failures: quota, locked file, missing
	// storage support.
	ErrStorage = errors.New("storage failure")
	// ErrNotFound signals an operation referenced an absent identifier.
	ErrNotFound = errors.New("record not found")
	// ErrValidation signals a caller-supplied record is missing required
	// fields. The store does not enforce it; command and facade layers do.
	ErrValidation = errors.New("invalid record")
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", conf.DB.Path, conf.DB.BusyTimeoutMS)

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)

	return &Repository{DB: db, Logger: logger}, nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Migrate creates or upgrades the schema. There is a single schema version;
// AutoMigrate is idempotent.
func (r *Repository) Migrate(ctx context.Context) error {
	err := r.DB.WithContext(ctx).AutoMigrate(&model.Cocktail{}, &model.Rating{}, &model.BarItem{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return nil
}

func storageErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	return fmt.Errorf("%w: %v", ErrStorage, err)
}
