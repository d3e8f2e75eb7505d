package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/types"
)

type ProfileRepo interface {
	GetOrCreate(ctx context.Context, tx *gorm.DB) (*types.Profile, error)
	Save(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{db: db, log: repoLog}
}

func (pr *profileRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return pr.db
}

// GetOrCreate materializes the singleton on first access. The unique index
// on is_singleton is the backstop against a concurrent first access; on a
// duplicate-key failure the row the other writer won with is read back.
func (pr *profileRepo) GetOrCreate(ctx context.Context, tx *gorm.DB) (*types.Profile, error) {
	var profile types.Profile
	err := pr.handle(tx).WithContext(ctx).
		Where(types.Profile{IsSingleton: true}).
		FirstOrCreate(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		pr.log.Debug("Profile materialization lost the race, reading existing row")
		var existing types.Profile
		if ferr := pr.handle(tx).WithContext(ctx).
			Where("is_singleton = ?", true).
			First(&existing).Error; ferr != nil {
			return nil, ferr
		}
		return &existing, nil
	}
	return nil, err
}

func (pr *profileRepo) Save(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
	if err := pr.handle(tx).WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
