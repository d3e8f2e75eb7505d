package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arquinori/portfolio-backend/internal/logger"
)

// ResourceRepo is the one repository shared by every orderable resource
// kind. A nil tx falls back to the repo's own handle, same as the other
// repos in this codebase.
type ResourceRepo[T any] interface {
	List(ctx context.Context, tx *gorm.DB) ([]*T, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*T, error)
	Create(ctx context.Context, tx *gorm.DB, record *T) (*T, error)
	Save(ctx context.Context, tx *gorm.DB, record *T) (*T, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
}

type resourceRepo[T any] struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResourceRepo[T any](db *gorm.DB, baseLog *logger.Logger, name string) ResourceRepo[T] {
	repoLog := baseLog.With("repo", name)
	return &resourceRepo[T]{db: db, log: repoLog}
}

func (rr *resourceRepo[T]) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return rr.db
}

func (rr *resourceRepo[T]) List(ctx context.Context, tx *gorm.DB) ([]*T, error) {
	results := []*T{}
	// Explicit order first, newest first among ties; stable across calls.
	if err := rr.handle(tx).WithContext(ctx).
		Order("sort_order ASC, created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *resourceRepo[T]) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*T, error) {
	var result T
	if err := rr.handle(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (rr *resourceRepo[T]) Create(ctx context.Context, tx *gorm.DB, record *T) (*T, error) {
	if err := rr.handle(tx).WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (rr *resourceRepo[T]) Save(ctx context.Context, tx *gorm.DB, record *T) (*T, error) {
	if err := rr.handle(tx).WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (rr *resourceRepo[T]) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	result := rr.handle(tx).WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
