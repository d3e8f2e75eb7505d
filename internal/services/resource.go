package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
	"github.com/arquinori/portfolio-backend/internal/repos"
)

// Record is the constraint every resource model satisfies through its Base
// embed plus its own Validate method.
type Record[T any] interface {
	*T
	Validate() error
	RecordID() uuid.UUID
	SetRecordID(id uuid.UUID)
	ClearServerAssigned()
}

// ResourceService is the generic CRUD engine: one implementation of
// list/get/create/update/delete shared by every resource kind. Payloads
// are decoded straight onto model values, so an update payload merges only
// the fields it actually carries.
type ResourceService[T any, PT Record[T]] struct {
	name string
	repo repos.ResourceRepo[T]
	log  *logger.Logger
}

func NewResourceService[T any, PT Record[T]](name string, repo repos.ResourceRepo[T], baseLog *logger.Logger) *ResourceService[T, PT] {
	serviceLog := baseLog.With("service", name+"Service")
	return &ResourceService[T, PT]{name: name, repo: repo, log: serviceLog}
}

func (s *ResourceService[T, PT]) Name() string { return s.name }

func (s *ResourceService[T, PT]) ListAll(ctx context.Context) ([]*T, error) {
	records, err := s.repo.List(ctx, nil)
	if err != nil {
		s.log.Error("Failed to list records", "error", err)
		return nil, apierr.Upstream(fmt.Errorf("Failed to list %s records", s.name))
	}
	return records, nil
}

func (s *ResourceService[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		// The id format is opaque to callers; malformed ids read as absent.
		return nil, s.notFound()
	}
	record, err := s.repo.GetByID(ctx, nil, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound()
		}
		s.log.Error("Failed to get record", "id", id, "error", err)
		return nil, apierr.Upstream(fmt.Errorf("Failed to get %s record", s.name))
	}
	return record, nil
}

func (s *ResourceService[T, PT]) Create(ctx context.Context, payload []byte) (*T, error) {
	var record T
	pt := PT(&record)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, pt); err != nil {
			return nil, apierr.Validation("invalid %s payload: %v", s.name, err)
		}
	}
	pt.ClearServerAssigned()
	if err := pt.Validate(); err != nil {
		return nil, apierr.Validation("%v", err)
	}
	created, err := s.repo.Create(ctx, nil, &record)
	if err != nil {
		s.log.Error("Failed to create record", "error", err)
		return nil, apierr.Upstream(fmt.Errorf("Failed to create %s record", s.name))
	}
	return created, nil
}

func (s *ResourceService[T, PT]) Update(ctx context.Context, id string, payload []byte) (*T, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, s.notFound()
	}
	existing, err := s.repo.GetByID(ctx, nil, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound()
		}
		s.log.Error("Failed to load record for update", "id", id, "error", err)
		return nil, apierr.Upstream(fmt.Errorf("Failed to update %s record", s.name))
	}
	pt := PT(existing)
	if len(payload) > 0 {
		// Decoding onto the loaded value merges exactly the fields present
		// in the payload and leaves the rest untouched.
		if err := json.Unmarshal(payload, pt); err != nil {
			return nil, apierr.Validation("invalid %s payload: %v", s.name, err)
		}
	}
	pt.SetRecordID(uid)
	if err := pt.Validate(); err != nil {
		return nil, apierr.Validation("%v", err)
	}
	saved, err := s.repo.Save(ctx, nil, existing)
	if err != nil {
		s.log.Error("Failed to save record", "id", id, "error", err)
		return nil, apierr.Upstream(fmt.Errorf("Failed to update %s record", s.name))
	}
	return saved, nil
}

func (s *ResourceService[T, PT]) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return s.notFound()
	}
	deleted, err := s.repo.Delete(ctx, nil, uid)
	if err != nil {
		s.log.Error("Failed to delete record", "id", id, "error", err)
		return apierr.Upstream(fmt.Errorf("Failed to delete %s record", s.name))
	}
	if !deleted {
		return s.notFound()
	}
	return nil
}

func (s *ResourceService[T, PT]) notFound() error {
	return apierr.NotFound("%s not found", s.name)
}
