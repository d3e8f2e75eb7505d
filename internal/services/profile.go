package services

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
	"github.com/arquinori/portfolio-backend/internal/repos"
	"github.com/arquinori/portfolio-backend/internal/types"
)

type ProfileService interface {
	Get(ctx context.Context) (*types.Profile, error)
	Update(ctx context.Context, payload []byte) (*types.Profile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{db: db, log: serviceLog, profileRepo: profileRepo}
}

// Get returns the singleton, materializing it with empty-string defaults
// on the first read.
func (ps *profileService) Get(ctx context.Context) (*types.Profile, error) {
	profile, err := ps.profileRepo.GetOrCreate(ctx, nil)
	if err != nil {
		ps.log.Error("Failed to load profile", "error", err)
		return nil, apierr.Upstream(fmt.Errorf("Failed to load profile"))
	}
	return profile, nil
}

// Update merges the payload onto the existing profile. The socials object
// merges one level deep: nested keys absent from the payload keep their
// stored values, because the payload is decoded onto the loaded record.
func (ps *profileService) Update(ctx context.Context, payload []byte) (*types.Profile, error) {
	profile, err := ps.profileRepo.GetOrCreate(ctx, nil)
	if err != nil {
		ps.log.Error("Failed to load profile for update", "error", err)
		return nil, apierr.Upstream(fmt.Errorf("Failed to update profile"))
	}
	id := profile.ID
	createdAt := profile.CreatedAt
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, profile); err != nil {
			return nil, apierr.Validation("invalid profile payload: %v", err)
		}
	}
	profile.ID = id
	profile.CreatedAt = createdAt
	profile.IsSingleton = true
	saved, err := ps.profileRepo.Save(ctx, nil, profile)
	if err != nil {
		ps.log.Error("Failed to save profile", "error", err)
		return nil, apierr.Upstream(fmt.Errorf("Failed to update profile"))
	}
	return saved, nil
}
