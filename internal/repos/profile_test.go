package repos

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arquinori/portfolio-backend/internal/db"
	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return gormDB
}

// A writer losing the materialization race sees a duplicate-key failure on
// the singleton marker. That failure must surface as gorm.ErrDuplicatedKey,
// the sentinel GetOrCreate recovers on; without error translation it would
// bubble up as a raw driver error instead.
func TestProfileDuplicateInsertTranslatesToDuplicatedKey(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewProfileRepo(gormDB, testLogger())
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, nil)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	// BeforeCreate forces IsSingleton=true, so this collides with the row
	// above on the unique index.
	err = gormDB.Create(&types.Profile{}).Error
	if err == nil {
		t.Fatalf("second singleton insert succeeded, want unique violation")
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate insert error = %v, want gorm.ErrDuplicatedKey", err)
	}

	second, err := repo.GetOrCreate(ctx, nil)
	if err != nil {
		t.Fatalf("GetOrCreate after collision failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("GetOrCreate returned a different row after collision: %s != %s", second.ID, first.ID)
	}
}

func TestProfileSaveRoundTrip(t *testing.T) {
	gormDB := newTestDB(t)
	repo := NewProfileRepo(gormDB, testLogger())
	ctx := context.Background()

	profile, err := repo.GetOrCreate(ctx, nil)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	profile.Name = "Ernesto"
	if _, err := repo.Save(ctx, nil, profile); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := repo.GetOrCreate(ctx, nil)
	if err != nil {
		t.Fatalf("GetOrCreate after save failed: %v", err)
	}
	if reloaded.Name != "Ernesto" {
		t.Fatalf("Name = %q, want Ernesto", reloaded.Name)
	}
	if reloaded.ID != profile.ID {
		t.Fatalf("save changed the singleton id: %s != %s", reloaded.ID, profile.ID)
	}
}
