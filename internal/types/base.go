package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the fields shared by every orderable resource record. The
// id is assigned in Go rather than by a column default so the sqlite
// driver used in tests can migrate the same models.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Order     int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *Base) RecordID() uuid.UUID      { return b.ID }
func (b *Base) SetRecordID(id uuid.UUID) { b.ID = id }

// ClearServerAssigned drops fields a client must never supply on create.
func (b *Base) ClearServerAssigned() {
	b.ID = uuid.Nil
	b.CreatedAt = time.Time{}
	b.UpdatedAt = time.Time{}
}
