package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Socials struct {
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Behance   string `json:"behance"`
}

// Profile is the singleton record behind the public site header, hero and
// contact sections. The unique index on the immutable singleton marker is
// what guarantees concurrent first reads cannot materialize two rows.
type Profile struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string                      `gorm:"not null;default:''" json:"name"`
	Title              string                      `gorm:"not null;default:''" json:"title"`
	LogoName           string                      `gorm:"not null;default:''" json:"logoName"`
	HeroSubtitle       string                      `gorm:"not null;default:''" json:"heroSubtitle"`
	HeroTitlePrimary   string                      `gorm:"not null;default:''" json:"heroTitlePrimary"`
	HeroTitleSecondary string                      `gorm:"not null;default:''" json:"heroTitleSecondary"`
	About              string                      `gorm:"not null;default:''" json:"about"`
	Phone              string                      `gorm:"not null;default:''" json:"phone"`
	Email              string                      `gorm:"not null;default:''" json:"email"`
	Address            string                      `gorm:"not null;default:''" json:"address"`
	PortraitURL        string                      `gorm:"not null;default:''" json:"portraitUrl"`
	FormalURL          string                      `gorm:"not null;default:''" json:"formalUrl"`
	CVURL              string                      `gorm:"column:cv_url;not null;default:''" json:"cvUrl"`
	Socials            datatypes.JSONType[Socials] `json:"socials"`
	IsSingleton        bool                        `gorm:"not null;default:true;uniqueIndex" json:"-"`
	CreatedAt          time.Time                   `gorm:"not null" json:"createdAt"`
	UpdatedAt          time.Time                   `gorm:"not null" json:"updatedAt"`
}

func (Profile) TableName() string { return "profile" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.IsSingleton = true
	return nil
}
