package types

import "fmt"

type Experience struct {
	Base
	Role        string `gorm:"not null" json:"role"`
	Company     string `gorm:"not null" json:"company"`
	Period      string `gorm:"not null" json:"period"`
	Description string `gorm:"not null;default:''" json:"description"`
}

func (Experience) TableName() string { return "experience" }

func (e *Experience) Validate() error {
	if e.Role == "" {
		return fmt.Errorf("role is required")
	}
	if e.Company == "" {
		return fmt.Errorf("company is required")
	}
	if e.Period == "" {
		return fmt.Errorf("period is required")
	}
	return nil
}
