package types

import "fmt"

type Education struct {
	Base
	Degree      string `gorm:"not null" json:"degree"`
	Institution string `gorm:"not null" json:"institution"`
	Year        string `gorm:"not null" json:"year"`
}

func (Education) TableName() string { return "education" }

func (e *Education) Validate() error {
	if e.Degree == "" {
		return fmt.Errorf("degree is required")
	}
	if e.Institution == "" {
		return fmt.Errorf("institution is required")
	}
	if e.Year == "" {
		return fmt.Errorf("year is required")
	}
	return nil
}
