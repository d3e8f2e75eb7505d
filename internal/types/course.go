package types

import "fmt"

type Course struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Institution string `gorm:"not null" json:"institution"`
	Year        string `gorm:"not null" json:"year"`
}

func (Course) TableName() string { return "course" }

func (c *Course) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Institution == "" {
		return fmt.Errorf("institution is required")
	}
	if c.Year == "" {
		return fmt.Errorf("year is required")
	}
	return nil
}
