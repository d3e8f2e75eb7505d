package types

import "fmt"

// Skill.Level is a pointer so a payload that omits the field can be told
// apart from an explicit level of 0.
type Skill struct {
	Base
	Name  string `gorm:"not null" json:"name"`
	Level *int   `gorm:"not null" json:"level"`
}

func (Skill) TableName() string { return "skill" }

func (s *Skill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Level == nil {
		return fmt.Errorf("level is required")
	}
	if *s.Level < 0 || *s.Level > 100 {
		return fmt.Errorf("level must be between 0 and 100")
	}
	return nil
}
