package types

import "fmt"

type Interest struct {
	Base
	Name string `gorm:"not null" json:"name"`
	Icon string `gorm:"not null" json:"icon"`
}

func (Interest) TableName() string { return "interest" }

func (i *Interest) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.Icon == "" {
		return fmt.Errorf("icon is required")
	}
	return nil
}
