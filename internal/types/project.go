package types

import (
	"fmt"

	"gorm.io/datatypes"
)

const (
	ImageTypeRender = "render"
	ImageTypePlan   = "plan"
	ImageTypeDetail = "detail"
	ImageTypeSketch = "sketch"
)

type ProjectImage struct {
	URL     string `json:"url"`
	Type    string `json:"type"`
	Caption string `json:"caption"`
}

type Project struct {
	Base
	Title       string                            `gorm:"not null" json:"title"`
	Description string                            `gorm:"not null" json:"description"`
	Category    string                            `gorm:"not null" json:"category"`
	Location    string                            `gorm:"not null" json:"location"`
	Year        string                            `gorm:"not null" json:"year"`
	Tags        datatypes.JSONSlice[string]       `json:"tags"`
	Images      datatypes.JSONSlice[ProjectImage] `json:"images"`
	Featured    bool                              `gorm:"not null;default:false" json:"featured"`
}

func (Project) TableName() string { return "project" }

func (p *Project) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Description == "" {
		return fmt.Errorf("description is required")
	}
	if p.Category == "" {
		return fmt.Errorf("category is required")
	}
	if p.Location == "" {
		return fmt.Errorf("location is required")
	}
	if p.Year == "" {
		return fmt.Errorf("year is required")
	}
	for i := range p.Images {
		img := &p.Images[i]
		if img.URL == "" {
			return fmt.Errorf("images[%d].url is required", i)
		}
		switch img.Type {
		case "":
			img.Type = ImageTypeRender
		case ImageTypeRender, ImageTypePlan, ImageTypeDetail, ImageTypeSketch:
		default:
			return fmt.Errorf("images[%d].type must be one of render, plan, detail, sketch", i)
		}
	}
	return nil
}
