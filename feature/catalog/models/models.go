package models

import (
	"encoding/json"
	"time"
)

// Plant is a catalog row. The scientific name is the global match key for
// upserts; the category reference is nullable and must point at an existing
// category when set.
type Plant struct {
	ID              uint      `gorm:"column:id;primaryKey" json:"id"`
	ScientificName  string    `gorm:"column:scientific_name;size:255;uniqueIndex" json:"scientific_name"`
	PlantCategoryID *uint     `gorm:"column:plant_category_id" json:"plant_category_id"`
	Family          string    `gorm:"column:family" json:"family"`
	Genus           string    `gorm:"column:genus" json:"genus"`
	Species         string    `gorm:"column:species" json:"species"`
	ToxicityLevel   string    `gorm:"column:toxicity_level" json:"toxicity_level"`
	ImageURLsRaw    string    `gorm:"column:image_urls;type:text" json:"-"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Plant) TableName() string {
	return "plants"
}

// ImageURLs decodes the stored JSON column into the ordered URL list.
// A malformed or empty column yields an empty list, never nil.
// The column is the serialization boundary: in-memory code only ever sees
// []string, never the raw JSON text.
func (p *Plant) ImageURLs() []string {
	if p.ImageURLsRaw == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(p.ImageURLsRaw), &urls); err != nil {
		return []string{}
	}
	if urls == nil {
		return []string{}
	}
	return urls
}

// SetImageURLs encodes the ordered URL list into the stored JSON column.
func (p *Plant) SetImageURLs(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		// []string cannot fail to marshal; keep the column consistent anyway.
		raw = []byte("[]")
	}
	p.ImageURLsRaw = string(raw)
}

// PlantCategory is an admin-managed grouping. Categories are never created
// implicitly by the sync path.
type PlantCategory struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:255;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (PlantCategory) TableName() string {
	return "plant_categories"
}

// PlantTranslation holds the per-language fields of a plant. At most one
// row exists per (plant_id, language_code).
type PlantTranslation struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	PlantID      uint      `gorm:"column:plant_id;uniqueIndex:idx_plant_language" json:"plant_id"`
	LanguageCode string    `gorm:"column:language_code;size:8;uniqueIndex:idx_plant_language" json:"language_code"`
	CommonName   string    `gorm:"column:common_name" json:"common_name"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Uses         string    `gorm:"column:uses;type:text" json:"uses"`
	AudioURL     *string   `gorm:"column:audio_url" json:"audio_url"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (PlantTranslation) TableName() string {
	return "plant_translations"
}

// Language is a row of the administratively known language set.
type Language struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Code     string `gorm:"column:code;size:8;uniqueIndex" json:"code"`
	Name     string `gorm:"column:name" json:"name"`
	IsActive bool   `gorm:"column:is_active" json:"is_active"`
}

// TableName overrides the table name.
func (Language) TableName() string {
	return "languages"
}
