package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PdfTemplate holds layout definitions used by the document-generation
// collaborator when rendering order PDFs.
type PdfTemplate struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Template  json.RawMessage `gorm:"type:jsonb;not null" json:"template"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (p *PdfTemplate) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
