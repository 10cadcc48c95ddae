package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Challenge struct {
	ID          string `gorm:"primarykey;size:36" json:"_id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// Hex digest of the flag. The plaintext flag is never stored.
	FlagHash string   `gorm:"size:64;not null" json:"-"`
	Points   int      `gorm:"not null" json:"points"`
	Author   string   `gorm:"size:50;not null" json:"author"`
	Tags     []string `gorm:"serializer:json;type:text" json:"tags,omitempty"`
	// Set explicitly at contribution time; no endpoint flips it afterwards.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (Challenge) TableName() string {
	return "challenge"
}

func (ch *Challenge) BeforeCreate(tx *gorm.DB) (err error) {
	if ch.ID == "" {
		ch.ID = uuid.NewString()
	}
	return
}
