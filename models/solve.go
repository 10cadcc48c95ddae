package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Solve records one successful flag submission. Points are copied from the
// challenge at solve time and never recomputed.
type Solve struct {
	ID          string    `gorm:"primarykey;size:36" json:"_id"`
	ChallengeID string    `gorm:"size:36;not null" json:"challenge_id"`
	Username    string    `gorm:"size:50;not null" json:"username"`
	Points      int       `gorm:"not null" json:"points"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Solve) TableName() string {
	return "solve"
}

func (s *Solve) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return
}
