package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session rows back the session cookie. The auth collaborator owns the
// full lifecycle; the perimeter gate only reads them.
type Session struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Token     string    `gorm:"size:512;uniqueIndex;not null" json:"token"`
	UserID    string    `gorm:"size:36;not null;index" json:"userId"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	IPAddress *string   `gorm:"size:45" json:"ipAddress"`
	UserAgent *string   `gorm:"size:255" json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Account links a user to an auth provider. The "credential" provider row
// carries the bcrypt password hash for the fallback login.
type Account struct {
	ID                    string     `gorm:"primaryKey;size:36" json:"id"`
	AccountID             string     `gorm:"size:100;not null" json:"accountId"`
	ProviderID            string     `gorm:"size:50;not null;index" json:"providerId"`
	UserID                string     `gorm:"size:36;not null;index" json:"userId"`
	User                  User       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AccessToken           *string    `gorm:"size:512" json:"-"`
	RefreshToken          *string    `gorm:"size:512" json:"-"`
	IDToken               *string    `gorm:"size:2048" json:"-"`
	AccessTokenExpiresAt  *time.Time `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`
	Scope                 *string    `gorm:"size:255" json:"-"`
	Password              *string    `gorm:"size:255" json:"-"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Verification stores pending email-verification values for the auth
// collaborator.
type Verification struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Identifier string    `gorm:"size:100;not null;index" json:"identifier"`
	Value      string    `gorm:"size:255;not null" json:"value"`
	ExpiresAt  time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (v *Verification) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
