package models

import "time"

type User struct {
	BaseModel
	Name          string   `gorm:"not null" json:"name"`
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	Phone         string   `json:"phone"`
	Image         string   `json:"image"`
	PasswordHash  string   `gorm:"not null" json:"-"`
	Role          UserRole `gorm:"type:varchar(20);not null;index" json:"role"`
	Banned        bool     `gorm:"default:false" json:"banned"`
	BanReason     string   `json:"ban_reason,omitempty"`
	BanExpires    *time.Time `json:"ban_expires,omitempty"`
	EmailVerified bool     `gorm:"default:false" json:"email_verified"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// PublicProfile is the subset of a staff member exposed on joined reads
// (assignee on enterprise/faculty enquiries).
type PublicProfile struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Image string   `json:"image"`
	Role  UserRole `json:"role"`
}

func (u *User) Public() *PublicProfile {
	if u == nil {
		return nil
	}
	return &PublicProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
		Role:  u.Role,
	}
}

// BanActive reports whether the ban is currently in force, honouring an
// optional expiry.
func (u *User) BanActive(now time.Time) bool {
	if !u.Banned {
		return false
	}
	if u.BanExpires != nil && now.After(*u.BanExpires) {
		return false
	}
	return true
}
