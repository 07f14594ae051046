package user

import "time"

// User is the record handed to the practice core. The JSON shape is the
// persisted blob: { id, name, email, role, subscriptionStatus }.
type User struct {
	ID                 string             `gorm:"type:text;primaryKey" json:"id"`
	Name               string             `gorm:"type:text;not null" json:"name"`
	Email              string             `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Role               Role               `gorm:"type:text;not null;default:user" json:"role"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:text;not null;default:none" json:"subscriptionStatus"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"-"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
