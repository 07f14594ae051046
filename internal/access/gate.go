// Package access derives what a user may do in practice mode from their
// role and subscription status. Checks are advisory: nothing here mutates
// a user or a session.
package access

import "github.com/nanambeah/MedPrep-Ghana/internal/user"

type Level string

const (
	LevelNone       Level = "none"
	LevelRestricted Level = "restricted"
	LevelFull       Level = "full"
)

// CanAccessFull is true for administrators and active subscribers.
func CanAccessFull(u *user.User) bool {
	if u == nil {
		return false
	}
	return u.Role == user.RoleAdmin || u.SubscriptionStatus == user.SubscriptionActive
}

func LevelFor(u *user.User) Level {
	switch {
	case u == nil:
		return LevelNone
	case CanAccessFull(u):
		return LevelFull
	default:
		return LevelRestricted
	}
}
