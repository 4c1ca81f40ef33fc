package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUser is the authenticated-user view handed to handlers; it
// never carries the password hash.
type AuthorizedUser struct {
	ID          uuid.UUID
	Email       string
	Name        string
	Role        string
	IsActive    bool
	LastLoginAt *time.Time
}
