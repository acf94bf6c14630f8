package users

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrHandleImmutable is returned when a user tries to change a handle that is already set.
	ErrHandleImmutable = errors.New("handle cannot be changed once set")
	ErrHandleTaken     = errors.New("handle already taken")
)

type User struct {
	ID        string
	Username  *string
	Units     string
	CreatedAt time.Time
}

type ProfileUpdate struct {
	Username *string
	Units    *string
}
