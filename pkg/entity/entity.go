package entity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

const (
	gravatarBaseURL     = "https://www.gravatar.com/avatar/"
	DefaultGravatarSize = 120
	MiniGravatarSize    = 60
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Streaks      int       `json:"streaks"`
}

func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// Gravatar returns the avatar URL for the user's email, falling back to the
// "mystery person" image.
func (u *User) Gravatar(size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(u.Email))))
	q := url.Values{}
	q.Set("s", fmt.Sprint(size))
	q.Set("d", "mp")
	return gravatarBaseURL + hex.EncodeToString(sum[:]) + "?" + q.Encode()
}

func (u *User) MiniGravatar() string {
	return u.Gravatar(MiniGravatarSize)
}

type Place struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	UserID uuid.UUID `json:"uid"`
}

type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PlaceID     uuid.UUID `json:"place_id"`
	ForgetCount int       `json:"forget_count"`
}
