package session

// Package session contains the domain-level session record shared by the
// session stores, the services and the HTTP layer. It is pure and free of
// framework/adapter concerns.

import (
	"errors"
	"strings"
	"time"
)

// ErrPartialSession is returned when some, but not all, identity fields are set.
var ErrPartialSession = errors.New("session: partial identity")

// ErrNotFound is returned by stores when no live record exists for an ID.
var ErrNotFound = errors.New("session: not found")

// UserType is the account flavour chosen at registration. It selects the
// category and income catalogs.
type UserType string

const (
	UserTypeStudent    UserType = "student"
	UserTypeIndividual UserType = "individual"
	UserTypeBusiness   UserType = "business"
)

// ParseUserType normalises raw input. Unknown values parse to "".
func ParseUserType(raw string) UserType {
	switch t := UserType(strings.ToLower(strings.TrimSpace(raw))); t {
	case UserTypeStudent, UserTypeIndividual, UserTypeBusiness:
		return t
	default:
		return ""
	}
}

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool { return ParseUserType(string(t)) != "" }

// UserTypes returns the known user types in registration-form order.
func UserTypes() []UserType {
	return []UserType{UserTypeStudent, UserTypeIndividual, UserTypeBusiness}
}

// Session is the server-side record we persist for a browser.
// ID is the opaque value of the session cookie. An empty Token means logged out.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token,omitempty"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	UserType  UserType  `json:"user_type,omitempty"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	ActiveTab string    `json:"active_tab,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Identity is what a successful login hands to the session.
type Identity struct {
	Token    string
	Username string
	Email    string
	UserType UserType
	IsAdmin  bool
}

// LoggedIn reports whether the session carries a token.
func (s Session) LoggedIn() bool { return s.Token != "" }

// Expired reports whether the record has passed its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Validate enforces the all-or-nothing rule for identity fields.
func (s Session) Validate() error {
	set := 0
	for _, v := range []string{s.Token, s.Username, s.Email, string(s.UserType)} {
		if v != "" {
			set++
		}
	}
	switch {
	case set == 0 && !s.IsAdmin:
		return nil
	case set == 4:
		return nil
	default:
		return ErrPartialSession
	}
}

// WithIdentity returns a copy carrying all identity fields from id.
func (s Session) WithIdentity(id Identity) Session {
	s.Token = id.Token
	s.Username = id.Username
	s.Email = id.Email
	s.UserType = id.UserType
	s.IsAdmin = id.IsAdmin
	return s
}

// Anonymous returns a copy with every identity field and the active tab cleared.
// The record ID and timestamps are kept.
func (s Session) Anonymous() Session {
	return Session{ID: s.ID, CreatedAt: s.CreatedAt, ExpiresAt: s.ExpiresAt}
}

// Initial is the first letter of the username, upper-cased, or "U".
func (s Session) Initial() string {
	for _, r := range s.Username {
		return strings.ToUpper(string(r))
	}
	return "U"
}
