package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/ports"
)

// User-facing messages of the auth flows.
const (
	MsgLoginSuccess    = "Success!"
	MsgRegistered      = "Registered! Please login."
	MsgResetLinkSent   = "Reset link sent"
	MsgResetSuccess    = "Reset Success! Please Login."
	MsgLoggedOut       = "Logged out successfully"
	MsgFillAllFields   = "Please fill in all fields"
	MsgEnterEmail      = "Please enter your email"
	MsgInvalidToken    = "Invalid or missing token"
	MsgPasswordUpdated = "Password updated"
	MsgProfileUpdated  = "Updated"
)

// AccountBackend is the part of the backend AuthService talks to.
type AccountBackend interface {
	ports.AuthBackend
	UpdateProfile(ctx context.Context, in finance.Profile) (string, error)
	ChangePassword(ctx context.Context, in finance.PasswordChange) (string, error)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Sessions *SessionService // Required
	Backend  AccountBackend  // Required
	Logger   *slog.Logger
}

// AuthService runs the login, registration and account flows. Sign-in flows
// push their own success notification; account updates return the message
// for the action dispatcher to report.
type AuthService struct {
	sessions *SessionService
	backend  AccountBackend
	logger   *slog.Logger
}

// NewAuthService constructs an AuthService. It panics on missing dependencies.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Sessions == nil {
		panic("service: AuthServiceOptions.Sessions is required")
	}
	if opts.Backend == nil {
		panic("service: AuthServiceOptions.Backend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		sessions: opts.Sessions,
		backend:  opts.Backend,
		logger:   logger.With("component", "auth"),
	}
}

// Login exchanges credentials for a token and starts a session.
// On failure the existing session is left untouched.
func (s *AuthService) Login(ctx context.Context, st *SessionState, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return apperrors.Validation(MsgFillAllFields)
	}

	id, err := s.backend.Login(ctx, ports.Credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.sessions.SignIn(ctx, st, id); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed in", "username", id.Username, "admin", id.IsAdmin)
	notify.Push(ctx, MsgLoginSuccess, notify.Success)
	return nil
}

// RegisterInput is the registration form.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	UserType string
}

// Register validates the form before any network call and creates the
// account. It does not sign the user in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	reg := ports.Registration{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
		UserType: session.ParseUserType(in.UserType),
	}
	if reg.Username == "" || reg.Email == "" || reg.Password == "" {
		return apperrors.Validation(MsgFillAllFields)
	}
	if reg.UserType == "" {
		reg.UserType = session.UserTypeIndividual
	}
	if err := ValidatePassword(reg.Password); err != nil {
		return err
	}

	if _, err := s.backend.Register(ctx, reg); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	notify.Push(ctx, MsgRegistered, notify.Success)
	return nil
}

// ForgotPassword requests a reset link for email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.ValidationField("email", MsgEnterEmail)
	}
	if _, err := s.backend.ForgotPassword(ctx, email); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	notify.Push(ctx, MsgResetLinkSent, notify.Success)
	return nil
}

// ResetPassword sets a new password using a mailed token. Any session the
// browser holds is cleared on success.
func (s *AuthService) ResetPassword(ctx context.Context, st *SessionState, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.Backend(MsgInvalidToken, 0)
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}

	if _, err := s.backend.ResetPassword(ctx, token, newPassword); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if st.Stored() {
		if err := s.sessions.Clear(ctx, st); err != nil {
			s.logger.WarnContext(ctx, "failed to clear session after password reset", "error", err)
		}
	}
	notify.Push(ctx, MsgResetSuccess, notify.Success)
	return nil
}

// ChangePassword updates the signed-in user's password and returns the
// backend's confirmation.
func (s *AuthService) ChangePassword(ctx context.Context, current, next string) (string, error) {
	if current == "" || next == "" {
		return "", apperrors.Validation(MsgFillAllFields)
	}
	if err := ValidatePassword(next); err != nil {
		return "", err
	}

	msg, err := s.backend.ChangePassword(ctx, finance.PasswordChange{CurrentPassword: current, NewPassword: next})
	if err != nil {
		return "", fmt.Errorf("change password: %w", err)
	}
	if msg == "" {
		msg = MsgPasswordUpdated
	}
	return msg, nil
}

// ProfileInput is the profile form.
type ProfileInput struct {
	Username string
	Email    string
	UserType string
}

// UpdateProfile sends the new profile and mirrors it into the session.
func (s *AuthService) UpdateProfile(ctx context.Context, st *SessionState, in ProfileInput) (string, error) {
	if !st.LoggedIn() {
		return "", apperrors.Unauthenticated("Please login first", 0)
	}
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" {
		return "", apperrors.Validation(MsgFillAllFields)
	}
	ut := session.ParseUserType(in.UserType)
	if ut == "" {
		ut = st.UserType()
	}

	if _, err := s.backend.UpdateProfile(ctx, finance.Profile{Username: username, Email: email, UserType: string(ut)}); err != nil {
		return "", fmt.Errorf("update profile: %w", err)
	}

	sess := st.Session()
	sess.Username = username
	sess.Email = email
	sess.UserType = ut
	if err := s.sessions.Save(ctx, st, sess); err != nil {
		return "", fmt.Errorf("update profile: %w", err)
	}
	return MsgProfileUpdated, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context, st *SessionState) error {
	if err := s.sessions.Clear(ctx, st); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	notify.Push(ctx, MsgLoggedOut, notify.Success)
	return nil
}
