package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/ports"
)

func TestAuthService_LoginSuccess(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)
	ctx, stack := notifyCtx()
	id := testIdentity(t)

	f.backend.EXPECT().
		Login(gomock.Any(), ports.Credentials{Username: "alice", Password: "Secret123"}).
		Return(id, nil)

	st := NewAnonymousState(NewID())
	require.NoError(t, f.auth.Login(ctx, st, " alice ", "Secret123"))

	assert.True(t, st.LoggedIn())
	assert.Equal(t, id.Token, st.Token())
	assert.Equal(t, 1, f.store.Len())
	assert.Equal(t, []string{MsgLoginSuccess}, messages(stack.Drain()))
}

func TestAuthService_LoginFailureKeepsSession(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)
	ctx, stack := notifyCtx()

	f.backend.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(session.Identity{}, apperrors.Unauthenticated("Invalid username or password", http.StatusUnauthorized))

	st := NewAnonymousState(NewID())
	err := f.auth.Login(ctx, st, "alice", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthenticated(err))
	assert.Equal(t, "Invalid username or password", apperrors.Message(err, ""))
	assert.False(t, st.LoggedIn())
	assert.Equal(t, 0, f.store.Len())
	assert.Zero(t, stack.Len())
}

func TestAuthService_LoginRequiresFields(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)

	err := f.auth.Login(context.Background(), NewAnonymousState(NewID()), "", "x")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_RegisterValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)

	err := f.auth.Register(context.Background(), RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "short",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "Password must be at least 8 characters long", apperrors.Message(err, ""))
}

func TestAuthService_RegisterDefaultsUserType(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)
	ctx, stack := notifyCtx()

	f.backend.EXPECT().Register(gomock.Any(), ports.Registration{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Passw0rdX",
		UserType: session.UserTypeIndividual,
	}).Return("User created successfully", nil)

	require.NoError(t, f.auth.Register(ctx, RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "Passw0rdX", UserType: "martian",
	}))
	assert.Equal(t, []string{MsgRegistered}, messages(stack.Drain()))
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)
	ctx, stack := notifyCtx()

	err := f.auth.ForgotPassword(ctx, "  ")
	require.Error(t, err)
	assert.Equal(t, MsgEnterEmail, apperrors.Message(err, ""))
	assert.True(t, apperrors.IsValidation(err))

	f.backend.EXPECT().ForgotPassword(gomock.Any(), "a@b.c").Return("If that email exists, a link was sent", nil)
	require.NoError(t, f.auth.ForgotPassword(ctx, "a@b.c"))
	assert.Equal(t, []string{MsgResetLinkSent}, messages(stack.Drain()))
}

func TestAuthService_ResetPasswordClearsSession(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)
	ctx, stack := notifyCtx()
	st := signedIn(t, f.sessions)

	err := f.auth.ResetPassword(ctx, st, "", "Passw0rdX")
	require.Error(t, err)
	assert.Equal(t, MsgInvalidToken, apperrors.Message(err, ""))

	f.backend.EXPECT().ResetPassword(gomock.Any(), "tok", "Passw0rdX").Return("Password reset", nil)
	require.NoError(t, f.auth.ResetPassword(ctx, st, "tok", "Passw0rdX"))

	assert.False(t, st.LoggedIn())
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, []string{MsgResetSuccess}, messages(stack.Drain()))
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)
	ctx := context.Background()

	_, err := f.auth.ChangePassword(ctx, "", "Passw0rdX")
	assert.Equal(t, MsgFillAllFields, apperrors.Message(err, ""))

	_, err = f.auth.ChangePassword(ctx, "old", "lowercase1")
	assert.Equal(t, "Password must contain at least one uppercase letter (A-Z)", apperrors.Message(err, ""))

	f.backend.EXPECT().
		ChangePassword(gomock.Any(), finance.PasswordChange{CurrentPassword: "old", NewPassword: "Passw0rdX"}).
		Return("Password updated", nil)
	msg, err := f.auth.ChangePassword(ctx, "old", "Passw0rdX")
	require.NoError(t, err)
	assert.Equal(t, "Password updated", msg)
}

func TestAuthService_UpdateProfileMirrorsSession(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)
	ctx := context.Background()
	st := signedIn(t, f.sessions)

	f.backend.EXPECT().
		UpdateProfile(gomock.Any(), finance.Profile{Username: "alice2", Email: "new@example.com", UserType: "business"}).
		Return("Profile updated", nil)

	msg, err := f.auth.UpdateProfile(ctx, st, ProfileInput{Username: "alice2", Email: "new@example.com", UserType: "business"})
	require.NoError(t, err)
	assert.Equal(t, MsgProfileUpdated, msg)

	sess := st.Session()
	assert.Equal(t, "alice2", sess.Username)
	assert.Equal(t, "new@example.com", sess.Email)
	assert.Equal(t, session.UserTypeBusiness, sess.UserType)

	stored, err := f.store.Get(ctx, st.ID())
	require.NoError(t, err)
	assert.Equal(t, "alice2", stored.Username)
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	f := newBackendFixture(t)
	ctx, stack := notifyCtx()
	st := signedIn(t, f.sessions)

	require.NoError(t, f.auth.Logout(ctx, st))
	assert.False(t, st.LoggedIn())
	assert.Equal(t, 0, f.store.Len())

	items := stack.Drain()
	require.Len(t, items, 1)
	assert.Equal(t, MsgLoggedOut, items[0].Message)
	assert.Equal(t, notify.Success, items[0].Severity)
}
