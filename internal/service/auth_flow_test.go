package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"contacthub/internal/auth"
	apperrors "contacthub/internal/errors"
	"contacthub/internal/model"
)

// fakeUserRepo is an in-memory credential store enforcing the same uniqueness
// guarantees as the MySQL schema. It lets the full lifecycle run end to end
// without a database.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[uint]*model.User)}
}

func (r *fakeUserRepo) clone(u *model.User) *model.User {
	cp := *u
	return &cp
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return apperrors.ErrDuplicateUsername
		}
		if user.Email != nil && existing.Email != nil && *existing.Email == *user.Email {
			return apperrors.ErrDuplicateEmail
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = r.clone(user)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = r.clone(user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return r.clone(u), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return r.clone(u), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			return r.clone(u), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByResetToken(_ context.Context, token string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			return r.clone(u), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) DeleteWithContacts(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

type captureMailer struct {
	lastEmail string
	lastToken string
}

func (m *captureMailer) SendResetToken(email, token string) {
	m.lastEmail = email
	m.lastToken = token
}

func TestCredentialLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	mailer := &captureMailer{}
	svc := NewAuthService(repo, auth.NewBcryptHasher(), auth.NewUUIDIssuer(), mailer, time.Hour)

	email := "a@x.com"

	// Registration returns the identity without exposing the hash.
	user, err := svc.Register(ctx, "alice", "Secr3t!23", &email)
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Equal(t, &email, user.Email)

	// Re-registering the username fails and leaves the account untouched.
	_, err = svc.Register(ctx, "alice", "other-pass", nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
	stored, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)

	// Re-using the email under another username fails too.
	_, err = svc.Register(ctx, "alice2", "other-pass", &email)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)

	// Wrong password never authenticates.
	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Correct password does.
	authed, err := svc.Authenticate(ctx, "alice", "Secr3t!23")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	// A reset request issues a token with roughly one hour of validity and
	// hands it to the mailer.
	token, err := svc.RequestPasswordReset(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, email, mailer.lastEmail)
	assert.Equal(t, token, mailer.lastToken)
	pending, err := repo.FindByResetToken(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, pending.ResetExpiry)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *pending.ResetExpiry, 5*time.Second)

	// Completing the reset rotates the password.
	require.NoError(t, svc.CompletePasswordReset(ctx, token, "NewPass!45"))

	// The token is single-use.
	err = svc.CompletePasswordReset(ctx, token, "Another!99")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)

	// Old password is dead, new one works.
	_, err = svc.Authenticate(ctx, "alice", "Secr3t!23")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "alice", "NewPass!45")
	assert.NoError(t, err)
}

func TestCredentialLifecycle_SecondRequestReplacesToken(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, auth.NewBcryptHasher(), auth.NewUUIDIssuer(), &captureMailer{}, time.Hour)

	email := "b@x.com"
	_, err := svc.Register(ctx, "bob", "Secr3t!23", &email)
	require.NoError(t, err)

	first, err := svc.RequestPasswordReset(ctx, email)
	require.NoError(t, err)
	second, err := svc.RequestPasswordReset(ctx, email)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// The replaced token no longer resolves to any user.
	err = svc.CompletePasswordReset(ctx, first, "NewPass!45")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)

	// The current one does.
	assert.NoError(t, svc.CompletePasswordReset(ctx, second, "NewPass!45"))
}
