package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mavesys/foodcourt-api/internal/config"
	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
	"github.com/mavesys/foodcourt-api/shared/auth"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}

	f.nextID++
	user.ID = testObjectID(f.nextID)
	stored := *user
	f.users[user.ID.Hex()] = &stored
	return user, nil
}

func (f *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetUserByResetToken(_ context.Context, token string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.ResetPasswordToken == token && user.ResetPasswordExpire.After(time.Now()) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpdateUser(
	_ context.Context,
	id string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.FirstName != nil {
		user.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		user.LastName = *params.LastName
	}
	if params.ProfilePic != nil {
		user.ProfilePic = *params.ProfilePic
	}
	if params.ResetPasswordToken != nil {
		user.ResetPasswordToken = *params.ResetPasswordToken
	}
	if params.ResetPasswordExpire != nil {
		user.ResetPasswordExpire = *params.ResetPasswordExpire
	}
	if params.ClearResetToken {
		user.ResetPasswordToken = ""
		user.ResetPasswordExpire = time.Time{}
	}

	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.users, id)
	return user, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context, _ repository.Page) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []*model.User{}
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeMailer) SendSimple(to []string, _, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, body)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		PublicBaseURL: "http://localhost:3000",
		Token: config.TokenConfig{
			Secret:                 "test-secret",
			Issuer:                 "foodcourt-api",
			AccessTokenExpiresIn:   8784 * time.Hour,
			PasswordResetExpiresIn: time.Hour,
		},
	}
}

func newTestAuthUsecase(repo *fakeUserRepo, mail *fakeMailer) (AuthUsecase, auth.JWTAuthenticator) {
	cfg := testConfig()
	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Secret, cfg.Token.Issuer, cfg.Token.Issuer)
	return NewAuthUsecase(repo, jwtAuth, mail, cfg), jwtAuth
}

func registerTestUser(t *testing.T, u AuthUsecase) *model.User {
	t.Helper()

	user, err := u.Register(context.Background(), RegisterParams{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return user
}

func TestRegister_HashesPassword(t *testing.T) {
	u, _ := newTestAuthUsecase(newFakeUserRepo(), &fakeMailer{})

	user := registerTestUser(t, u)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	u, _ := newTestAuthUsecase(newFakeUserRepo(), &fakeMailer{})
	registerTestUser(t, u)

	_, err := u.Register(context.Background(), RegisterParams{
		Username: "janedoe",
		Email:    "john@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin_TokenCarriesUserID(t *testing.T) {
	u, jwtAuth := newTestAuthUsecase(newFakeUserRepo(), &fakeMailer{})
	user := registerTestUser(t, u)

	token, loggedIn, err := u.Login(context.Background(), LoginParams{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims := &auth.AccessClaims{}
	_, err = jwtAuth.ValidateTokenWithClaims(token, claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.ID.Hex(), claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	u, _ := newTestAuthUsecase(newFakeUserRepo(), &fakeMailer{})
	registerTestUser(t, u)

	_, _, err := u.Login(context.Background(), LoginParams{
		Email:    "john@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	u, _ := newTestAuthUsecase(newFakeUserRepo(), &fakeMailer{})

	_, _, err := u.Login(context.Background(), LoginParams{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRequestPasswordReset_SendsResetLink(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	u, _ := newTestAuthUsecase(repo, mail)
	user := registerTestUser(t, u)

	require.NoError(t, u.RequestPasswordReset(context.Background(), "john@example.com"))

	require.Len(t, mail.sent, 1)
	assert.Contains(t, mail.sent[0], "http://localhost:3000/api/reset-password/")

	stored, err := repo.GetUser(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ResetPasswordToken)
	assert.True(t, stored.ResetPasswordExpire.After(time.Now()))
	assert.Contains(t, mail.sent[0], stored.ResetPasswordToken)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	u, _ := newTestAuthUsecase(newFakeUserRepo(), &fakeMailer{})

	err := u.RequestPasswordReset(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrEmailNotRegistered)
}

func TestRequestPasswordReset_MailFailure(t *testing.T) {
	u, _ := newTestAuthUsecase(newFakeUserRepo(), &fakeMailer{err: errors.New("smtp unreachable")})
	registerTestUser(t, u)

	err := u.RequestPasswordReset(context.Background(), "john@example.com")
	assert.ErrorIs(t, err, ErrSendingEmail)
}

func TestResetPassword_Flow(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	u, _ := newTestAuthUsecase(repo, mail)
	user := registerTestUser(t, u)

	require.NoError(t, u.RequestPasswordReset(context.Background(), "john@example.com"))

	stored, err := repo.GetUser(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	token := stored.ResetPasswordToken

	updated, err := u.ResetPassword(context.Background(), token, "new-password-456")
	require.NoError(t, err)
	assert.Empty(t, updated.ResetPasswordToken)

	// Old password no longer valid, new one is.
	_, _, err = u.Login(context.Background(), LoginParams{
		Email:    "john@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = u.Login(context.Background(), LoginParams{
		Email:    "john@example.com",
		Password: "new-password-456",
	})
	assert.NoError(t, err)

	// The token is single-use.
	_, err = u.ResetPassword(context.Background(), token, "another-password")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	u, _ := newTestAuthUsecase(newFakeUserRepo(), &fakeMailer{})

	_, err := u.ResetPassword(context.Background(), strings.Repeat("a", 40), "new-password")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}
