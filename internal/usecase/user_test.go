package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavesys/foodcourt-api/internal/repository"
	"github.com/mavesys/foodcourt-api/shared/security"
)

func TestUserCreate_DuplicateUsername(t *testing.T) {
	u := NewUserUsecase(newFakeUserRepo())

	_, err := u.CreateUser(context.Background(), RegisterParams{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = u.CreateUser(context.Background(), RegisterParams{
		Username: "johndoe",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserGet_NotFound(t *testing.T) {
	u := NewUserUsecase(newFakeUserRepo())

	_, err := u.GetUser(context.Background(), testObjectID(99).Hex())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdate_RehashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	u := NewUserUsecase(repo)

	user, err := u.CreateUser(context.Background(), RegisterParams{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	newPassword := "changed-456"
	updated, err := u.UpdateUser(context.Background(), user.ID.Hex(), UpdateUserParams{
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)

	ok, err := security.VerifyPassword(newPassword, updated.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserUpdate_PartialFields(t *testing.T) {
	u := NewUserUsecase(newFakeUserRepo())

	user, err := u.CreateUser(context.Background(), RegisterParams{
		Username:  "johndoe",
		Email:     "john@example.com",
		Password:  "password123",
		FirstName: "John",
	})
	require.NoError(t, err)

	firstName := "Johnny"
	updated, err := u.UpdateUser(context.Background(), user.ID.Hex(), UpdateUserParams{
		FirstName: &firstName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.FirstName)
	assert.Equal(t, "johndoe", updated.Username)
	assert.Equal(t, "john@example.com", updated.Email)
}

func TestUserDelete(t *testing.T) {
	u := NewUserUsecase(newFakeUserRepo())

	user, err := u.CreateUser(context.Background(), RegisterParams{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, u.DeleteUser(context.Background(), user.ID.Hex()))

	_, err = u.GetUser(context.Background(), user.ID.Hex())
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = u.DeleteUser(context.Background(), user.ID.Hex())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserList_ReturnsTotal(t *testing.T) {
	u := NewUserUsecase(newFakeUserRepo())

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := u.CreateUser(context.Background(), RegisterParams{
			Username: name,
			Email:    name + "@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
	}

	users, total, err := u.ListUsers(context.Background(), repository.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, int64(3), total)
}
