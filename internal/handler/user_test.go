package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
	"github.com/mavesys/foodcourt-api/internal/usecase"
	"github.com/mavesys/foodcourt-api/shared/validation"
)

type fakeUserUsecase struct {
	users map[string]*model.User
}

func newFakeUserUsecase() *fakeUserUsecase {
	return &fakeUserUsecase{users: map[string]*model.User{}}
}

func (f *fakeUserUsecase) CreateUser(_ context.Context, params usecase.RegisterParams) (*model.User, error) {
	for _, existing := range f.users {
		if existing.Email == params.Email || existing.Username == params.Username {
			return nil, usecase.ErrUserAlreadyExists
		}
	}

	user := &model.User{
		ID:        bson.NewObjectID(),
		Username:  params.Username,
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}
	f.users[user.ID.Hex()] = user
	return user, nil
}

func (f *fakeUserUsecase) GetUser(_ context.Context, id string) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserUsecase) ListUsers(
	_ context.Context,
	_ repository.Page,
) ([]*model.User, int64, error) {
	out := []*model.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserUsecase) UpdateUser(
	_ context.Context,
	id string,
	params usecase.UpdateUserParams,
) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	return user, nil
}

func (f *fakeUserUsecase) DeleteUser(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return usecase.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func newUserTestRouter(t *testing.T, uc usecase.UserUsecase) chi.Router {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)

	h := NewUserHandler(uc, v, zerolog.Nop())
	r := chi.NewRouter()
	r.Post("/api/users", h.CreateUser)
	r.Get("/api/users", h.ListUsers)
	r.Get("/api/users/{id}", h.GetUser)
	r.Put("/api/users/{id}", h.UpdateUser)
	r.Delete("/api/users/{id}", h.DeleteUser)
	return r
}

func TestCreateUser_Success(t *testing.T) {
	router := newUserTestRouter(t, newFakeUserUsecase())

	body := `{"username":"johndoe","email":"john@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string     `json:"message"`
		User    model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp.Message)
	assert.Equal(t, "johndoe", resp.User.Username)
}

func TestCreateUser_ValidationFailure(t *testing.T) {
	router := newUserTestRouter(t, newFakeUserUsecase())

	body := `{"username":"jo","email":"not-an-email","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
}

func TestCreateUser_Duplicate(t *testing.T) {
	uc := newFakeUserUsecase()
	router := newUserTestRouter(t, uc)

	body := `{"username":"johndoe","email":"john@example.com","password":"password123"}`
	for i, wantCode := range []int{http.StatusCreated, http.StatusBadRequest} {
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, wantCode, rec.Code, "request %d", i)
	}
}

func TestListUsers_PaginationEnvelope(t *testing.T) {
	uc := newFakeUserUsecase()
	_, err := uc.CreateUser(context.Background(), usecase.RegisterParams{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	router := newUserTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/users?page=1&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Users      []model.User `json:"users"`
		Pagination struct {
			CurrentPage int64 `json:"currentPage"`
			TotalPages  int64 `json:"totalPages"`
			TotalUser   int64 `json:"totalUser"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 1)
	assert.Equal(t, int64(1), resp.Pagination.CurrentPage)
	assert.Equal(t, int64(1), resp.Pagination.TotalPages)
	assert.Equal(t, int64(1), resp.Pagination.TotalUser)
}

func TestGetUser_NotFound(t *testing.T) {
	router := newUserTestRouter(t, newFakeUserUsecase())

	req := httptest.NewRequest(http.MethodGet, "/api/users/"+bson.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User not found", resp["message"])
}

func TestUpdateUser_Success(t *testing.T) {
	uc := newFakeUserUsecase()
	user, err := uc.CreateUser(context.Background(), usecase.RegisterParams{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	router := newUserTestRouter(t, uc)

	body := `{"username":"johnny"}`
	req := httptest.NewRequest(http.MethodPut, "/api/users/"+user.ID.Hex(), strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string     `json:"message"`
		User    model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User updated successfully", resp.Message)
	assert.Equal(t, "johnny", resp.User.Username)
}

func TestDeleteUser_Success(t *testing.T) {
	uc := newFakeUserUsecase()
	user, err := uc.CreateUser(context.Background(), usecase.RegisterParams{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	router := newUserTestRouter(t, uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+user.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, uc.users)
}
