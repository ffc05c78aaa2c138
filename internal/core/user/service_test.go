package user_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/newsroom/internal/core/user"
	"github.com/taibuivan/newsroom/internal/platform/apperr"
	"github.com/taibuivan/newsroom/internal/platform/postgres"
)

type fakeRepository struct {
	users map[string]*user.User
}

func (repo *fakeRepository) ListUsers(context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, len(repo.users))
	for _, u := range repo.users {
		users = append(users, u)
	}
	return users, nil
}

func (repo *fakeRepository) GetUser(_ context.Context, username string) (*user.User, error) {
	return repo.users[username], nil
}

// fakeChecker reports every probed value missing and records the probes.
type fakeChecker struct {
	probes []postgres.Target
}

func (checker *fakeChecker) EnsureExists(_ context.Context, target postgres.Target, value any) error {
	checker.probes = append(checker.probes, target)
	return apperr.NotFound(target.Kind(), fmt.Sprint(value))
}

func newService(repo user.Repository, checker user.Checker) *user.Service {
	return user.NewService(repo, checker, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetUser_Found(t *testing.T) {
	checker := &fakeChecker{}
	repo := &fakeRepository{users: map[string]*user.User{
		"lurker": {Username: "lurker", Name: "do_nothing"},
	}}

	found, err := newService(repo, checker).GetUser(context.Background(), "lurker")

	require.NoError(t, err)
	assert.Equal(t, "do_nothing", found.Name)
	assert.Empty(t, checker.probes)
}

func TestGetUser_Missing(t *testing.T) {
	checker := &fakeChecker{}

	_, err := newService(&fakeRepository{}, checker).GetUser(context.Background(), "ghost")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.Status())
	assert.Equal(t, "user: ghost does not exist", ae.Message())
	assert.Equal(t, []postgres.Target{postgres.UserByUsername}, checker.probes)
}

func TestHandler_GetUser(t *testing.T) {
	repo := &fakeRepository{users: map[string]*user.User{
		"butter_bridge": {Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/jonny.png"},
	}}
	router := chi.NewRouter()
	router.Route("/api/users", user.NewHandler(newService(repo, &fakeChecker{})).RegisterRoutes)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users/butter_bridge", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"user":{"username":"butter_bridge","name":"jonny","avatar_url":"https://example.com/jonny.png"}}`,
		recorder.Body.String())

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users/nobody", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "user: nobody does not exist")
}
