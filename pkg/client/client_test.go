package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"herbverse/cmd/fx/app_fx"
	"herbverse/internal/models/request_models"
	"herbverse/pkg/client"
)

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "client-test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())

	var engine *gin.Engine
	app := fxtest.New(t, app_fx.Module, fx.Populate(&engine))
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	return client.New(server.URL)
}

func TestClientScenario(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := newTestClient(t)

	_, admin, err := c.Register(ctx, request_models.SignUpRequest{Name: "A", Email: "a@herbverse.test", Password: "pw1", Role: "admin"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	neem, err := c.CreatePlant(ctx, admin, request_models.CreatePlantRequest{Name: "Neem", Family: "Meliaceae"})
	require.NoError(t, err)

	tour, err := c.CreateTour(ctx, admin, request_models.CreateTourRequest{
		Title: "Immunity Tour", Theme: "Immunity", PlantIDs: []string{neem.ID},
	})
	require.NoError(t, err)

	_, _, err = c.Register(ctx, request_models.SignUpRequest{Name: "B", Email: "b@herbverse.test", Password: "pw2"})
	require.NoError(t, err)
	profile, user, err := c.Login(ctx, "b@herbverse.test", "pw2")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin())
	assert.Equal(t, profile.ID, user.UserID)

	got, err := c.GetTour(ctx, user, tour.ID)
	require.NoError(t, err)
	require.Len(t, got.Plants, 1)
	assert.Equal(t, "Neem", got.Plants[0].Name)

	bookmarks, err := c.AddBookmark(ctx, user, neem.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{neem.ID}, bookmarks)

	data, err := c.UserData(ctx, user)
	require.NoError(t, err)
	require.Len(t, data.Bookmarks, 1)
	assert.Equal(t, "Neem", data.Bookmarks[0].Name)

	bookmarks, err = c.RemoveBookmark(ctx, user, neem.ID)
	require.NoError(t, err)
	assert.Empty(t, bookmarks)

	url, err := c.Upload(ctx, user, "leaf.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/images/"))

	plants, err := c.ListPlants(ctx, client.Session{}, "Meliaceae")
	require.NoError(t, err)
	assert.Len(t, plants, 1)
}

func TestClientErrors(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, user, err := c.Register(ctx, request_models.SignUpRequest{Name: "B", Email: "b@herbverse.test", Password: "pw2"})
	require.NoError(t, err)

	_, err = c.CreatePlant(ctx, user, request_models.CreatePlantRequest{Name: "Neem"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	_, err = c.ListTours(ctx, client.Session{}, "")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, _, err = c.Login(ctx, "b@herbverse.test", "nope")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid credentials", apiErr.Message)

	_, err = c.Upload(ctx, user, "paper.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
