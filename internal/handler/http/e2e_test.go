package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// e2eServer runs the whole stack on a fresh SQLite file.
func e2eServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.Nop()

	db, err := store.NewDB(t.Context(), config.DB{DSN: "file:" + filepath.Join(t.TempDir(), "e2e.db")}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	storages := store.NewStorages(db, validators.NewRecipeBookValidator(), log)
	services, err := service.NewServices(storages, config.App{BcryptCost: 4, Version: "0.0.1"}, models.AppBuildInfo{}, log)
	require.NoError(t, err)

	settings := testSettings()
	settings.RequestTimeout = 10 * time.Second
	h := NewHandler(services, session.NewMemoryStore(0), settings, log)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server) *utils.HTTPClient {
	t.Helper()
	client, err := utils.NewHTTPClient(srv.URL)
	require.NoError(t, err)
	return client
}

func TestE2E_UserJourney(t *testing.T) {
	srv := e2eServer(t)
	ann := newClient(t, srv)
	instructions := strings.Repeat("Chop, fry, serve. ", 4)

	resp, err := ann.R().Get("/check_session")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.JSONEq(t, `{"error":"Not logged in"}`, resp.String())

	resp, err = ann.R().
		SetBody(map[string]any{"username": "  ann  ", "password": "secret", "bio": "home cook"}).
		Post("/signup")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var user userView
	require.NoError(t, json.Unmarshal(resp.Body(), &user))
	assert.Equal(t, "ann", user.Username)
	assert.Positive(t, user.ID)
	assert.NotContains(t, resp.String(), "password")

	resp, err = ann.R().Get("/check_session")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, resp.String(), mustJSON(t, user))

	resp, err = ann.R().Get("/recipes")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "[]", resp.String())

	resp, err = ann.R().
		SetBody(map[string]any{"title": "Omelette", "instructions": instructions, "minutes_to_complete": 10, "user_id": 999}).
		Post("/recipes")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.JSONEq(t, mustJSON(t, recipeView{
		Title:             "Omelette",
		Instructions:      instructions,
		MinutesToComplete: intPtr(10),
		User:              ownerView{ID: user.ID, Username: "ann"},
	}), resp.String())

	resp, err = ann.R().Get("/recipes")
	require.NoError(t, err)
	var recipes []recipeView
	require.NoError(t, json.Unmarshal(resp.Body(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, user.ID, recipes[0].User.ID)

	resp, err = ann.R().Delete("/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	resp, err = ann.R().Get("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.JSONEq(t, `{"error":"Unauthorized"}`, resp.String())

	resp, err = ann.R().Delete("/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = ann.R().
		SetBody(map[string]any{"username": "ann", "password": "secret"}).
		Post("/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = ann.R().Get("/check_session")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestE2E_LoginFailuresAreIndistinguishable(t *testing.T) {
	srv := e2eServer(t)
	client := newClient(t, srv)

	resp, err := client.R().SetBody(map[string]any{"username": "ann", "password": "secret"}).Post("/signup")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	stranger := newClient(t, srv)
	unknown, err := stranger.R().SetBody(map[string]any{"username": "bob", "password": "secret"}).Post("/login")
	require.NoError(t, err)
	wrong, err := stranger.R().SetBody(map[string]any{"username": "ann", "password": "Secret"}).Post("/login")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode())
	assert.Equal(t, http.StatusUnauthorized, wrong.StatusCode())
	assert.Equal(t, unknown.String(), wrong.String())
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, wrong.String())
}

func TestE2E_Validation(t *testing.T) {
	srv := e2eServer(t)
	client := newClient(t, srv)

	resp, err := client.R().SetBody(map[string]any{"username": "   ", "password": "secret"}).Post("/signup")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.JSONEq(t, `{"errors":"Username cannot be empty"}`, resp.String())

	resp, err = client.R().SetBody(map[string]any{"username": "ann", "password": "secret"}).Post("/signup")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = client.R().SetBody(map[string]any{"username": "ann", "password": "other"}).Post("/signup")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.JSONEq(t, `{"errors":"Username has already been taken"}`, resp.String())

	// 49 characters after trimming
	short := "  " + strings.Repeat("a", 49) + "  "
	resp, err = client.R().SetBody(map[string]any{"title": "Soup", "instructions": short}).Post("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.JSONEq(t, `{"errors":"Instructions must be at least 50 characters long"}`, resp.String())

	resp, err = client.R().SetBody(map[string]any{"title": "  ", "instructions": strings.Repeat("a", 50)}).Post("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.JSONEq(t, `{"errors":"Title cannot be empty"}`, resp.String())

	resp, err = client.R().
		SetBody(map[string]any{"title": "Stew", "instructions": strings.Repeat("a", 50), "minutes_to_complete": 3000000000}).
		Post("/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
	assert.JSONEq(t, `{"errors":"Minutes to complete is out of range"}`, resp.String())

	resp, err = client.R().Get("/recipes")
	require.NoError(t, err)
	assert.Equal(t, "[]", resp.String(), "rejected recipes leave nothing behind")
}

func TestE2E_ConcurrentSignupSameUsername(t *testing.T) {
	srv := e2eServer(t)

	const attempts = 8
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client, err := utils.NewHTTPClient(srv.URL)
			if err != nil {
				return
			}
			resp, err := client.R().SetBody(map[string]any{"username": "race", "password": "secret"}).Post("/signup")
			if err != nil {
				return
			}
			statuses[i] = resp.StatusCode()
		}()
	}
	wg.Wait()

	created, rejected := 0, 0
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusUnprocessableEntity:
			rejected++
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, rejected)
}

func TestE2E_Version(t *testing.T) {
	srv := e2eServer(t)

	resp, err := newClient(t, srv).R().Get("/version")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), `"version":"0.0.1"`)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
