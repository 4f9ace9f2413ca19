package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/y345-git/Campus-Navigation/models"
	"github.com/y345-git/Campus-Navigation/services"
	"github.com/y345-git/Campus-Navigation/store"
)

func ptr(v float64) *float64 { return &v }

func newTestServer(t *testing.T) (*gin.Engine, *SessionManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	campusStore := store.NewCampusStore(dir)
	interiorStore := store.NewInteriorStore(dir)

	doc := &models.CampusDocument{
		MapSettings: models.MapSettings{CenterCoordinates: [2]float64{0, 0}, MapBoundsKm: 10},
		Buildings: map[string]models.Building{
			"Library": {Name: "Main Library", Coordinates: [2]float64{0, 0}},
			"Gym":     {Name: "Recreation Center", Coordinates: [2]float64{0, 0.002}},
		},
		Intersections: map[string][2]float64{"gate": {0, 0.001}},
		CampusPaths: []models.PathEntry{
			{Node1: "Library", Node2: "gate", Distance: ptr(100)},
			{Node1: "gate", Node2: "Gym", Distance: ptr(120)},
		},
	}

	logger := zap.NewNop()
	cache := services.NewInteriorCache(interiorStore, logger)
	nav := services.NewNavigator(doc, cache, logger)
	editor := services.NewEditor(doc, campusStore, interiorStore, nav, logger)
	sessions := NewSessionManager("secret", time.Hour)

	router := gin.New()
	NewNavigationHandler(nav, logger).RegisterRoutes(router)
	NewAdminHandler(editor, sessions, logger).RegisterRoutes(router)
	return router, sessions
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouteEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/route", "", gin.H{"start": "Library"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown building", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/route", "", gin.H{"start": "Library", "end": "Atlantis"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Atlantis")
	})

	t.Run("successful route", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/route", "", gin.H{"start": "Library", "end": "Gym"})
		require.Equal(t, http.StatusOK, w.Code)

		var route models.RouteResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &route))
		assert.True(t, route.Success)
		assert.Equal(t, []string{"Library", "gate", "Gym"}, route.Path)
		assert.Equal(t, 220.0, route.TotalDistance)
	})
}

func TestGraphInfoEndpoint(t *testing.T) {
	router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/graph-info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool             `json:"success"`
		GraphInfo models.GraphInfo `json:"graph_info"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.GraphInfo.TotalNodes)
	assert.True(t, resp.GraphInfo.IsConnected)
}

func TestAdminAuth(t *testing.T) {
	router, _ := newTestServer(t)

	t.Run("login requires the shared password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/admin/login", "", gin.H{"password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("mutations without a session are rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/admin/buildings", "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login token unlocks the admin API", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/admin/login", "", gin.H{"password": "secret"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		w = doJSON(t, router, http.MethodPost, "/api/admin/buildings", resp.Token, models.BuildingRequest{
			ID: "Chapel", Name: "Chapel", Coordinates: []float64{0, 0.0005},
		})
		assert.Equal(t, http.StatusOK, w.Code)

		// Expired after logout.
		w = doJSON(t, router, http.MethodPost, "/admin/logout", resp.Token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, router, http.MethodPost, "/api/admin/buildings", resp.Token, gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminMutationStatuses(t *testing.T) {
	router, sessions := newTestServer(t)
	token, ok := sessions.Login("secret")
	require.True(t, ok)

	t.Run("out of bounds building", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/admin/buildings", token, models.BuildingRequest{
			ID: "Far", Name: "Far", Coordinates: []float64{50, 50},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate path", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/admin/paths", token, models.PathRequest{
			Node1: "gate", Node2: "Library",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("delete unknown intersection", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/admin/intersections/nope", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("interior update round trip", func(t *testing.T) {
		doc := models.InteriorDocument{
			Floors: map[string]models.Floor{
				"ground": {
					Name:  "Ground Floor",
					Rooms: map[string]models.Room{"lobby": {Name: "Lobby", Type: "entrance"}},
				},
			},
		}
		w := doJSON(t, router, http.MethodPost, "/api/buildings/Library/interior", token, doc)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/buildings/Library/rooms", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Lobby")
	})
}
