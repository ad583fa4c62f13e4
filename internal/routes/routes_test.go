package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaqqye/navodaya_web/internal/config"
	"github.com/zaqqye/navodaya_web/internal/database"
	"github.com/zaqqye/navodaya_web/internal/middleware"
	"github.com/zaqqye/navodaya_web/internal/models"
	"github.com/zaqqye/navodaya_web/internal/repository"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:             testSecret,
		AccessTokenTTLMinutes: 5,
		AdminUsername:         "admin",
		AdminPassword:         "admin",
	}
	store := repository.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, database.SeedAdmin(ctx, store, cfg))
	require.NoError(t, database.SeedContent(ctx, store))

	r := gin.New()
	Register(r, store, cfg)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
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
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	rr := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "admin"}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func TestPublicEndpoints(t *testing.T) {
	r := setupRouter(t)

	t.Run("root", func(t *testing.T) {
		rr := doJSON(t, r, http.MethodGet, "/api/", nil, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Navodaya")
	})

	t.Run("company", func(t *testing.T) {
		rr := doJSON(t, r, http.MethodGet, "/api/company", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var c models.CompanyInfo
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
		assert.Equal(t, "PT Navodaya Multi Solusi", c.Name)
		assert.NotEmpty(t, c.MapLink)
	})

	t.Run("list and detail agree", func(t *testing.T) {
		rr := doJSON(t, r, http.MethodGet, "/api/services", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var list []models.Service
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
		require.Len(t, list, 3)

		rr = doJSON(t, r, http.MethodGet, "/api/services/"+list[1].ID, nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var one models.Service
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &one))
		assert.Equal(t, list[1], one)
	})

	t.Run("unknown ids", func(t *testing.T) {
		rr := doJSON(t, r, http.MethodGet, "/api/services/404", nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Service not found")

		rr = doJSON(t, r, http.MethodGet, "/api/projects/404", nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Project not found")
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/admin/services", nil)
		req.Header.Set("Origin", "https://navodaya.example")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://navodaya.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLogin(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body map[string]string
		code int
	}{
		{"wrong password", map[string]string{"username": "admin", "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"username": "ghost", "password": "admin"}, http.StatusUnauthorized},
		{"missing password", map[string]string{"username": "admin"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, r, http.MethodPost, "/api/admin/login", tt.body, "")
			assert.Equal(t, tt.code, rr.Code)
			assert.NotContains(t, rr.Body.String(), "access_token")
		})
	}

	t.Run("valid credentials", func(t *testing.T) {
		login(t, r)
	})
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := setupRouter(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Username: "admin",
		Role:     middleware.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredStr, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		Username: "admin",
		Role:     middleware.RoleAdmin,
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{"none": "", "expired": expiredStr, "forged": forged} {
		t.Run(name, func(t *testing.T) {
			rr := doJSON(t, r, http.MethodGet, "/api/admin/messages", nil, token)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestServiceCRUD(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	rr := doJSON(t, r, http.MethodPost, "/api/admin/services", map[string]any{
		"category":    "Security",
		"icon":        "shield",
		"description": "d",
		"features":    []string{"a"},
	}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid icon")

	rr = doJSON(t, r, http.MethodPost, "/api/admin/services", map[string]any{
		"category":    "Security",
		"icon":        "network",
		"description": "Managed firewalls",
		"features":    []string{"Firewalls", "VPN"},
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created models.Service
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rr = doJSON(t, r, http.MethodPut, "/api/admin/services/"+created.ID, map[string]any{}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No data to update")

	rr = doJSON(t, r, http.MethodPut, "/api/admin/services/"+created.ID, map[string]any{"category": "Cyber Security"}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Service
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Cyber Security", updated.Category)
	assert.Equal(t, "Managed firewalls", updated.Description)
	assert.Equal(t, []string{"Firewalls", "VPN"}, []string(updated.Features))

	rr = doJSON(t, r, http.MethodPut, "/api/admin/services/missing", map[string]any{"category": "x"}, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, r, http.MethodDelete, "/api/admin/services/"+created.ID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = doJSON(t, r, http.MethodDelete, "/api/admin/services/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProjectCRUD(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	rr := doJSON(t, r, http.MethodPost, "/api/admin/projects", map[string]any{
		"title":       "Campus Wi-Fi",
		"category":    "Technology Infrastructure",
		"description": "Wireless rollout",
		"year":        2025,
		"image":       "https://img.example/wifi.jpg",
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "2025", created.Year)
	assert.Nil(t, created.Technologies)

	rr = doJSON(t, r, http.MethodPut, "/api/admin/projects/"+created.ID, map[string]any{
		"technologies": []string{"Ubiquiti"},
	}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Campus Wi-Fi", updated.Title)
	assert.Equal(t, []string{"Ubiquiti"}, []string(updated.Technologies))

	rr = doJSON(t, r, http.MethodDelete, "/api/admin/projects/"+created.ID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCompanyUpdate(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	rr := doJSON(t, r, http.MethodPut, "/api/admin/company", map[string]any{}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, r, http.MethodPut, "/api/admin/company", map[string]any{
		"phone":       "0800",
		"coordinates": map[string]float64{"lat": 1.5, "lng": 2.5},
	}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/api/company", nil, "")
	var c models.CompanyInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &c))
	assert.Equal(t, "0800", c.Phone)
	assert.Equal(t, models.Coordinates{Lat: 1.5, Lng: 2.5}, c.Coordinates)
	assert.Equal(t, "PT Navodaya Multi Solusi", c.Name)
}

func TestContactMessages(t *testing.T) {
	r := setupRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{"name": "Jane", "email": "not-an-email", "message": "Hello"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{"name": "Jane", "email": "jane@x.com", "message": "Hello"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	var first models.ContactMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	rr = doJSON(t, r, http.MethodPost, "/api/contact", map[string]string{"name": "Budi", "email": "budi@x.com", "message": "Halo"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	token := login(t, r)
	rr = doJSON(t, r, http.MethodGet, "/api/admin/messages", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []models.ContactMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Budi", list[0].Name)

	rr = doJSON(t, r, http.MethodDelete, "/api/admin/messages/"+first.ID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = doJSON(t, r, http.MethodDelete, "/api/admin/messages/"+first.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Message not found")
}
