package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"xgrowth-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{byID: map[uuid.UUID]*models.User{}, byEmail: map[string]*models.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) GetByID(id uuid.UUID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeUsers) GetByEmail(email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func testUser() *models.User {
	companyID, orgID := uuid.New(), uuid.New()
	return &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "jane.doe@acme.com",
		Role:           models.RoleStandard,
		CompanyID:      &companyID,
		OrganizationID: &orgID,
	}
}

func newTestService(t *testing.T) *AuthService {
	svc, err := NewAuthService(NewAuthConfig("test-signing-key", "", 0))
	require.NoError(t, err)
	return svc
}

func TestAuthConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config := NewAuthConfig("secret", "", 0)
		assert.Equal(t, "xgrowth-backend", config.Issuer)
		assert.Equal(t, time.Hour, config.TokenTTL)
		assert.NoError(t, config.ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := NewAuthConfig("", "issuer", 5).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("service rejects invalid config", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{JWTSecret: "x"})
		assert.Error(t, err)
	})
}

func TestJWTOperations(t *testing.T) {
	svc := newTestService(t)
	user := testUser()

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := svc.ValidateJWT(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "standard", claims.Role)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(NewAuthConfig("another-key", "", 0))
		require.NoError(t, err)
		_, err = other.ValidateJWT(token.AccessToken)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewAuthService(NewAuthConfig("test-signing-key", "someone-else", 0))
		require.NoError(t, err)
		_, err = other.ValidateJWT(token.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})
}

func TestJWTExpiration(t *testing.T) {
	svc := newTestService(t)
	claims := &AuthClaims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    "xgrowth-backend",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = svc.ValidateJWT(signed)
	assert.Error(t, err)
}

func TestPrincipal(t *testing.T) {
	user := testUser()
	p := PrincipalFromUser(user)
	assert.Equal(t, user.ID, p.UserID)
	assert.Equal(t, *user.CompanyID, p.CompanyID)
	assert.True(t, p.HasOrganization())
	assert.False(t, p.IsAdmin())

	orphan := PrincipalFromUser(&models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleAdmin})
	assert.Equal(t, uuid.Nil, orphan.CompanyID)
	assert.False(t, orphan.HasOrganization())
	assert.True(t, orphan.IsAdmin())
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	user := testUser()
	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	router := gin.New()
	router.Use(NewAuthMiddleware(svc, newFakeUsers(user)).RequireAuth())
	router.GET("/me", func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, p)
	})

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token", func(t *testing.T) {
		w := do("Bearer " + token.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)
		var p Principal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, user.ID, p.UserID)
		assert.Equal(t, *user.OrganizationID, p.OrganizationID)
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("Basic abc").Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		stranger, err := svc.GenerateJWT(testUser())
		require.NoError(t, err)
		w := do("Bearer " + stranger.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(t)
	user := testUser()
	handler := NewAuthHandler(svc, newFakeUsers(user))

	router := gin.New()
	router.POST("/token", handler.IssueToken)
	router.POST("/validate", handler.ValidateToken)

	t.Run("issue token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(`{"email":"jane.doe@acme.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var token TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))

		req = httptest.NewRequest(http.MethodPost, "/validate", nil)
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp AuthValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Valid)
		assert.Equal(t, user.Email, resp.Claims.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(`{"email":"nobody@acme.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validate without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/validate", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
