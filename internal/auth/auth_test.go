package auth

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teampro-backend/internal/database/models"
	apperrors "teampro-backend/internal/errors"
	"teampro-backend/internal/mocks"
	"teampro-backend/internal/service"
	"teampro-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:  "test-signing-key",
		Expiration: time.Hour,
		Issuer:     "teampro-backend",
	}
}

func testActor() service.ActorContext {
	return service.ActorContext{
		Role:       models.RoleStudent,
		ID:         uuid.New(),
		Department: "CSE",
		Name:       "Asha Menon",
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""
		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non-positive expiration", func(t *testing.T) {
		config := testConfig()
		config.Expiration = 0
		assert.Error(t, config.ValidateConfig())
	})

	t.Run("issuer defaults", func(t *testing.T) {
		config := testConfig()
		config.Issuer = ""
		require.NoError(t, config.ValidateConfig())
		assert.Equal(t, "teampro-backend", config.Issuer)
	})
}

func TestJWTRoundTrip(t *testing.T) {
	svc, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	actor := testActor()
	token, err := svc.GenerateJWT(actor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, actor.ID.String(), claims.Subject)

	got, err := claims.Actor()
	require.NoError(t, err)
	assert.Equal(t, actor, got)
}

func TestJWTRejections(t *testing.T) {
	svc, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)
	token, err := svc.GenerateJWT(testActor())
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		expired, err := NewAuthService(testConfig(), nil)
		require.NoError(t, err)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = expired.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = "another-key"
		other, err := NewAuthService(config, nil)
		require.NoError(t, err)
		_, err = other.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := &AuthClaims{
			Role:    "Guest",
			ActorID: uuid.NewString(),
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "teampro-backend",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
		require.NoError(t, err)
		_, err = svc.ValidateJWT(forged)
		assert.Error(t, err)
	})

	t.Run("unsigned", func(t *testing.T) {
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{Role: models.RoleAdmin}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateJWT(none)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	directory := mocks.NewMockDirectoryServiceInterface(ctrl)
	svc, err := NewAuthService(testConfig(), directory)
	require.NoError(t, err)

	actor := testActor()
	req := &service.LoginRequest{Role: models.RoleStudent, Email: "asha@college.edu", Password: "s3cret-pass"}

	directory.EXPECT().Authenticate(gomock.Any(), req).Return(&actor, nil)
	res, err := svc.Login(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, actor, res.Actor)

	directory.EXPECT().Authenticate(gomock.Any(), req).Return(nil, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)
	mw := NewAuthMiddleware(svc)

	router := gin.New()
	router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		actor, ok := GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, actor)
	})
	router.GET("/admin", mw.RequireAuth(), mw.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	actor := testActor()
	token, err := svc.GenerateJWT(actor)
	require.NoError(t, err)

	t.Run("valid token sets actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got service.ActorContext
		testutils.ParseJSONResponse(t, w, &got)
		assert.Equal(t, actor, got)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("role not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	directory := mocks.NewMockDirectoryServiceInterface(ctrl)
	svc, err := NewAuthService(testConfig(), directory)
	require.NoError(t, err)
	handler := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/api/auth/login", handler.Login)
	router.POST("/api/auth/validate", handler.ValidateToken)

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("login issues token", func(t *testing.T) {
		actor := testActor()
		directory.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(&actor, nil)

		w := login(`{"role":"Student","email":"asha@college.edu","password":"s3cret-pass"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var res LoginResponse
		testutils.ParseJSONResponse(t, w, &res)
		assert.NotEmpty(t, res.AccessToken)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer "+res.AccessToken)
		v := httptest.NewRecorder()
		router.ServeHTTP(v, req)
		assert.Equal(t, http.StatusOK, v.Code)
		assert.Contains(t, v.Body.String(), `"valid":true`)
	})

	t.Run("bad credentials are 401", func(t *testing.T) {
		directory.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

		w := login(`{"role":"Student","email":"asha@college.edu","password":"nope-nope"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("validation errors are 400", func(t *testing.T) {
		directory.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewValidationError("email", "must be a valid email"))

		w := login(`{"role":"Student","email":"nope","password":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		w := login(`{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validate without token", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
