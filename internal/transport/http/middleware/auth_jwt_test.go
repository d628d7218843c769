package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"go-portfolio-api/internal/core/auth"
	"go-portfolio-api/internal/domain"
	mdw "go-portfolio-api/internal/transport/http/middleware"
)

var testJWTer = &auth.JWTer{Secret: []byte("test-secret"), Issuer: "portfolio-api", TTL: time.Hour}

func verifyEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mdw.Verify(testJWTer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": auth.Email(mdw.Claims(c))})
	})
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyMissingHeader(t *testing.T) {
	r := verifyEngine()

	w := doGet(r, "/probe", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"forbidden access"}`, w.Body.String())
}

func TestVerifyNotBearer(t *testing.T) {
	r := verifyEngine()

	w := doGet(r, "/probe", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyGarbageToken(t *testing.T) {
	r := verifyEngine()

	w := doGet(r, "/probe", "Bearer not.a.jwt")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyExpiredToken(t *testing.T) {
	r := verifyEngine()
	expired := &auth.JWTer{Secret: testJWTer.Secret, Issuer: testJWTer.Issuer, TTL: -5 * time.Minute}
	token, err := expired.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	w := doGet(r, "/probe", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyValidTokenInjectsClaims(t *testing.T) {
	r := verifyEngine()
	token, err := testJWTer.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	w := doGet(r, "/probe", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"a@x.com"}`, w.Body.String())
}

// roleRepo 只实现 admin 网关用到的 FindByEmail，其余操作不会被触达。
type roleRepo struct {
	users map[string]domain.Role
}

func (r *roleRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	role, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &domain.User{Email: email, Role: role}, nil
}

func (r *roleRepo) Create(context.Context, map[string]any) (*mongo.InsertOneResult, error) {
	panic("not used")
}
func (r *roleRepo) List(context.Context) ([]bson.M, error) { panic("not used") }
func (r *roleRepo) PromoteAdmin(context.Context, string) (*mongo.UpdateResult, error) {
	panic("not used")
}
func (r *roleRepo) Delete(context.Context, string) (*mongo.DeleteResult, error) {
	panic("not used")
}

func adminEngine(users domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mdw.Verify(testJWTer), mdw.RequireAdmin(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": 1})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	repo := &roleRepo{users: map[string]domain.Role{
		"admin@x.com": domain.RoleAdmin,
		"plain@x.com": domain.RoleNone,
	}}
	r := adminEngine(repo)

	bearer := func(email string) string {
		token, err := testJWTer.Issue(map[string]any{"email": email})
		require.NoError(t, err)
		return "Bearer " + token
	}

	t.Run("unknown user", func(t *testing.T) {
		w := doGet(r, "/probe", bearer("ghost@x.com"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("non-admin role", func(t *testing.T) {
		w := doGet(r, "/probe", bearer("plain@x.com"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		w := doGet(r, "/probe", bearer("admin@x.com"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("claims without email", func(t *testing.T) {
		token, err := testJWTer.Issue(map[string]any{"sub": "nobody"})
		require.NoError(t, err)
		w := doGet(r, "/probe", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
