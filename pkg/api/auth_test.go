package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(token string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", bearerAuth(token), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestBearerAuthValidToken(t *testing.T) {
	r := authTestRouter("sekrit")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerAuthRejects(t *testing.T) {
	r := authTestRouter("sekrit")
	for name, header := range map[string]string{
		"missing header": "",
		"wrong token":    "Bearer nope",
		"no scheme":      "sekrit",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestBearerAuthDisabledWithEmptyToken(t *testing.T) {
	r := authTestRouter("")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExtractAuthorPriority(t *testing.T) {
	makeCtx := func(headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range headers {
			c.Request.Header.Set(k, v)
		}
		return c
	}

	assert.Equal(t, "alice", extractAuthor(makeCtx(map[string]string{
		"X-Forwarded-User":  "alice",
		"X-Forwarded-Email": "alice@example.com",
		"X-Remote-User":     "a",
	})))
	assert.Equal(t, "alice@example.com", extractAuthor(makeCtx(map[string]string{
		"X-Forwarded-Email": "alice@example.com",
		"X-Remote-User":     "a",
	})))
	assert.Equal(t, "a", extractAuthor(makeCtx(map[string]string{
		"X-Remote-User": "a",
	})))
	assert.Equal(t, "api-client", extractAuthor(makeCtx(nil)))
}
