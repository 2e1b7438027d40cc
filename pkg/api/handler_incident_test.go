package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryCtx(rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c, w
}

func TestIntQuery(t *testing.T) {
	c, _ := queryCtx("limit=25")
	v, ok := intQuery(c, "limit", 50)
	assert.True(t, ok)
	assert.Equal(t, 25, v)

	c, _ = queryCtx("")
	v, ok = intQuery(c, "limit", 50)
	assert.True(t, ok)
	assert.Equal(t, 50, v, "absent parameter takes the default")

	c, w := queryCtx("limit=banana")
	_, ok = intQuery(c, "limit", 50)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = queryCtx("limit=-3")
	_, ok = intQuery(c, "limit", 50)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInt64Query(t *testing.T) {
	c, _ := queryCtx("since=9007199254740993")
	v, ok := int64Query(c, "since", 0)
	assert.True(t, ok)
	assert.Equal(t, int64(9007199254740993), v)

	c, w := queryCtx("since=later")
	_, ok = int64Query(c, "since", 0)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimeQuery(t *testing.T) {
	c, _ := queryCtx("created_after=2026-08-01T12:00:00Z")
	got, ok := timeQuery(c, "created_after")
	require.True(t, ok)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), got.UTC())

	c, _ = queryCtx("")
	got, ok = timeQuery(c, "created_after")
	assert.True(t, ok)
	assert.Nil(t, got)

	c, w := queryCtx("created_after=yesterday")
	_, ok = timeQuery(c, "created_after")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
