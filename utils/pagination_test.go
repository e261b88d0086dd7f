package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestNewPagination_Defaults(t *testing.T) {
	p := NewPagination(paginationContext(t, ""))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPaginationLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPagination_InvalidValuesFallBack(t *testing.T) {
	p := NewPagination(paginationContext(t, "page=abc&limit=-5"))

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPaginationLimit, p.Limit)
}

func TestNewPagination_CapsAtMaxLimit(t *testing.T) {
	p := NewPagination(paginationContext(t, "page=3&limit=5000"))

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxPaginationLimit, p.Limit)
	assert.Equal(t, 2*MaxPaginationLimit, p.Offset)
}

func TestPagination_SetTotal(t *testing.T) {
	p := NewPagination(paginationContext(t, "limit=10"))
	p.SetTotal(25)

	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.LastPage)
}
