// internal/handlers/internship_test.go
package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campuscell/placement-backend/internal/models"
)

func TestParseInternshipFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET",
		"/internships?skills=react,%20node&location=Pune&department=CSE&work_mode=Remote&status=active&min_stipend=10000&max_stipend=30000&search=backend", nil)

	filters := parseInternshipFilters(c)

	assert.Equal(t, []string{"react", "node"}, filters.Skills)
	assert.Equal(t, "Pune", filters.Location)
	assert.Equal(t, "CSE", filters.Department)
	assert.Equal(t, "Remote", filters.WorkMode)
	assert.Equal(t, models.InternshipStatusActive, filters.Status)
	assert.Equal(t, 10000, filters.MinStipend)
	assert.Equal(t, 30000, filters.MaxStipend)
	assert.Equal(t, "backend", filters.Search)
}

func TestParseInternshipFiltersDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/internships", nil)

	filters := parseInternshipFilters(c)

	assert.Empty(t, filters.Skills)
	assert.Empty(t, filters.Location)
	assert.Empty(t, filters.Status)
	assert.Zero(t, filters.MinStipend)
	assert.Zero(t, filters.MaxStipend)
}
