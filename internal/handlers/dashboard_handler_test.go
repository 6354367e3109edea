package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubCounter struct {
	count int64
	err   error
}

func (s stubCounter) Count() (int64, error) {
	return s.count, s.err
}

func TestDashboardDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(counter BillCounter) *gin.Engine {
		r := gin.New()
		r.GET("/dashboard/details", NewDashboardHandler(counter).GetDetails)
		return r
	}

	t.Run("returns_bill_count", func(t *testing.T) {
		w := doJSON(newRouter(stubCounter{count: 7}), http.MethodGet, "/dashboard/details", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"bill":7}`, w.Body.String())
	})

	t.Run("count_failure", func(t *testing.T) {
		w := doJSON(newRouter(stubCounter{err: assert.AnError}), http.MethodGet, "/dashboard/details", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
