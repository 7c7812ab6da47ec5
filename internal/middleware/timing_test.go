package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestTiming_Success(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestTiming_SetsStartTime(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())

	var startTime time.Time
	router.GET("/test", func(c *gin.Context) {
		val, exists := c.Get("request_start_time")
		assert.True(t, exists)
		startTime, _ = val.(time.Time)
		c.Status(http.StatusNoContent)
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, startTime.IsZero())
}

func TestRequestTiming_DifferentStatusCodes(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())
	router.POST("/bad", func(c *gin.Context) { c.JSON(http.StatusBadRequest, gin.H{}) })
	router.POST("/fail", func(c *gin.Context) { c.JSON(http.StatusInternalServerError, gin.H{}) })

	tests := []struct {
		path   string
		status int
	}{
		{"/bad", http.StatusBadRequest},
		{"/fail", http.StatusInternalServerError},
		{"/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req, _ := http.NewRequest("POST", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
