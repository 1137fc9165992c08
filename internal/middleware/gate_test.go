package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"seikyu/internal/config"
	"seikyu/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func gatedRouter(cfg *config.GateConfig) *gin.Engine {
	r := gin.New()
	r.GET("/export/invoices.csv", middleware.BasicGate(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestBasicGate_DisabledWhenNoCredentials(t *testing.T) {
	r := gatedRouter(&config.GateConfig{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/export/invoices.csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBasicGate_RejectsMissingCredentials(t *testing.T) {
	r := gatedRouter(&config.GateConfig{User: "admin", Password: "secret"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/export/invoices.csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Basic realm="Secure Area"`, w.Header().Get("WWW-Authenticate"))
}

func TestBasicGate_RejectsWrongPassword(t *testing.T) {
	r := gatedRouter(&config.GateConfig{User: "admin", Password: "secret"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/export/invoices.csv", nil)
	req.SetBasicAuth("admin", "wrong")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBasicGate_AcceptsValidCredentials(t *testing.T) {
	r := gatedRouter(&config.GateConfig{User: "admin", Password: "secret"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/export/invoices.csv", nil)
	req.SetBasicAuth("admin", "secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBasicGate_HalfConfiguredStaysDisabled(t *testing.T) {
	r := gatedRouter(&config.GateConfig{User: "admin"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/export/invoices.csv", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
