package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Runway_MCP/internal/config"

	"github.com/gin-gonic/gin"
)

func TestRouter_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mcpStub := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router := SetupRouter(config.DefaultConfig(), mcpStub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("Expected body to contain 'ok', got %s", w.Body.String())
	}
}

func TestRouter_Version(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := SetupRouter(config.DefaultConfig(), http.NotFoundHandler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "runway-mcp-server") {
		t.Errorf("Expected body to contain server name, got %s", w.Body.String())
	}
}

func TestRouter_MCPEndpointIsMounted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var called bool
	mcpStub := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	router := SetupRouter(config.DefaultConfig(), mcpStub)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{}")))

	if !called {
		t.Error("Expected the MCP handler to be invoked for POST /mcp")
	}
}
