package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func gatewayRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.clientVersionGateway())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestClientVersionGatewayRejectsMissingHeaders(t *testing.T) {
	s := &Server{}
	router := gatewayRouter(s)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), `"code":1006`, "wrong error code")
}

func TestClientVersionGatewayRejectsBadValues(t *testing.T) {
	s := &Server{}
	router := gatewayRouter(s)

	cases := []struct {
		clientType    string
		clientVersion string
	}{
		{"windows", "3"},
		{"ios", "0"},
		{"android", "-1"},
	}

	for _, c := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Client-Type", c.clientType)
		req.Header.Set("Client-Version", c.clientVersion)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code for %s/%s", c.clientType, c.clientVersion)
		assert.Contains(t, w.Body.String(), `"code":1006`, "wrong error code for %s/%s", c.clientType, c.clientVersion)
	}
}

func TestClientVersionGatewayRejectsOutdatedClient(t *testing.T) {
	viper.Set("clients.ios.minimum_client_version", 5)
	defer viper.Set("clients.ios.minimum_client_version", nil)

	s := &Server{}
	router := gatewayRouter(s)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Client-Type", "ios")
	req.Header.Set("Client-Version", "4")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotAcceptable, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), `"code":1007`, "wrong error code")
}

func TestClientVersionGatewayAcceptsCurrentClient(t *testing.T) {
	viper.Set("clients.ios.minimum_client_version", 5)
	defer viper.Set("clients.ios.minimum_client_version", nil)

	s := &Server{}
	router := gatewayRouter(s)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Client-Type", "ios")
	req.Header.Set("Client-Version", "5")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}
