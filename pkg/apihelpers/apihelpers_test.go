package apihelpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/case-framework/contact-manager/pkg/apperrors"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextWithQuery(rawQuery string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/contacts?"+rawQuery, nil)
	return c
}

func TestParseListQueryFromCtx(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q, err := ParseListQueryFromCtx(contextWithQuery(""))
		require.NoError(t, err)
		assert.Equal(t, types.DefaultListQuery(), q)
		assert.False(t, q.Ascending())
	})

	t.Run("all parameters", func(t *testing.T) {
		q, err := ParseListQueryFromCtx(contextWithQuery("page=3&limit=25&sortBy=lastName&order=asc"))
		require.NoError(t, err)
		assert.Equal(t, types.ListQuery{Page: 3, Limit: 25, SortBy: "lastName", Order: "asc"}, q)
		assert.True(t, q.Ascending())
	})

	t.Run("non numeric page", func(t *testing.T) {
		_, err := ParseListQueryFromCtx(contextWithQuery("page=two"))
		var vErr *apperrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "page", vErr.Field)
	})

	t.Run("non numeric limit", func(t *testing.T) {
		_, err := ParseListQueryFromCtx(contextWithQuery("limit=1.5"))
		var vErr *apperrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, `"limit" must be a number`, vErr.Message)
	})
}

func TestWriteResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteResponse(c, http.StatusCreated, "created", gin.H{"k": "v"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"statusCode":201,"message":"created","data":{"k":"v"}}`, w.Body.String())
}

func TestAbortWithErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortWithErrorResponse(c, http.StatusNotFound, "Contact not found")

	assert.True(t, c.IsAborted())
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(404), body["statusCode"])
	assert.Equal(t, "Contact not found", body["message"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestAbortWithRouteError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortWithRouteError(c, http.StatusInternalServerError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal Server Error"}}`, w.Body.String())
}

func TestWriteRoutes(t *testing.T) {
	routes := gin.RoutesInfo{
		{Method: http.MethodPost, Path: "/api/contacts"},
		{Method: http.MethodGet, Path: "/api/healthcheck"},
		{Method: http.MethodGet, Path: "/api/contacts"},
	}
	var buf bytes.Buffer
	require.NoError(t, writeRoutes(&buf, routes))
	assert.Equal(t, "GET\t/api/contacts\nPOST\t/api/contacts\nGET\t/api/healthcheck\n", buf.String())
}

func TestLoadTLSConfigMissingFiles(t *testing.T) {
	_, err := LoadTLSConfig(CertificatePaths{
		ServerCertPath: "does-not-exist.crt",
		ServerKeyPath:  "does-not-exist.key",
		CACertPath:     "does-not-exist-ca.crt",
	})
	assert.Error(t, err)
}
