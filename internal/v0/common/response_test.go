package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAPIResponseGeneratesRequestID(t *testing.T) {
	resp := CreateAPIResponse("x", nil, "")
	assert.NotEmpty(t, resp.Metadata.RequestID)
	assert.Equal(t, "v0", resp.Metadata.Version)
	assert.Equal(t, []string{}, resp.Errors)
}

func TestFailureUsesContextRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(ContextKeyRequestID, "abc")

	Failure(c, http.StatusInternalServerError, "boom")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"boom"}, body.Errors)
	assert.Equal(t, "abc", body.Metadata.RequestID)
	assert.Nil(t, body.Data)
	assert.True(t, c.IsAborted())
}
