package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" binding:"required,email"`
	Title string `json:"title" binding:"title"`
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	Init()
	Init()

	err := binding.Validator.ValidateStruct(&sample{Email: "nope", Title: "   "})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "is required and must be at most 255 characters", details["title"])
}

func TestToDetailsInvalidJSON(t *testing.T) {
	var v map[string]any
	err := json.Unmarshal([]byte(`{`), &v)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.Nil(t, ToDetails(nil))
}
