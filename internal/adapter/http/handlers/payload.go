package handlers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindJSON decodes the request body into req and also returns the raw field
// map, so validation can tell absent fields from explicit nulls and spot
// unknown keys.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}

	return raw, nil
}
