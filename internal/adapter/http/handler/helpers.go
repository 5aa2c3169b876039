package handler

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
)

// ReadInput returns the text to classify from the request body.
// A JSON string literal sent as application/json is decoded; any other body,
// including malformed JSON, is used verbatim. A missing body yields "".
func ReadInput(c *gin.Context) (string, error) {
	if c.Request.Body == nil {
		return "", nil
	}

	raw, err := c.GetRawData()
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}

	if c.ContentType() == gin.MIMEJSON {
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			return text, nil
		}
	}

	return string(raw), nil
}
