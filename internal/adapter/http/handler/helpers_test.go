package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		contentType string
		expected    string
	}{
		{name: "plain text", body: []byte("hello"), contentType: "text/plain", expected: "hello"},
		{name: "no content type", body: []byte("hello"), expected: "hello"},
		{name: "json string literal", body: []byte(`"hello"`), contentType: "application/json", expected: "hello"},
		{name: "json string with charset", body: []byte(`"héllo"`), contentType: "application/json; charset=utf-8", expected: "héllo"},
		{name: "json null is empty", body: []byte(`null`), contentType: "application/json", expected: ""},
		{name: "json object kept verbatim", body: []byte(`{"text":"hi"}`), contentType: "application/json", expected: `{"text":"hi"}`},
		{name: "malformed json kept verbatim", body: []byte(`"unterminated`), contentType: "application/json", expected: `"unterminated`},
		{name: "quoted text without json type kept verbatim", body: []byte(`"hello"`), contentType: "text/plain", expected: `"hello"`},
		{name: "empty body", body: []byte{}, contentType: "text/plain", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/inference/run", bytes.NewReader(tt.body))
			if tt.contentType != "" {
				c.Request.Header.Set("Content-Type", tt.contentType)
			}

			input, err := ReadInput(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, input)
		})
	}
}

func TestReadInput_NilBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = &http.Request{Method: http.MethodPost, Header: http.Header{}}

	input, err := ReadInput(c)

	assert.NoError(t, err)
	assert.Equal(t, "", input)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestReadInput_ReadError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/inference/run", failingReader{})

	input, err := ReadInput(c)

	assert.Error(t, err)
	assert.Equal(t, "", input)
}
