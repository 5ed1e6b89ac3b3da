package middleware_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func runUpload(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	r := gin.New()
	handlerReached := false
	r.POST("/upload", middleware.FileUpload("resume"), func(c *gin.Context) {
		handlerReached = true
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(w, req)
	return w, handlerReached
}

func TestFileUpload(t *testing.T) {
	t.Run("accepts pdf", func(t *testing.T) {
		w, reached := runUpload(t, multipartRequest(t, "resume", "cv.pdf", []byte("pdf")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
	})

	t.Run("missing file passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		w, reached := runUpload(t, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
	})

	t.Run("rejects disallowed extension", func(t *testing.T) {
		w, reached := runUpload(t, multipartRequest(t, "resume", "cv.exe", []byte("bin")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, reached)
		assert.Contains(t, w.Body.String(), "PDF, DOC, and DOCX")
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		big := make([]byte, middleware.MaxUploadSize+1)
		w, reached := runUpload(t, multipartRequest(t, "resume", "cv.pdf", big))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, reached)
		assert.Contains(t, w.Body.String(), "5MB")
	})
}
