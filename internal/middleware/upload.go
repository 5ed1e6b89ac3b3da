package middleware

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const MaxUploadSize = 5 << 20 // 5MB

// Hanya dokumen HR yang diterima
var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// FileUpload validates an optional multipart file field before the handler
// runs. A missing file is fine; a bad one is rejected naming the violated
// constraint. On success the *multipart.FileHeader is stored under
// "upload_" + field.
func FileUpload(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile(field)
		if err != nil {
			if err == http.ErrMissingFile || err == http.ErrNotMultipart {
				c.Next()
				return
			}
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid file upload", err.Error())
			c.Abort()
			return
		}

		if file.Size > MaxUploadSize {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File too large. Maximum size is 5MB.", nil)
			c.Abort()
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedUploadExts[ext] {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Only PDF, DOC, and DOCX files are allowed", nil)
			c.Abort()
			return
		}

		c.Set("upload_"+field, file)
		c.Next()
	}
}

// UploadedFile mengambil hasil FileUpload dari context (nil jika tidak ada file).
func UploadedFile(c *gin.Context, field string) *multipart.FileHeader {
	if v, ok := c.Get("upload_" + field); ok {
		if fh, ok := v.(*multipart.FileHeader); ok {
			return fh
		}
	}
	return nil
}
