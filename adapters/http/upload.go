package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

const maxUploadBytes = 10 << 20

// formFile opens the multipart "file" field. The caller must invoke the
// returned close func.
func formFile(c *gin.Context) (io.Reader, func(), error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, nil, apperror.NewValidation(map[string][]string{"file": {"No file was submitted."}})
	}
	if header.Size > maxUploadBytes {
		return nil, nil, apperror.NewValidation(map[string][]string{"file": {"File exceeds the 10MB limit."}})
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, apperror.NewInvalidInput("cannot read uploaded file", err)
	}
	return f, func() { f.Close() }, nil
}
