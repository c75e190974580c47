package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"marketplace/internal/infrastructure/storage"
	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/utils"
)

type fileUploader interface {
	Save(ctx context.Context, fh *multipart.FileHeader, kind storage.Kind) (string, error)
}

// bindMultipartData binds a multipart request whose fields may arrive either as
// a JSON document in the "data" part or as individual form fields.
func bindMultipartData(c *gin.Context, dst interface{}) error {
	if raw := c.PostForm("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return errors.NewBadRequestError("Invalid JSON in 'data' field")
		}
		if err := binding.Validator.ValidateStruct(dst); err != nil {
			return utils.BindingError(err)
		}
		return nil
	}
	if err := c.ShouldBind(dst); err != nil {
		return utils.BindingError(err)
	}
	return nil
}

// optionalUpload stores the "file" part when one was sent and returns its public URL.
func optionalUpload(c *gin.Context, uploader fileUploader, kind storage.Kind) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) || stderrors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", errors.NewBadRequestError("Invalid file upload", err.Error())
	}
	return uploader.Save(c.Request.Context(), fh, kind)
}
