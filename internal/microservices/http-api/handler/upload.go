package handler

import (
	"context"
	"mime/multipart"
	"net/http"

	"awardshub/internal/media"

	"github.com/gin-gonic/gin"
)

// ImageUploader stores an uploaded image and returns the URL to persist.
// *media.Uploader satisfies it.
type ImageUploader interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, prefix string) (string, error)
}

// receiveImage reads the "file" form field and uploads it under prefix.
// It writes the error response itself and reports whether to continue.
func receiveImage(ctx context.Context, c *gin.Context, up ImageUploader, prefix string) (string, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": media.ErrEmptyFile.Error()})
		return "", false
	}
	url, err := up.Upload(ctx, fh, prefix)
	if err != nil {
		respondError(c, err)
		return "", false
	}
	return url, true
}
