package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-minutes/errors"
)

// BucketInspector reports on the object storage used for remote staging
type BucketInspector interface {
	GetBucketInfo(ctx context.Context) (map[string]interface{}, error)
}

// Storage exposes the state of remote recording storage
type Storage struct {
	bucket BucketInspector
	logger *zap.Logger
}

// NewStorageHandler creates a new storage handler
func NewStorageHandler(bucket BucketInspector, logger *zap.Logger) *Storage {
	return &Storage{bucket: bucket, logger: logger}
}

// Status checks the bucket used to stage recordings
// @Summary      Storage status
// @Description  Checks the MinIO bucket recordings are staged in when remote staging is enabled
// @Tags         Storage
// @Produce      json
// @Success      200  {object}  common.SuccessResponse
// @Failure      500  {object}  common.ErrorResponse
// @Router       /storage [get]
func (h *Storage) Status(c echo.Context) error {
	info, err := h.bucket.GetBucketInfo(c.Request().Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to read bucket info", zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("bucket info", err))
	}
	return HandleSuccess(h.logger, c, info)
}
