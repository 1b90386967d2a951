package usecase

import (
	"context"
	"strings"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
)

// ProcessUploadUseCase validates an uploaded file and hands it to the image
// processor. Both checks run before anything touches the filesystem.
type ProcessUploadUseCase struct {
	processor port.ImageProcessorPort
}

func NewProcessUploadUseCase(processor port.ImageProcessorPort) *ProcessUploadUseCase {
	return &ProcessUploadUseCase{processor: processor}
}

func (uc *ProcessUploadUseCase) Execute(ctx context.Context, in domain.UploadInput, maxSize int64) (*domain.UploadedImage, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ProcessUploadUseCase",
		"method":    "Execute",
	})

	if !strings.HasPrefix(in.ContentType, "image/") {
		logger.Warn("Rejected non-image upload.", port.Fields{
			"content_type": in.ContentType,
			"file":         in.OriginalName,
		})
		return nil, domain.ErrInvalidImage
	}
	if in.Size > maxSize {
		logger.Warn("Rejected oversized upload.", port.Fields{
			"size":     in.Size,
			"max_size": maxSize,
			"file":     in.OriginalName,
		})
		return nil, domain.ErrImageTooLarge
	}

	return uc.processor.Process(ctx, in.OriginalName, in.Data)
}
