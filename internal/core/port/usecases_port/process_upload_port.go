package usecases_port

import (
	"context"

	"aqar-service/internal/core/domain"
)

// ProcessUploadUseCasePort validates an uploaded file (MIME type, size
// ceiling) and produces the three resized variants. Validation failures
// happen before any file is written.
type ProcessUploadUseCasePort interface {
	Execute(ctx context.Context, in domain.UploadInput, maxSize int64) (*domain.UploadedImage, error)
}
