package port

import (
	"context"

	"aqar-service/internal/core/domain"
)

// ImageProcessorPort turns uploaded image bytes into the three public
// variants and removes them again on cleanup.
type ImageProcessorPort interface {
	// Process decodes the bytes, writes the display/thumb/small variants
	// and returns their public URLs. Nothing is written when decoding
	// fails, and a partial write is rolled back.
	Process(ctx context.Context, originalName string, data []byte) (*domain.UploadedImage, error)
	// Cleanup removes all three variants for the given base URL. Missing
	// files are not an error.
	Cleanup(baseURL string) error
}
