package usecase

import (
	"context"
	"testing"

	"aqar-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	called bool
}

func (f *fakeProcessor) Process(ctx context.Context, originalName string, data []byte) (*domain.UploadedImage, error) {
	f.called = true
	return &domain.UploadedImage{
		URL:          "/uploads/fake.jpg",
		ThumbURL:     "/uploads/fake-thumb.jpg",
		SmallURL:     "/uploads/fake-small.jpg",
		OriginalName: originalName,
		Size:         int64(len(data)),
	}, nil
}

func (f *fakeProcessor) Cleanup(baseURL string) error { return nil }

func TestProcessUploadRejectsNonImageMIME(t *testing.T) {
	processor := &fakeProcessor{}
	uc := NewProcessUploadUseCase(processor)

	_, err := uc.Execute(context.Background(), domain.UploadInput{
		OriginalName: "report.pdf",
		ContentType:  "application/pdf",
		Size:         100,
		Data:         []byte("pdf"),
	}, 1<<20)

	assert.ErrorIs(t, err, domain.ErrInvalidImage)
	assert.False(t, processor.called)
}

func TestProcessUploadRejectsOversizedFile(t *testing.T) {
	processor := &fakeProcessor{}
	uc := NewProcessUploadUseCase(processor)

	_, err := uc.Execute(context.Background(), domain.UploadInput{
		OriginalName: "huge.jpg",
		ContentType:  "image/jpeg",
		Size:         2048,
		Data:         make([]byte, 2048),
	}, 1024)

	assert.ErrorIs(t, err, domain.ErrImageTooLarge)
	assert.False(t, processor.called)
}

func TestProcessUploadForwardsValidFile(t *testing.T) {
	processor := &fakeProcessor{}
	uc := NewProcessUploadUseCase(processor)

	result, err := uc.Execute(context.Background(), domain.UploadInput{
		OriginalName: "photo.jpg",
		ContentType:  "image/jpeg",
		Size:         512,
		Data:         make([]byte, 512),
	}, 1024)

	require.NoError(t, err)
	assert.True(t, processor.called)
	assert.Equal(t, "photo.jpg", result.OriginalName)
}
