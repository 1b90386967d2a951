package images_adapter

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aqar-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImageBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessWritesThreeVariants(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProcessor(dir)
	require.NoError(t, err)

	result, err := p.Process(context.Background(), "Living Room.png", testImageBytes(t, 1600, 1200))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "/uploads/living-room-"))
	assert.True(t, strings.HasSuffix(result.URL, ".jpg"))
	assert.True(t, strings.HasSuffix(result.ThumbURL, "-thumb.jpg"))
	assert.True(t, strings.HasSuffix(result.SmallURL, "-small.jpg"))
	assert.Equal(t, "Living Room.png", result.OriginalName)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestProcessRejectsNonImageData(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProcessor(dir)
	require.NoError(t, err)

	_, err = p.Process(context.Background(), "notes.txt", []byte("definitely not an image"))
	assert.ErrorIs(t, err, domain.ErrInvalidImage)

	// Nothing may be written for a rejected upload.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCleanupRemovesAllVariants(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProcessor(dir)
	require.NoError(t, err)

	result, err := p.Process(context.Background(), "photo.png", testImageBytes(t, 1280, 960))
	require.NoError(t, err)

	require.NoError(t, p.Cleanup(result.URL))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Cleaning up again is not an error.
	assert.NoError(t, p.Cleanup(result.URL))
}

func TestCleanupRefusesPathTraversal(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProcessor(dir)
	require.NoError(t, err)

	victim := filepath.Join(dir, "..", "victim.jpg")
	require.NoError(t, os.WriteFile(victim, []byte("data"), 0o644))
	t.Cleanup(func() { os.Remove(victim) })

	// The traversal is stripped down to the base name; the file outside the
	// uploads dir survives.
	_ = p.Cleanup("/uploads/../victim")
	_, err = os.Stat(victim)
	assert.NoError(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "living-room", slugify("Living Room.png"))
	assert.Equal(t, "img-01", slugify("IMG_01.JPG"))
	assert.Equal(t, "image", slugify("صورة.jpg")) // non-ascii collapses to the fallback
	assert.Equal(t, "image", slugify("...."))
}
