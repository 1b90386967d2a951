package images_adapter

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"

	"github.com/disintegration/imaging"
)

// One display size plus two derived variants; every upload ends up as
// exactly these three JPEG files.
var variants = []struct {
	suffix string
	width  int
	height int
}{
	{suffix: "", width: 1200, height: 800},
	{suffix: "-thumb", width: 400, height: 300},
	{suffix: "-small", width: 150, height: 100},
}

const (
	jpegQuality  = 80
	publicPrefix = "/uploads/"
)

// Processor resizes uploaded images into the fixed variant set and serves
// them from a flat directory under the public uploads prefix.
type Processor struct {
	uploadsDir string
	randSuffix func() int
}

func NewProcessor(uploadsDir string) (*Processor, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Processor{
		uploadsDir: uploadsDir,
		randSuffix: func() int { return rand.Intn(1_000_000) },
	}, nil
}

// Process decodes the bytes, center-crops each variant to its aspect ratio
// and writes all three files. On any write failure the files already written
// for this upload are removed so a failed upload leaves no orphans.
func (p *Processor) Process(ctx context.Context, originalName string, data []byte) (*domain.UploadedImage, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ImageProcessor",
		"method":    "Process",
	})

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}

	baseName := fmt.Sprintf("%s-%d-%06d",
		slugify(originalName), time.Now().UnixMilli(), p.randSuffix())

	written := make([]string, 0, len(variants))
	for _, v := range variants {
		resized := imaging.Fill(src, v.width, v.height, imaging.Center, imaging.Lanczos)
		path := filepath.Join(p.uploadsDir, baseName+v.suffix+".jpg")

		if err := imaging.Save(resized, path, imaging.JPEGQuality(jpegQuality)); err != nil {
			for _, w := range written {
				os.Remove(w)
			}
			logger.Error("Failed to save image variant", err, port.Fields{"path": path})
			return nil, fmt.Errorf("failed to save image variant: %w", err)
		}
		written = append(written, path)
	}

	logger.Debug("Image processed.", port.Fields{"base_name": baseName})

	return &domain.UploadedImage{
		URL:          publicPrefix + baseName + ".jpg",
		ThumbURL:     publicPrefix + baseName + "-thumb.jpg",
		SmallURL:     publicPrefix + baseName + "-small.jpg",
		OriginalName: originalName,
		Size:         int64(len(data)),
	}, nil
}

// Cleanup removes the three variants belonging to the given public URL.
// Missing files are ignored so cleanup is idempotent.
func (p *Processor) Cleanup(baseURL string) error {
	name := strings.TrimPrefix(baseURL, publicPrefix)
	name = filepath.Base(name) // refuse path traversal
	name = strings.TrimSuffix(name, ".jpg")

	if name == "" || name == "." {
		return fmt.Errorf("invalid image url %q", baseURL)
	}

	for _, v := range variants {
		path := filepath.Join(p.uploadsDir, name+v.suffix+".jpg")
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// slugify reduces the original filename to a safe lowercase ascii stem.
func slugify(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(stem) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "image"
	}
	return slug
}
