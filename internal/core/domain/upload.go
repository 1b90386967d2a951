package domain

// UploadInput is a single file taken from a multipart request, already read
// into memory.
type UploadInput struct {
	OriginalName string
	ContentType  string
	Size         int64
	Data         []byte
}

// UploadedImage describes the three resized variants produced for one
// uploaded file. The URL suffixes are "", "-thumb" and "-small".
type UploadedImage struct {
	URL          string
	ThumbURL     string
	SmallURL     string
	OriginalName string
	Size         int64
}
