package rest

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
	"aqar-service/internal/core/port/usecases_port"
)

const (
	// Single upload ceiling; multi-file uploads use the lower per-file one.
	maxSingleUploadSize  = 10 << 20 // 10 MiB
	maxPerFileUploadSize = 5 << 20  // 5 MiB
	maxFilesPerRequest   = 10
)

// UploadHandler covers admin image upload and cleanup.
type UploadHandler struct {
	uploadUC  usecases_port.ProcessUploadUseCasePort
	processor port.ImageProcessorPort
}

func NewUploadHandler(uploadUC usecases_port.ProcessUploadUseCasePort, processor port.ImageProcessorPort) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC, processor: processor}
}

// Upload handles POST /api/v1/admin/upload with a single "image" form file.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Upload"})

	r.Body = http.MaxBytesReader(w, r.Body, maxSingleUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxSingleUploadSize); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "form file \"image\" is required")
		return
	}
	defer file.Close()

	input, err := readUploadInput(file, header)
	if err != nil {
		logger.Error("Failed to read uploaded file", err, nil)
		WriteJSONError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	image, err := h.uploadUC.Execute(r.Context(), *input, maxSingleUploadSize)
	if err != nil {
		respondUploadError(w, logger, err, header.Filename)
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewUploadedImageResponse(image))
}

// UploadMultiple handles POST /api/v1/admin/upload/multiple with an
// "images" form field. The batch is all-or-nothing: one bad file fails the
// request and the already-processed files are cleaned up.
func (h *UploadHandler) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UploadMultiple"})

	r.Body = http.MaxBytesReader(w, r.Body, maxFilesPerRequest*maxPerFileUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxPerFileUploadSize); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "form files \"images\" are required")
		return
	}
	if len(headers) > maxFilesPerRequest {
		WriteJSONError(w, http.StatusBadRequest, "too many files in one request")
		return
	}

	response := make([]UploadedImageResponse, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			h.rollback(logger, response)
			logger.Error("Failed to open uploaded file", err, port.Fields{"file": header.Filename})
			WriteJSONError(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}

		input, err := readUploadInput(file, header)
		file.Close()
		if err != nil {
			h.rollback(logger, response)
			logger.Error("Failed to read uploaded file", err, port.Fields{"file": header.Filename})
			WriteJSONError(w, http.StatusBadRequest, "failed to read uploaded file")
			return
		}

		image, err := h.uploadUC.Execute(r.Context(), *input, maxPerFileUploadSize)
		if err != nil {
			h.rollback(logger, response)
			respondUploadError(w, logger, err, header.Filename)
			return
		}

		response = append(response, NewUploadedImageResponse(image))
	}

	RespondWithJSON(w, http.StatusCreated, response)
}

// Delete handles DELETE /api/v1/admin/upload with a JSON body naming the
// image URL to remove.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteUpload"})

	body, err := readValidatedBody(r, "UploadDelete")
	if err != nil {
		respondBodyError(w, err)
		return
	}

	var req UploadDeleteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.URL == domain.PlaceholderImage {
		WriteJSONError(w, http.StatusBadRequest, "the placeholder image cannot be deleted")
		return
	}

	if err := h.processor.Cleanup(req.URL); err != nil {
		logger.Error("Failed to delete image files", err, port.Fields{"url": req.URL})
		WriteJSONError(w, http.StatusInternalServerError, "failed to delete image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// rollback removes the variants of files already processed in a failed
// multi-upload.
func (h *UploadHandler) rollback(logger port.LoggerPort, uploaded []UploadedImageResponse) {
	for _, img := range uploaded {
		if err := h.processor.Cleanup(img.URL); err != nil {
			logger.Warn("Failed to roll back uploaded image", port.Fields{"url": img.URL, "error": err.Error()})
		}
	}
}

func readUploadInput(file multipart.File, header *multipart.FileHeader) (*domain.UploadInput, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &domain.UploadInput{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         int64(len(data)),
		Data:         data,
	}, nil
}

func respondUploadError(w http.ResponseWriter, logger port.LoggerPort, err error, filename string) {
	switch {
	case errors.Is(err, domain.ErrInvalidImage):
		WriteJSONError(w, http.StatusBadRequest, "file is not a valid image")
	case errors.Is(err, domain.ErrImageTooLarge):
		WriteJSONError(w, http.StatusRequestEntityTooLarge, "image exceeds the size limit")
	default:
		logger.Error("Upload processing failed", err, port.Fields{"file": filename})
		WriteJSONError(w, http.StatusInternalServerError, "failed to process upload")
	}
}
