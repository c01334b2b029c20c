package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avasilenko2017/blog-account-service/internal/logger"
	"github.com/avasilenko2017/blog-account-service/internal/services"
)

// maxImageSize bounds how much of a multipart upload is kept in memory.
const maxImageSize = 10 << 20

// ImageUploader defines the interface that the service must implement.
type ImageUploader interface {
	UploadProfileImage(ctx context.Context, accountID uuid.UUID, data []byte, originalName string) error
}

// UploadResponse represents a successful image upload response
// swagger:model UploadResponse
type UploadResponse struct {
	// Success message
	// default: Profile image updated
	Message string `json:"message"`
}

// UploadErrorResponse represents an error response for an image upload
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	// Error message
	// default: Account does not exist
	Error string `json:"error"`
}

// NewUploadHandler returns an HTTP handler for profile image upload.
// @Summary Upload a profile image
// @Description Stores the image under a generated unique name and points the account's profile image at it. A failed write aborts the operation without touching the account.
// @Tags account
// @Accept multipart/form-data
// @Produce json
// @Param accountID path string true "Account ID"
// @Param profile_image formData file true "Image file"
// @Success 200 {object} handlers.UploadResponse "Profile image updated"
// @Failure 400 {object} handlers.UploadErrorResponse "Invalid account id or missing file"
// @Failure 404 {object} handlers.UploadErrorResponse "Account does not exist"
// @Failure 500 {object} handlers.UploadErrorResponse "Image write failed"
// @Router /account/{accountID}/image [post]
// @Security BearerAuth
func NewUploadHandler(svc ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: "invalid account id",
			})
			return
		}

		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: "invalid multipart form",
			})
			return
		}

		file, header, err := r.FormFile("profile_image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: "profile_image file is required",
			})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded file", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		err = svc.UploadProfileImage(r.Context(), accountID, data, header.Filename)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UploadErrorResponse{
					Error: "Account does not exist",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UploadErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadResponse{
			Message: "Profile image updated",
		})
	}
}
