package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avasilenko2017/blog-account-service/internal/logger"
	"github.com/avasilenko2017/blog-account-service/internal/models"
	"github.com/avasilenko2017/blog-account-service/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*models.AccountProfile, error)
}

// ProfileResponse represents a successful profile response
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Account profile
	Profile *models.AccountProfile `json:"profile"`
}

// ProfileErrorResponse represents an error response for a profile read
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Account does not exist
	Error string `json:"error"`
}

// NewProfileHandler returns an HTTP handler for reading an account profile.
// @Summary Get account profile
// @Description Returns the public profile of the account with the given id
// @Tags account
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} handlers.ProfileResponse "Account profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid account id"
// @Failure 404 {object} handlers.ProfileErrorResponse "Account does not exist"
// @Router /account/{accountID} [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Error: "invalid account id",
			})
			return
		}

		profile, err := svc.GetProfile(r.Context(), accountID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Account does not exist",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			Profile: profile,
		})
	}
}
