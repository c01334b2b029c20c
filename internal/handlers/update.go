package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avasilenko2017/blog-account-service/internal/logger"
	"github.com/avasilenko2017/blog-account-service/internal/services"
)

// AccountUpdater defines the interface that the service must implement.
type AccountUpdater interface {
	Update(ctx context.Context, username, password, nickname string) error
}

// UpdateRequest represents the JSON body for an account update
// swagger:model UpdateRequest
type UpdateRequest struct {
	// Username used to look up the account; never changed
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required"`

	// New password
	// required: true
	// default: secret456
	Password string `json:"password" validate:"required,min=4"`

	// New nickname
	// required: true
	// default: Johnny
	Nickname string `json:"nickname" validate:"required"`
}

// UpdateResponse represents a successful update response
// swagger:model UpdateResponse
type UpdateResponse struct {
	// Success message
	// default: Account updated successfully
	Message string `json:"message"`
}

// UpdateErrorResponse represents an error response for an account update
// swagger:model UpdateErrorResponse
type UpdateErrorResponse struct {
	// Error message
	// default: Account does not exist
	Error string `json:"error"`
}

// NewUpdateHandler returns an HTTP handler for updating an account.
// @Summary Update an account
// @Description Overwrites the password (re-hashed) and nickname of the account with the given username. Email, role and identity stay untouched.
// @Tags account
// @Accept json
// @Produce json
// @Param updateRequest body handlers.UpdateRequest true "Account update request"
// @Success 200 {object} handlers.UpdateResponse "Account updated"
// @Failure 400 {object} map[string]string "Validation errors keyed by valid_<field>"
// @Failure 404 {object} handlers.UpdateErrorResponse "Account does not exist"
// @Router /account [put]
// @Security BearerAuth
func NewUpdateHandler(svc AccountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := validate.Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(
				services.CollectValidationErrors(services.FieldErrorsFromValidator(err)),
			)
			return
		}

		err := svc.Update(r.Context(), req.Username, req.Password, req.Nickname)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateErrorResponse{
					Error: "Account does not exist",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateResponse{
			Message: "Account updated successfully",
		})
	}
}
