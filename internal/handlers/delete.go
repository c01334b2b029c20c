package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avasilenko2017/blog-account-service/internal/logger"
)

// AccountDeleter defines the interface that the service must implement.
type AccountDeleter interface {
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// DeleteResponse represents a successful deletion response
// swagger:model DeleteResponse
type DeleteResponse struct {
	// Success message
	// default: Account deleted
	Message string `json:"message"`
}

// DeleteErrorResponse represents an error response for account deletion
// swagger:model DeleteErrorResponse
type DeleteErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewDeleteHandler returns an HTTP handler for deleting an account by id.
// @Summary Delete an account
// @Description Removes the account with the given id. Deleting an absent id still succeeds.
// @Tags account
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} handlers.DeleteResponse "Account deleted"
// @Failure 400 {object} handlers.DeleteErrorResponse "Invalid account id"
// @Router /account/{accountID} [delete]
// @Security BearerAuth
func NewDeleteHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteErrorResponse{
				Error: "invalid account id",
			})
			return
		}

		if err := svc.Delete(r.Context(), accountID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeleteErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResponse{
			Message: "Account deleted",
		})
	}
}
