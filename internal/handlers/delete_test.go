package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// withURLParam injects a chi route parameter into the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	tests := []struct {
		name         string
		paramID      string
		mockSetup    func(m *MockAccountDeleter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:    "success",
			paramID: accountID.String(),
			mockSetup: func(m *MockAccountDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), accountID).
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Account deleted"},
		},
		{
			// Deletion is "ensure absent": the service reports success
			// for ids that never existed.
			name:    "absent id still succeeds",
			paramID: accountID.String(),
			mockSetup: func(m *MockAccountDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), accountID).
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Account deleted"},
		},
		{
			name:         "invalid id",
			paramID:      "not-a-uuid",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid account id"},
		},
		{
			name:    "internal server error",
			paramID: accountID.String(),
			mockSetup: func(m *MockAccountDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), accountID).
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAccountDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewDeleteHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/account/"+tt.paramID, nil)
			req = withURLParam(req, "accountID", tt.paramID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
