package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avasilenko2017/blog-account-service/internal/services"
)

// multipartBody builds a multipart form with a single file field.
func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = fw.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	imageData := []byte("fake-png-bytes")

	tests := []struct {
		name         string
		paramID      string
		fileField    string
		mockSetup    func(m *MockImageUploader)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:      "success",
			paramID:   accountID.String(),
			fileField: "profile_image",
			mockSetup: func(m *MockImageUploader) {
				m.EXPECT().
					UploadProfileImage(gomock.Any(), accountID, imageData, "cat.png").
					Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Profile image updated"},
		},
		{
			name:      "account does not exist",
			paramID:   accountID.String(),
			fileField: "profile_image",
			mockSetup: func(m *MockImageUploader) {
				m.EXPECT().
					UploadProfileImage(gomock.Any(), accountID, imageData, "cat.png").
					Return(services.ErrAccountNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Account does not exist"},
		},
		{
			name:         "invalid id",
			paramID:      "not-a-uuid",
			fileField:    "profile_image",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid account id"},
		},
		{
			name:         "missing file field",
			paramID:      accountID.String(),
			fileField:    "something_else",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "profile_image file is required"},
		},
		{
			name:      "image write failure",
			paramID:   accountID.String(),
			fileField: "profile_image",
			mockSetup: func(m *MockImageUploader) {
				m.EXPECT().
					UploadProfileImage(gomock.Any(), accountID, imageData, "cat.png").
					Return(errors.New("disk full"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockImageUploader(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUploadHandler(mockSvc)

			body, contentType := multipartBody(t, tt.fileField, "cat.png", imageData)
			req := httptest.NewRequest(http.MethodPost, "/account/"+tt.paramID+"/image", body)
			req.Header.Set("Content-Type", contentType)
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
