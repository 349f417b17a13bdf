package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mytheresa/supplier-catalog-chat/models"
)

func TestHandlePost(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		repo               *MockRepo
		gen                *MockGenerator
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:               "Unrecognized text bypasses generation",
			requestBody:        `{"query":"Tell me about laptops."}`,
			repo:               &MockRepo{},
			gen:                &MockGenerator{Reply: "should not be used"},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, NotUnderstoodMessage, resp.Response)
			},
		},
		{
			name:        "Generated reply is returned verbatim",
			requestBody: `{"query":"Which suppliers are available?"}`,
			repo: &MockRepo{Suppliers: []models.Supplier{
				{ID: 1, Name: "Acme", ContactInfo: "a@acme.com", Categories: "tools"},
			}},
			gen:                &MockGenerator{Reply: "Acme sells tools. Acme sells tools."},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "Acme sells tools. Acme sells tools.", resp.Response)
			},
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `{invalid json`,
			repo:               &MockRepo{},
			gen:                &MockGenerator{},
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, "Invalid JSON body", errResp["error"])
			},
		},
		{
			name:               "Database failure surfaces as 500",
			requestBody:        `{"query":"show me products"}`,
			repo:               &MockRepo{Err: models.ErrFetchFailed},
			gen:                &MockGenerator{},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var errResp map[string]string
				err := json.NewDecoder(rec.Body).Decode(&errResp)
				assert.NoError(t, err)
				assert.Equal(t, models.ErrFetchFailed.Error(), errResp["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewChatHandler(NewDispatcher(tc.repo, tc.repo, tc.gen))
			req := httptest.NewRequest("POST", "/chat", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			// Act
			handler.HandlePost(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}
