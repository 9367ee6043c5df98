package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge/kitforge-service/internal/domain/dto"
	"github.com/kitforge/kitforge-service/internal/i18n"
	"github.com/kitforge/kitforge-service/internal/middleware"
)

const validEstimateBody = `{
	"metrics": {
		"volume_cm3": 30,
		"surface_area_cm2": 62,
		"bounding_box": {"x": 5, "y": 3, "z": 2},
		"triangle_count": 12,
		"is_watertight": true,
		"shell_count": 1
	},
	"material": "PLA",
	"config": {"infill_fraction": 0.2}
}`

func TestRequestBuilder_Bind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		body             string
		expectedMaterial string
		expectError      bool
	}{
		{
			name:             "valid request",
			body:             validEstimateBody,
			expectedMaterial: "PLA",
			expectError:      false,
		},
		{
			name:        "invalid JSON",
			body:        `{"material": invalid}`,
			expectError: true,
		},
		{
			name:        "empty body",
			body:        ``,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			builder := NewRequestBuilder(c)
			var request dto.EstimateRequest
			err := builder.Bind(&request)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedMaterial, request.Material)
				assert.Equal(t, 30.0, request.Metrics.VolumeCm3)
			}
		})
	}
}

func TestUnmarshalFromBytes(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		expectError bool
	}{
		{
			name:        "valid JSON",
			data:        []byte(validEstimateBody),
			expectError: false,
		},
		{
			name:        "invalid JSON",
			data:        []byte(`{"material": invalid}`),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := UnmarshalFromBytes[dto.EstimateRequest](tt.data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "PLA", result.Material)
			}
		})
	}
}

func TestUnmarshalFromReader(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid JSON",
			body:        validEstimateBody,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			body:        `{"material": invalid}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := bytes.NewBufferString(tt.body)
			result, err := UnmarshalFromReader[dto.EstimateRequest](reader)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "PLA", result.Material)
			}
		})
	}
}

func TestBuildRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid request",
			body:        validEstimateBody,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			body:        `{"material": invalid}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			result, err := BuildRequest[dto.EstimateRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "PLA", result.Material)
			}
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid request",
			body:        validEstimateBody,
			expectError: false,
		},
		{
			name:        "invalid request - negative volume",
			body:        `{"metrics": {"volume_cm3": -1, "shell_count": 1}, "material": "PLA"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			result, err := BuildRequestAndValidate[dto.EstimateRequest](c)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "PLA", result.Material)
			}
		})
	}
}

func TestResponseBuilder_ErrorWithKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	builder := NewResponseBuilder(c)

	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errorResp)
	assert.NoError(t, err)
	assert.Equal(t, dto.ErrCodeInvalidRequest, errorResp.Error)
	assert.NotEmpty(t, errorResp.Message)
}

func TestResponseBuilder_ErrorWithCustomMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	middleware.RequestID()(c)
	builder := NewResponseBuilder(c)

	customMessage := "Custom error message"
	builder.ErrorWithMessage(http.StatusBadRequest, customMessage, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errorResp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &errorResp)
	assert.NoError(t, err)
	assert.Equal(t, customMessage, errorResp.Message)
}

func TestMarshalJSON(t *testing.T) {
	data := dto.EstimateRequest{Material: "PLA"}
	result, err := MarshalJSON(data)

	assert.NoError(t, err)
	assert.NotNil(t, result)

	var unmarshaled dto.EstimateRequest
	err = json.Unmarshal(result, &unmarshaled)
	assert.NoError(t, err)
	assert.Equal(t, "PLA", unmarshaled.Material)
}

func TestMarshalToWriter(t *testing.T) {
	data := dto.EstimateRequest{Material: "PLA"}
	var buf bytes.Buffer

	err := MarshalToWriter(&buf, data)
	assert.NoError(t, err)

	var result dto.EstimateRequest
	err = json.Unmarshal(buf.Bytes(), &result)
	assert.NoError(t, err)
	assert.Equal(t, "PLA", result.Material)
}
