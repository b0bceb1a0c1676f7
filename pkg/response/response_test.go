package response

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSuccess(t *testing.T) {
	data := map[string]string{"name": "test"}
	resp := Success(data)

	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Data == nil {
		t.Error("Expected data to be set")
	}
	if resp.Error != nil {
		t.Error("Expected error to be nil")
	}
}

func TestSuccess_JSONFormat(t *testing.T) {
	data := map[string]string{"id": "123"}
	resp := Success(data)

	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if parsed["success"] != true {
		t.Errorf("Expected success=true, got %v", parsed["success"])
	}
	if _, ok := parsed["error"]; ok {
		t.Error("Expected error field to be omitted")
	}
}

func TestError(t *testing.T) {
	resp := Error(ErrCodeNotFound, "Property not found")

	if resp.Success {
		t.Error("Expected success to be false")
	}
	if resp.Data != nil {
		t.Error("Expected data to be nil")
	}
	if resp.Error == nil {
		t.Fatal("Expected error to be set")
	}
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("Expected code %s, got %s", ErrCodeNotFound, resp.Error.Code)
	}
	if resp.Error.Message != "Property not found" {
		t.Errorf("Unexpected message: %s", resp.Error.Message)
	}
}

func TestErrorWithDetails(t *testing.T) {
	details := map[string]string{"season": "multiplier must be positive"}
	resp := ErrorWithDetails(ErrCodeValidationFailed, "Validation failed", details)

	if resp.Error == nil {
		t.Fatal("Expected error to be set")
	}
	if resp.Error.Details["season"] != "multiplier must be positive" {
		t.Errorf("Unexpected details: %v", resp.Error.Details)
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeInvalidPricingConfig, http.StatusUnprocessableEntity},
		{ErrCodePushFailed, http.StatusBadGateway},
		{ErrCodePMSUnavailable, http.StatusBadGateway},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := GetHTTPStatus(tt.code); got != tt.want {
			t.Errorf("GetHTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestCommonErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		resp     *Response
		wantCode string
	}{
		{"bad request", BadRequest("missing id"), ErrCodeBadRequest},
		{"unauthorized default message", Unauthorized(""), ErrCodeUnauthorized},
		{"not found", NotFound(""), ErrCodeNotFound},
		{"invalid pricing config", InvalidPricingConfig(""), ErrCodeInvalidPricingConfig},
		{"push failed", PushFailed(""), ErrCodePushFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.resp.Success {
				t.Error("Expected success to be false")
			}
			if tt.resp.Error == nil || tt.resp.Error.Code != tt.wantCode {
				t.Errorf("Expected code %s, got %+v", tt.wantCode, tt.resp.Error)
			}
			if tt.resp.Error != nil && tt.resp.Error.Message == "" {
				t.Error("Expected a default message")
			}
		})
	}
}
