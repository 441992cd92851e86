package httpserver

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReplyWithError(t *testing.T) {
	recorder := httptest.NewRecorder()

	ReplyWithError(recorder, 404, "form not found")

	if recorder.Code != 404 {
		t.Errorf("expected status 404, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected json content type, got %q", got)
	}

	var response ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if response.Message != "form not found" {
		t.Errorf("expected message in body, got %q", response.Message)
	}
}

func TestReplyJSONResponse(t *testing.T) {
	recorder := httptest.NewRecorder()

	ReplyJSONResponse(recorder, 201, "29b5ec98-1b50-468a-9e33-52e99a4e0e84")

	if recorder.Code != 201 {
		t.Errorf("expected status 201, got %d", recorder.Code)
	}

	var response string
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if response != "29b5ec98-1b50-468a-9e33-52e99a4e0e84" {
		t.Errorf("unexpected body: %q", response)
	}
}

func TestDecodeJSONBody(t *testing.T) {
	request := httptest.NewRequest("POST", "/v1/forms", strings.NewReader(`{"modelType":"asset"}`))

	var placeholder struct {
		ModelType string `json:"modelType"`
	}
	if err := DecodeJSONBody(request, &placeholder); err != nil {
		t.Fatalf("decoding valid body: %v", err)
	}
	if placeholder.ModelType != "asset" {
		t.Errorf("expected modelType to be decoded, got %q", placeholder.ModelType)
	}
}

func TestDecodeJSONBody_Invalid(t *testing.T) {
	request := httptest.NewRequest("POST", "/v1/forms", strings.NewReader("{not json"))

	var placeholder map[string]any
	if err := DecodeJSONBody(request, &placeholder); err == nil {
		t.Error("expected an error for malformed json")
	}
}

func TestGetQueryParam(t *testing.T) {
	request := httptest.NewRequest("GET", "/v1/forms?domainId=abc", nil)

	if got := GetQueryParam(request, "domainId"); got != "abc" {
		t.Errorf("expected abc, got %q", got)
	}
	if got := GetQueryParam(request, "missing"); got != "" {
		t.Errorf("expected empty string for missing param, got %q", got)
	}
}
