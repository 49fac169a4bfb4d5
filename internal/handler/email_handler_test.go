package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/misionantigua/backend/internal/service"
)

func TestEmailHandler_SendTest_Success(t *testing.T) {
	var gotTo, gotSubject, gotBody string
	mock := &mockContactService{
		sendTestFunc: func(ctx context.Context, to, subject, body string) (*service.TestSendInfo, error) {
			gotTo, gotSubject, gotBody = to, subject, body
			return &service.TestSendInfo{
				From:    "Misión Antigua <noreply@example.com>",
				To:      to,
				Subject: "Correo de prueba",
			}, nil
		},
	}
	h := NewEmailHandler(mock)

	body := `{"to":"dest@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/test-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SendTest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if gotTo != "dest@example.com" || gotSubject != "" || gotBody != "" {
		t.Errorf("unexpected SendTest args: %q %q %q", gotTo, gotSubject, gotBody)
	}

	var resp struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		Info    *service.TestSendInfo `json:"info"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Message != "Correo de prueba enviado correctamente" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if resp.Info == nil || resp.Info.To != "dest@example.com" {
		t.Errorf("expected delivery info, got %+v", resp.Info)
	}
}

func TestEmailHandler_SendTest_MissingTo(t *testing.T) {
	mock := &mockContactService{
		sendTestFunc: func(ctx context.Context, to, subject, body string) (*service.TestSendInfo, error) {
			t.Error("SendTest must not be called without a recipient")
			return nil, nil
		},
	}
	h := NewEmailHandler(mock)

	body := `{"subject":"Ping"}`
	req := httptest.NewRequest(http.MethodPost, "/api/test-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SendTest(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "El campo 'to' es requerido" {
		t.Errorf("unexpected error message %q", resp["error"])
	}
}

func TestEmailHandler_SendTest_RelayError(t *testing.T) {
	mock := &mockContactService{
		sendTestFunc: func(ctx context.Context, to, subject, body string) (*service.TestSendInfo, error) {
			return nil, errors.New("relay down")
		},
	}
	h := NewEmailHandler(mock)

	body := `{"to":"dest@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/test-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SendTest(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "No se pudo enviar el correo de prueba" {
		t.Errorf("unexpected error message %q", resp["error"])
	}
}

func TestEmailHandler_SendTest_MalformedJSON(t *testing.T) {
	h := NewEmailHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodPost, "/api/test-email", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.SendTest(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
