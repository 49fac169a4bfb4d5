package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/misionantigua/backend/internal/service"
)

// EmailHandler serves the ad-hoc test-email endpoint.
type EmailHandler struct {
	contactService service.ContactService
}

// NewEmailHandler creates an EmailHandler with the given service.
func NewEmailHandler(contactService service.ContactService) *EmailHandler {
	return &EmailHandler{contactService: contactService}
}

// testEmailRequest is the expected JSON body for POST /api/test-email.
// Only to is required.
type testEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// testEmailResponse is returned on successful delivery.
type testEmailResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Info    *service.TestSendInfo `json:"info"`
}

// SendTest handles POST /api/test-email. No persistence is involved.
func (h *EmailHandler) SendTest(w http.ResponseWriter, r *http.Request) {
	var req testEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	if req.To == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "El campo 'to' es requerido"})
		return
	}

	info, err := h.contactService.SendTest(r.Context(), req.To, req.Subject, req.Message)
	if err != nil {
		slog.Error("test email failed", "to", req.To, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "No se pudo enviar el correo de prueba"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(testEmailResponse{
		Success: true,
		Message: "Correo de prueba enviado correctamente",
		Info:    info,
	})
}
