package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/misionantigua/backend/internal/model"
	"github.com/misionantigua/backend/internal/service"
	"github.com/misionantigua/backend/internal/validation"
)

// Client-visible error messages. Collaborator failures are logged in
// full server-side; clients only ever see these.
const (
	msgInternalError = "Internal server error"
	msgSubmitError   = "Error al procesar tu mensaje. Por favor intenta de nuevo más tarde."
)

// ContactHandler serves the contact-form endpoints.
type ContactHandler struct {
	contactService service.ContactService
	// production suppresses the details field on submit errors.
	production bool
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService, production bool) *ContactHandler {
	return &ContactHandler{contactService: contactService, production: production}
}

// createRequest is the expected JSON body for POST /api/contacts.
// There are deliberately no id/created_at fields; those are assigned by
// storage only.
type createRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// createResponse echoes the stored submission plus a delivery marker.
type createResponse struct {
	*model.Contact
	EmailStatus string `json:"email_status"`
}

// List handles GET /api/contacts. Returns all submissions newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("list contacts failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": msgInternalError})
		return
	}

	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(contacts)
}

// Create handles POST /api/contacts: validate, insert, notify.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
		return
	}

	contact, err := validation.Contact(validation.Input{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
	})
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	slog.Info("contact form submission received", "email", contact.Email, "subject", contact.Subject)

	if err := h.contactService.Submit(r.Context(), contact); err != nil {
		if errors.Is(err, service.ErrNotifyFailed) {
			// The row is stored; only delivery failed.
			slog.Error("contact stored but notification failed", "id", contact.ID, "error", err)
		} else {
			slog.Error("contact submission failed", "error", err)
		}
		body := map[string]string{"error": msgSubmitError}
		if !h.production {
			body["details"] = err.Error()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(body)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createResponse{Contact: contact, EmailStatus: "sent"})
}
