package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dmarkovic7/voiphub/internal/service"
	"github.com/dmarkovic7/voiphub/internal/transport/http/middleware"
)

type ModerationHandler struct {
	moderationService *service.ModerationService
}

func NewModerationHandler(moderationService *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

func (h *ModerationHandler) ListBlocked(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	list, err := h.moderationService.ListBlocked(r.Context(), ident)
	if err != nil {
		if errors.Is(err, service.ErrAdminOnly) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		} else {
			log.Printf("ERROR list blocked: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"blocked": list})
}

// Status lets a user check their own restriction before opening the chat
// panel.
func (h *ModerationHandler) Status(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	blocked, err := h.moderationService.IsBlocked(r.Context(), ident.ID)
	if err != nil {
		log.Printf("ERROR moderation status: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"blocked": blocked})
}

func (h *ModerationHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())
	userID := r.PathValue("id")

	blocked, err := h.moderationService.ToggleBlock(r.Context(), ident, userID)
	if err != nil {
		if errors.Is(err, service.ErrAdminOnly) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		} else {
			log.Printf("ERROR toggle block: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user_id": userID, "blocked": blocked})
}
