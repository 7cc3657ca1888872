package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dmarkovic7/voiphub/internal/domain"
	"github.com/dmarkovic7/voiphub/internal/service"
	"github.com/dmarkovic7/voiphub/internal/transport/http/middleware"
	"github.com/dmarkovic7/voiphub/pkg/validator"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List is public: the storefront renders without a session.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))

	listings, err := h.catalogService.List(r.Context(), category)
	if err != nil {
		log.Printf("ERROR list listings: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	var input service.ListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateListing(input.Number, string(input.Type), input.Price, input.Year, input.Rating); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	listing, err := h.catalogService.Create(r.Context(), ident, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminOnly):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		case errors.Is(err, service.ErrListingExists):
			writeError(w, http.StatusConflict, "LISTING_EXISTS", "A listing with this id already exists")
		default:
			log.Printf("ERROR create listing: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}

func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	var input service.ListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	input.ID = r.PathValue("id")

	if errs := validator.ValidateListing(input.Number, string(input.Type), input.Price, input.Year, input.Rating); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	listing, err := h.catalogService.Update(r.Context(), ident, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminOnly):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		case errors.Is(err, service.ErrListingNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		default:
			log.Printf("ERROR update listing: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	if err := h.catalogService.Delete(r.Context(), ident, r.PathValue("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminOnly):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Admin access required")
		case errors.Is(err, service.ErrListingNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		default:
			log.Printf("ERROR delete listing: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	msg, err := h.catalogService.RequestPurchase(r.Context(), ident, r.PathValue("id"))
	if err != nil {
		writePurchaseError(w, "purchase", err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *CatalogHandler) Enquiry(w http.ResponseWriter, r *http.Request) {
	ident := middleware.GetIdentity(r.Context())

	msg, err := h.catalogService.Enquire(r.Context(), ident, r.PathValue("id"))
	if err != nil {
		writePurchaseError(w, "enquiry", err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func writePurchaseError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrListingNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Listing not found")
	case errors.Is(err, service.ErrListingUnavailable):
		writeError(w, http.StatusConflict, "LISTING_UNAVAILABLE", "This listing cannot be purchased")
	case errors.Is(err, service.ErrSenderBlocked):
		writeError(w, http.StatusForbidden, "ACCOUNT_RESTRICTED", "Your account is restricted from contacting the seller")
	case errors.Is(err, service.ErrConversationNotFound), errors.Is(err, service.ErrNotParticipant):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "No support thread for this account")
	default:
		log.Printf("ERROR %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
