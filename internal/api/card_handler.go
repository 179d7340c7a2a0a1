package api

import (
	"log/slog"
	"net/http"

	"github.com/placecards/placecards-api/internal/api/shared"
	"github.com/placecards/placecards-api/internal/service"
)

// CardHandler handles card listing, creation, deletion, and likes.
type CardHandler struct {
	cardService service.CardService
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cardService service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		cardService: cardService,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// ListCards handles GET /cards.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardService.ListCards(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCardListResponse(cards))
}

// CreateCard handles POST /cards. The owner is always the caller.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), userID, req.Name, req.Link)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCardResponse(card))
}

// DeleteCard handles DELETE /cards/{cardId}. Only the owner may delete.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID, cardID, ok := handleUserIDAndPathID(w, r, "cardId", h.logger)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), userID, cardID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Card deleted"})
}

// LikeCard handles PUT /cards/{cardId}/likes.
func (h *CardHandler) LikeCard(w http.ResponseWriter, r *http.Request) {
	userID, cardID, ok := handleUserIDAndPathID(w, r, "cardId", h.logger)
	if !ok {
		return
	}

	card, err := h.cardService.LikeCard(r.Context(), userID, cardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCardResponse(card))
}

// DislikeCard handles DELETE /cards/{cardId}/likes.
func (h *CardHandler) DislikeCard(w http.ResponseWriter, r *http.Request) {
	userID, cardID, ok := handleUserIDAndPathID(w, r, "cardId", h.logger)
	if !ok {
		return
	}

	card, err := h.cardService.DislikeCard(r.Context(), userID, cardID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCardResponse(card))
}
