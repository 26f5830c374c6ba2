package api

import (
	"net/http"

	"github.com/estudotatico/backend/internal/domain/flashdeck"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateDeckRequest struct {
	Title  string `json:"title" validate:"required" example:"Revisão CF/88"`
	Type   string `json:"type" validate:"required,oneof=general law" example:"law"`
	LawURL string `json:"lawUrl" example:"https://www.planalto.gov.br/ccivil_03/constituicao/constituicao.htm"`
}

type AddCardRequest struct {
	Type    string `json:"type" validate:"required,oneof=text image" example:"text"`
	Title   string `json:"title" example:"Art. 5º"`
	Content string `json:"content" validate:"required"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listDecks lists every flash deck.
// @Summary      List decks
// @Tags         Decks
// @Produce      json
// @Success      200  {array}   flashdeck.Deck
// @Failure      500  {object}  map[string]string
// @Router       /decks [get]
func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.decks.List()
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, decks)
}

// createDeck creates a flash deck.
// @Summary      Create a deck
// @Description  General decks hold user cards; law decks generate statute flashes from their URL on each draw.
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateDeckRequest  true  "Deck to create"
// @Success      201   {object}  flashdeck.Deck
// @Failure      400   {object}  map[string]string
// @Router       /decks [post]
func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	var req CreateDeckRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	deck, err := h.decks.Create(req.Title, flashdeck.DeckType(req.Type), req.LawURL)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, deck)
}

// deleteDeck removes a deck.
// @Summary      Delete a deck
// @Tags         Decks
// @Param        deckID  path  string  true  "Deck id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /decks/{deckID} [delete]
func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.decks.Delete(r.PathValue("deckID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addCard appends a card to a general deck.
// @Summary      Add a card
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        deckID  path      string          true  "Deck id"
// @Param        body    body      AddCardRequest  true  "Card to add"
// @Success      201     {object}  flashdeck.Card
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/cards [post]
func (h *Handler) addCard(w http.ResponseWriter, r *http.Request) {
	var req AddCardRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	card, err := h.decks.AddCard(r.PathValue("deckID"), flashdeck.CardType(req.Type), req.Title, req.Content)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, card)
}

// removeCard deletes a card from a deck.
// @Summary      Remove a card
// @Tags         Decks
// @Param        deckID  path  string  true  "Deck id"
// @Param        cardID  path  string  true  "Card id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /decks/{deckID}/cards/{cardID} [delete]
func (h *Handler) removeCard(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.decks.RemoveCard(r.PathValue("deckID"), r.PathValue("cardID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// drawCard draws the next flash from a deck.
// @Summary      Draw a card
// @Description  General decks return a random stored card; law decks return a freshly generated statute flash. Every draw counts toward the daily flash target.
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck id"
// @Success      200     {object}  service.DrawnCard
// @Failure      400     {object}  map[string]string  "empty deck"
// @Failure      404     {object}  map[string]string
// @Router       /decks/{deckID}/draw [post]
func (h *Handler) drawCard(w http.ResponseWriter, r *http.Request) {
	drawn, err := h.decks.Draw(r.Context(), r.PathValue("deckID"))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, drawn)
}
