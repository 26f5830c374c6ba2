// internal/service/decks.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/estudotatico/backend/internal/domain/flashdeck"
	"github.com/estudotatico/backend/internal/generator"
	"github.com/estudotatico/backend/internal/store"
)

var ErrDeckNotFound = errors.New("deck not found")

// DrawnCard is one flash draw: a stored card for general decks, a generated
// statute flash for law decks.
type DrawnCard struct {
	Card *flashdeck.Card     `json:"card,omitempty"`
	Law  *generator.LawFlash `json:"law,omitempty"`
}

// DeckService manages flash decks and their draws. Every draw feeds the
// daily flash counter.
type DeckService struct {
	taskNotifier

	records *store.Records
	gen     *GenerationService
	logger  *slog.Logger
}

func NewDeckService(records *store.Records, gen *GenerationService, logger *slog.Logger) *DeckService {
	return &DeckService{records: records, gen: gen, logger: logger}
}

func (s *DeckService) List() ([]*flashdeck.Deck, error) {
	return s.records.FlashDecks()
}

func (s *DeckService) Create(title string, deckType flashdeck.DeckType, lawURL string) (*flashdeck.Deck, error) {
	deck, err := flashdeck.New(title, deckType, lawURL)
	if err != nil {
		return nil, err
	}
	decks, err := s.records.FlashDecks()
	if err != nil {
		return nil, err
	}
	decks = append(decks, deck)
	if err := s.records.SaveFlashDecks(decks); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *DeckService) Delete(deckID string) error {
	decks, err := s.records.FlashDecks()
	if err != nil {
		return err
	}
	for i, d := range decks {
		if d.ID == deckID {
			decks = append(decks[:i], decks[i+1:]...)
			return s.records.SaveFlashDecks(decks)
		}
	}
	return ErrDeckNotFound
}

func (s *DeckService) AddCard(deckID string, cardType flashdeck.CardType, title, content string) (flashdeck.Card, error) {
	var card flashdeck.Card
	err := s.updateDeck(deckID, func(d *flashdeck.Deck) error {
		card = d.AddCard(cardType, title, content)
		return nil
	})
	return card, err
}

func (s *DeckService) RemoveCard(deckID, cardID string) error {
	return s.updateDeck(deckID, func(d *flashdeck.Deck) error {
		return d.RemoveCard(cardID)
	})
}

// Draw produces the next card of a deck and counts it toward the daily flash
// target. Law decks generate a fresh statute flash; general decks pick a
// random stored card.
func (s *DeckService) Draw(ctx context.Context, deckID string) (DrawnCard, error) {
	decks, err := s.records.FlashDecks()
	if err != nil {
		return DrawnCard{}, err
	}

	for _, d := range decks {
		if d.ID != deckID {
			continue
		}

		var drawn DrawnCard
		if d.Type == flashdeck.TypeLaw {
			law := d.Title
			if d.LawURL != "" {
				law = d.Title + " (" + d.LawURL + ")"
			}
			flash := s.gen.LawFlashCard(ctx, law)
			drawn = DrawnCard{Law: &flash}
		} else {
			card, err := d.Draw()
			if err != nil {
				return DrawnCard{}, err
			}
			drawn = DrawnCard{Card: &card}
		}

		s.notify(TaskEvent{Kind: TaskFlash, Count: 1})
		return drawn, nil
	}
	return DrawnCard{}, ErrDeckNotFound
}

func (s *DeckService) updateDeck(deckID string, fn func(*flashdeck.Deck) error) error {
	decks, err := s.records.FlashDecks()
	if err != nil {
		return err
	}
	for _, d := range decks {
		if d.ID == deckID {
			if err := fn(d); err != nil {
				return err
			}
			return s.records.SaveFlashDecks(decks)
		}
	}
	return ErrDeckNotFound
}
