package flashdeck

import (
	"errors"
	"math/rand"
	"time"

	"github.com/estudotatico/backend/internal/id"
)

// DeckType distinguishes user-built card decks from law decks, whose draws
// are generated on demand from a statute URL.
type DeckType string

const (
	TypeGeneral DeckType = "general"
	TypeLaw     DeckType = "law"
)

// CardType marks how a card's content should be rendered.
type CardType string

const (
	CardText  CardType = "text"
	CardImage CardType = "image"
)

// Card is one flash card of a general deck.
type Card struct {
	ID      string   `json:"id"`
	Type    CardType `json:"type"`
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content"`
}

// Deck is a named collection of flash cards. Law decks carry a statute URL
// instead of cards.
type Deck struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Type   DeckType `json:"type"`
	LawURL string   `json:"lawUrl,omitempty"`
	Cards  []Card   `json:"cards"`
}

var (
	ErrEmptyTitle   = errors.New("deck title cannot be empty")
	ErrInvalidType  = errors.New("deck type must be general or law")
	ErrEmptyDeck    = errors.New("deck has no cards")
	ErrCardNotFound = errors.New("card not found")
	ErrNotLawDeck   = errors.New("deck is not a law deck")
)

// New builds a deck. General decks start empty; law decks keep their URL.
func New(title string, deckType DeckType, lawURL string) (*Deck, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if deckType != TypeGeneral && deckType != TypeLaw {
		return nil, ErrInvalidType
	}
	return &Deck{
		ID:     id.GenerateID(),
		Title:  title,
		Type:   deckType,
		LawURL: lawURL,
		Cards:  []Card{},
	}, nil
}

// AddCard appends a card and returns its generated id.
func (d *Deck) AddCard(cardType CardType, title, content string) Card {
	card := Card{
		ID:      id.GenerateID(),
		Type:    cardType,
		Title:   title,
		Content: content,
	}
	d.Cards = append(d.Cards, card)
	return card
}

// RemoveCard deletes a card by id.
func (d *Deck) RemoveCard(cardID string) error {
	for i, c := range d.Cards {
		if c.ID == cardID {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			return nil
		}
	}
	return ErrCardNotFound
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Draw picks a random card from a general deck. Law decks draw generated
// content instead and never reach here.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	return d.Cards[rng.Intn(len(d.Cards))], nil
}
