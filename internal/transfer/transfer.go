// internal/transfer/transfer.go
package transfer

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/estudotatico/backend/internal/store"
)

// Version is stamped into every exported packet.
const Version = "1.0"

// ErrInvalidCode is returned when an import code cannot be decoded. Nothing
// is written in that case.
var ErrInvalidCode = errors.New("invalid or corrupted code")

// packet is the wire format of a transfer code: a timestamped snapshot of
// every document in the user's namespace.
type packet struct {
	Timestamp string                     `json:"timestamp"`
	Version   string                     `json:"version"`
	Payload   map[string]json.RawMessage `json:"payload"`
}

// Service exports and imports the whole user namespace through opaque
// Base64 codes, so state can be carried between devices without a server
// round-trip.
type Service struct {
	kv     store.KV
	keys   store.Keys
	logger *slog.Logger
}

func NewService(records *store.Records, logger *slog.Logger) *Service {
	return &Service{kv: records.KV(), keys: records.Keys(), logger: logger}
}

// Export collects every key under the user's namespace into one code.
func (s *Service) Export() (string, error) {
	keys, err := s.kv.Keys(s.keys.Prefix())
	if err != nil {
		return "", err
	}

	p := packet{
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
		Payload:   make(map[string]json.RawMessage, len(keys)),
	}
	for _, key := range keys {
		value, err := s.kv.Get(key)
		if err != nil {
			return "", err
		}
		p.Payload[key] = json.RawMessage(value)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	s.logger.Info("transfer code exported", "keys", len(keys))
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Import decodes a transfer code and overwrites every key it carries,
// verbatim. Returns how many keys were written. A code that cannot be
// decoded imports nothing.
func (s *Service) Import(code string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return 0, ErrInvalidCode
	}

	var p packet
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, ErrInvalidCode
	}
	if p.Payload == nil {
		return 0, ErrInvalidCode
	}

	count := 0
	for key, value := range p.Payload {
		if err := s.kv.Set(key, value); err != nil {
			return count, err
		}
		count++
	}

	s.logger.Info("transfer code imported", "keys", count, "exported_at", p.Timestamp)
	return count, nil
}
