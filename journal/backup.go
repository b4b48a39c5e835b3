package journal

import (
	"encoding/json"
	"fmt"
	"io"
)

// Backup is the JSON document used for full journal export and import.
type Backup struct {
	Portfolios []Portfolio `json:"portfolios"`
	Trades     []Trade     `json:"trades"`
}

func WriteJSON(w io.Writer, b Backup) error {
	if b.Portfolios == nil {
		b.Portfolios = []Portfolio{}
	}
	if b.Trades == nil {
		b.Trades = []Trade{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// ReadJSON decodes a Backup. A bare JSON array is accepted as a list of
// trades. Trades are normalized; malformed dates abort the read.
func ReadJSON(r io.Reader) (Backup, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Backup{}, fmt.Errorf("decode backup: %w", err)
	}

	var b Backup
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &b.Trades); err != nil {
			return Backup{}, fmt.Errorf("decode trades: %w", err)
		}
	} else if err := json.Unmarshal(raw, &b); err != nil {
		return Backup{}, fmt.Errorf("decode backup: %w", err)
	}

	for i, t := range b.Trades {
		n, err := Normalize(t)
		if err != nil {
			return Backup{}, fmt.Errorf("trade %d: %w", i, err)
		}
		b.Trades[i] = n
	}
	for _, p := range b.Portfolios {
		if p.ID == "" {
			return Backup{}, fmt.Errorf("portfolio with empty id")
		}
	}
	return b, nil
}
