package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVHeader is the column order written by WriteCSV. ReadCSV matches
// columns by name, so extra or reordered columns are accepted.
var CSVHeader = []string{"id", "date", "pnl", "strategy", "emotion", "portfolio_id", "timestamp", "notes"}

// WriteCSV writes trades with a header row.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range trades {
		if err := cw.Write([]string{
			t.ID,
			t.Date,
			f(t.PnL),
			t.Strategy,
			t.Emotion,
			t.PortfolioID,
			t.Timestamp,
			t.Notes,
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses trades written by WriteCSV or exported by hand. The id,
// date and pnl columns are required. Every row is normalized; the first
// malformed row aborts the read with its line number.
func ReadCSV(r io.Reader) ([]Trade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, req := range []string{"id", "date", "pnl"} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("missing required column %q", req)
		}
	}

	var out []Trade
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		pnl, err := parsePnL(get("pnl"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		t, err := Normalize(Trade{
			ID:          get("id"),
			Date:        get("date"),
			PnL:         pnl,
			Strategy:    get("strategy"),
			Emotion:     get("emotion"),
			PortfolioID: get("portfolio_id"),
			Timestamp:   get("timestamp"),
			Notes:       get("notes"),
		})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// parsePnL accepts plain numbers plus the "$1,234.50" style amounts that
// spreadsheets tend to produce. An empty cell is breakeven.
func parsePnL(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pnl %q", s)
	}
	return SafePnL(v), nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
