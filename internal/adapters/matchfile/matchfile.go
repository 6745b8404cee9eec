// Package matchfile reads and writes JSON match lists of the form
//
//	[{"match_no": 1, "player_1": "Alice", "player_2": "Bob", "winner": "Alice", "date": "25.01.2024"}]
//
// Dates use the day.month.year layout. The winner is a player name or "draw".
package matchfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/okian/elo/internal/domain/model"
)

// record mirrors one JSON entry. Pointers distinguish missing fields from zero values.
type record struct {
	MatchNo *int    `json:"match_no"`
	Player1 *string `json:"player_1"`
	Player2 *string `json:"player_2"`
	Winner  *string `json:"winner"`
	Date    *string `json:"date"`
}

// Decode reads a JSON match list from r. Input order is preserved. The first
// incomplete or unparseable record fails the whole list with an error wrapping
// model.ErrMalformedRecord.
func Decode(r io.Reader) ([]model.Match, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	out := make([]model.Match, 0, len(records))
	for i, rec := range records {
		m, err := rec.toMatch(i)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (rec record) toMatch(index int) (model.Match, error) {
	seq := 0
	if rec.MatchNo != nil {
		seq = *rec.MatchNo
	}
	switch {
	case rec.MatchNo == nil:
		return model.Match{}, model.Malformed(index, seq, "match_no", ErrMissingField)
	case rec.Player1 == nil:
		return model.Match{}, model.Malformed(index, seq, "player_1", ErrMissingField)
	case rec.Player2 == nil:
		return model.Match{}, model.Malformed(index, seq, "player_2", ErrMissingField)
	case rec.Winner == nil:
		return model.Match{}, model.Malformed(index, seq, "winner", ErrMissingField)
	case rec.Date == nil:
		return model.Match{}, model.Malformed(index, seq, "date", ErrMissingField)
	}

	date, err := model.ParseDate(*rec.Date)
	if err != nil {
		return model.Match{}, model.Malformed(index, seq, "date", err)
	}
	m := model.Match{
		SequenceNumber: seq,
		Player1:        *rec.Player1,
		Player2:        *rec.Player2,
		Winner:         *rec.Winner,
		Date:           date,
	}
	if err := m.Check(index); err != nil {
		return model.Match{}, err
	}
	return m, nil
}

// Load reads the match list stored at path.
func Load(_ context.Context, path string) ([]model.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open match file: %w", err)
	}
	defer func() { _ = f.Close() }()

	matches, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return matches, nil
}

// Encode writes matches to w in the match-file format.
func Encode(w io.Writer, matches []model.Match) error {
	records := make([]record, len(matches))
	for i, m := range matches {
		no, p1, p2, winner, date := m.SequenceNumber, m.Player1, m.Player2, m.Winner, model.FormatDate(m.Date)
		records[i] = record{MatchNo: &no, Player1: &p1, Player2: &p2, Winner: &winner, Date: &date}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode matches: %w", err)
	}
	return nil
}

// Save writes matches to path, replacing any existing file.
func Save(_ context.Context, path string, matches []model.Match) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("create match file: %w", err)
	}
	if err := Encode(f, matches); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
