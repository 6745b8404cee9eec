// Package validation checks match lists before they are rated. Results are
// advisory: callers decide whether a violation stops a run.
package validation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/okian/elo/internal/domain/model"
)

// Check names one validation rule.
type Check string

const (
	CheckSequence  Check = "sequence"
	CheckWinner    Check = "winner"
	CheckDateOrder Check = "date_order"
)

// Violation is one failed check on one record.
type Violation struct {
	Check Check
	Err   *model.RecordError
}

func (v Violation) Error() string { return v.Err.Error() }

// Unwrap exposes the record error.
func (v Violation) Unwrap() error { return v.Err }

// Report is the outcome of a Validate call.
type Report struct {
	Checked    int // number of records inspected
	Enabled    []Check
	Violations []Violation
}

// Valid reports whether every enabled check passed.
func (r Report) Valid() bool { return len(r.Violations) == 0 }

// Err joins every violation into one error, nil when valid.
func (r Report) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, len(r.Violations))
	for i, v := range r.Violations {
		errs[i] = v
	}
	return errors.Join(errs...)
}

// Count returns the number of violations of check c.
func (r Report) Count(c Check) int {
	n := 0
	for _, v := range r.Violations {
		if v.Check == c {
			n++
		}
	}
	return n
}

// Validator runs the enabled checks over a match list.
type Validator struct {
	sequence  bool
	winners   bool
	dateOrder bool
}

// New creates a Validator. Only the sequence check is enabled by default.
func New(opts ...Option) *Validator {
	v := &Validator{sequence: true}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs the enabled checks. The sequence check stops at its first
// violation; the winner and date checks report every offending record.
func (v *Validator) Validate(_ context.Context, matches []model.Match) Report {
	r := Report{Checked: len(matches)}
	if v.sequence {
		r.Enabled = append(r.Enabled, CheckSequence)
		var rerr *model.RecordError
		if err := CheckSequenceNumbers(matches); errors.As(err, &rerr) {
			r.Violations = append(r.Violations, Violation{Check: CheckSequence, Err: rerr})
		}
	}
	if v.winners {
		r.Enabled = append(r.Enabled, CheckWinner)
		r.Violations = append(r.Violations, CheckWinners(matches)...)
	}
	if v.dateOrder {
		r.Enabled = append(r.Enabled, CheckDateOrder)
		r.Violations = append(r.Violations, CheckDates(matches)...)
	}
	return r
}

// CheckSequenceNumbers requires match numbers 1, 2, 3, ... in input order.
// It fails on the first record that breaks the run.
func CheckSequenceNumbers(matches []model.Match) error {
	prev := 0
	for i, m := range matches {
		if m.SequenceNumber != prev+1 {
			return &model.RecordError{
				Index:          i,
				SequenceNumber: m.SequenceNumber,
				Field:          "match_no",
				Kind:           model.ErrSequenceViolation,
				Err:            fmt.Errorf("expected %d, got %d", prev+1, m.SequenceNumber),
			}
		}
		prev = m.SequenceNumber
	}
	return nil
}

// CheckWinners requires the winner to be one of the players or a draw, and
// rejects players named like the draw marker.
func CheckWinners(matches []model.Match) []Violation {
	var out []Violation
	for i, m := range matches {
		var cause error
		switch {
		case m.Player1 == model.Draw || m.Player2 == model.Draw:
			cause = fmt.Errorf("%q is reserved and cannot be a player name", model.Draw)
		case m.Winner != m.Player1 && m.Winner != m.Player2 && m.Winner != model.Draw:
			cause = fmt.Errorf("winner %q is neither %q nor %q", m.Winner, m.Player1, m.Player2)
		default:
			continue
		}
		out = append(out, Violation{Check: CheckWinner, Err: &model.RecordError{
			Index:          i,
			SequenceNumber: m.SequenceNumber,
			Field:          "winner",
			Kind:           model.ErrInvalidWinner,
			Err:            cause,
		}})
	}
	return out
}

// CheckDates requires dates to be non-decreasing when the matches are
// taken in match-number order.
func CheckDates(matches []model.Match) []Violation {
	idx := make([]int, len(matches))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return matches[idx[a]].SequenceNumber < matches[idx[b]].SequenceNumber
	})

	var out []Violation
	for k := 1; k < len(idx); k++ {
		prev, cur := matches[idx[k-1]], matches[idx[k]]
		if !cur.Date.Before(prev.Date) {
			continue
		}
		out = append(out, Violation{Check: CheckDateOrder, Err: &model.RecordError{
			Index:          idx[k],
			SequenceNumber: cur.SequenceNumber,
			Field:          "date",
			Kind:           model.ErrDateOrder,
			Err: fmt.Errorf("%s is before %s of match_no %d",
				model.FormatDate(cur.Date), model.FormatDate(prev.Date), prev.SequenceNumber),
		}})
	}
	return out
}
