// Package report renders rating results for people and for other tools.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/okian/elo/internal/domain/types"
)

const (
	minColumnWidth = 4
	columnPadding  = 2
)

var tableHeader = []string{"Rank", "Name", "Rating", "Played", "Won", "Lost"}

// WriteTable writes standings as a right-aligned text table with rounded
// ratings. An empty slice writes only the header.
func WriteTable(w io.Writer, standings []types.Standing) error {
	tw := tabwriter.NewWriter(w, minColumnWidth, 0, columnPadding, ' ', tabwriter.AlignRight)
	if err := writeRow(tw, tableHeader...); err != nil {
		return err
	}
	for _, s := range standings {
		err := writeRow(tw,
			strconv.Itoa(s.Rank),
			s.Name,
			strconv.Itoa(s.Rounded),
			strconv.Itoa(s.GamesPlayed),
			strconv.Itoa(s.GamesWon),
			strconv.Itoa(s.GamesLost),
		)
		if err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

func writeRow(w io.Writer, cells ...string) error {
	for _, c := range cells {
		if _, err := io.WriteString(w, c+"\t"); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// WriteSummary writes the title line followed by the standings table.
func WriteSummary(w io.Writer, summary types.Summary, standings []types.Standing) error {
	if _, err := fmt.Fprintln(w, summary.Title()); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	return WriteTable(w, standings)
}
