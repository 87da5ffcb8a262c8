// Package report renders finished-run results in the supported output
// formats: aligned text, JSON, and CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/forgesim/smithg/internal/engine"
)

// Formats supported by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Write renders results to w in the given format. Results are rendered
// in the order given; rank them before calling.
func Write(w io.Writer, format string, results []engine.Result) error {
	switch format {
	case FormatText:
		return Text(w, results)
	case FormatJSON:
		return JSON(w, results)
	case FormatCSV:
		return CSV(w, results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Text writes an aligned, human-readable table with humanized balances.
func Text(w io.Writer, results []engine.Result) error {
	if _, err := fmt.Fprintln(w, "Simulation finished. Here are the results"); err != nil {
		return err
	}
	for _, r := range results {
		balance := humanize.Comma(int64(r.Balance))
		if _, err := fmt.Fprintf(w, "Agent %-24s $ %12s\n", r.Name, balance); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the results as a JSON array.
func JSON(w io.Writer, results []engine.Result) error {
	enc := json.NewEncoder(w)
	return enc.Encode(results)
}

// CSV writes the results with an agent_name,balance header row.
func CSV(w io.Writer, results []engine.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"agent_name", "balance"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.Name, strconv.FormatInt(int64(r.Balance), 10)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
