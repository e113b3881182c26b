package simulation

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{"game_id", "winner", "winner_strategy", "rounds", "timeout"}

// CSVWriter exports one row per game
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a writer for path, creating its directory if needed
func NewCSVWriter(path string) (*CSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return &CSVWriter{path: path}, nil
}

func (w *CSVWriter) Path() string { return w.path }

// WriteResults replaces the file with the games of results
func (w *CSVWriter) WriteResults(results *Results) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create game results file: %w", err)
	}
	defer f.Close()

	if err := WriteGameRecords(f, results); err != nil {
		return err
	}
	return f.Close()
}

// WriteGameRecords writes the header and one row per game to out
func WriteGameRecords(out io.Writer, results *Results) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write game results header: %w", err)
	}

	for _, g := range results.Games {
		strategy := ""
		if g.WinnerID >= 0 {
			strategy = g.WinnerStrategy.String()
		}
		row := []string{
			g.GameID,
			strconv.Itoa(g.WinnerID),
			strategy,
			strconv.Itoa(g.Rounds),
			strconv.FormatBool(g.Timeout),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game result row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
