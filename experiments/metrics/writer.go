package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists match results as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteGameRecords writes one row per finished game to games.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{{
		"game", "winner", "turns", "duration_ms",
		"first_agent", "first_tolerance", "second_agent", "second_tolerance",
	}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			r.Winner,
			strconv.Itoa(r.Turns),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			r.FirstAgent,
			strconv.FormatFloat(r.FirstTolerance, 'f', -1, 64),
			r.SecondAgent,
			strconv.FormatFloat(r.SecondTolerance, 'f', -1, 64),
		})
	}
	return w.writeFile("games.csv", rows)
}

// WriteMoveRecords writes one row per move selection to moves.csv.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{{
		"game", "turn", "agent", "candidates", "samples", "duration_us",
	}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Turn),
			r.Agent,
			strconv.Itoa(r.Candidates),
			strconv.Itoa(r.Samples),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		})
	}
	return w.writeFile("moves.csv", rows)
}

func (w *Writer) writeFile(name string, rows [][]string) error {
	file, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	writer.Flush()
	return writer.Error()
}
