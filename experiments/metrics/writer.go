package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GenerationRecord summarises one completed generation.
type GenerationRecord struct {
	Generation       int
	Champion         string // Player ID
	Challenger       string // Player ID
	ChallengerWinPct float64
	ChampionRetained bool
	Streak           int
	GamesPlayed      int64
	Duration         time.Duration
}

// Recorder receives a record after every generation.
type Recorder interface {
	Record(record GenerationRecord) error
}

var generationHeader = []string{
	"generation", "champion", "challenger", "challenger_win_pct",
	"champion_retained", "streak", "games_played", "duration",
}

// Writer appends generation records to a CSV file.
type Writer struct {
	path string
	f    *os.File
	csv  *csv.Writer
}

// NewWriter creates the file at path, including missing parent directories,
// and writes the header.
func NewWriter(path string) (*Writer, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation records file: %w", err)
	}

	w := &Writer{path: path, f: f, csv: csv.NewWriter(f)}
	err = w.csv.Write(generationHeader)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write generation records header: %w", err)
	}
	return w, nil
}

// NewTimestampedWriter writes to <baseDir>/<timestamp>/generations.csv.
func NewTimestampedWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	return NewWriter(filepath.Join(baseDir, timestamp, "generations.csv"))
}

func (w *Writer) Path() string {
	return w.path
}

// Record writes a row and flushes it so a crash loses at most one generation.
func (w *Writer) Record(record GenerationRecord) error {
	row := []string{
		strconv.Itoa(record.Generation),
		record.Champion,
		record.Challenger,
		strconv.FormatFloat(record.ChallengerWinPct, 'f', 2, 64),
		strconv.FormatBool(record.ChampionRetained),
		strconv.Itoa(record.Streak),
		strconv.FormatInt(record.GamesPlayed, 10),
		record.Duration.String(),
	}
	err := w.csv.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write generation record row: %w", err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to flush generation record: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to flush generation records: %w", err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("failed to close generation records file: %w", err)
	}
	return nil
}

// GameRecord is the outcome of a single match game.
type GameRecord struct {
	ID       int
	Black    string // Agent name
	Red      string // Agent name
	Winner   string
	Plies    int
	Duration time.Duration
}

// WriteGameRecords writes all records to a new CSV file at path.
func WriteGameRecords(path string, records []GameRecord) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "black", "red", "winner", "plies", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Black,
			record.Red,
			record.Winner,
			strconv.Itoa(record.Plies),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}
