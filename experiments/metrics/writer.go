package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment results as CSV files under a per-run
// timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(experiment string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteCheckpointRecords(records []CheckpointRecord) error {
	path := filepath.Join(w.baseDir, "checkpoints.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create checkpoints file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"trained_games", "opponent", "games", "wins", "draws", "losses", "states"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write checkpoints header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.TrainedGames),
			record.Opponent,
			strconv.Itoa(record.Games),
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Losses),
			strconv.Itoa(record.States),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write checkpoint row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteTrainingRecords(records []TrainingRecord) error {
	path := filepath.Join(w.baseDir, "training.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create training file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"from_game", "to_game", "opponent", "wins", "draws", "losses"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write training header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.FromGame),
			strconv.Itoa(record.ToGame),
			record.Opponent,
			strconv.Itoa(record.Wins),
			strconv.Itoa(record.Draws),
			strconv.Itoa(record.Losses),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write training row: %w", err)
		}
	}

	return nil
}
