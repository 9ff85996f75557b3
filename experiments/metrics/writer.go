package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Setup records how an experiment was run.
type Setup struct {
	RunID        string        `yaml:"runId"`
	Experiment   string        `yaml:"experiment"`
	Games        int           `yaml:"games"` // Per player config
	Workers      int           `yaml:"workers"`
	Seed         uint64        `yaml:"seed"`
	WinningScore int           `yaml:"winningScore"`
	Fixpoint     bool          `yaml:"fixpoint"`
	Duration     time.Duration `yaml:"duration"`
}

type Writer struct {
	baseDir string
	create  func(path string) (io.WriteCloser, error)
}

// NewWriter creates <dir>/<name>/<timestamp> for the experiment's files.
func NewWriter(dir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		create: func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		},
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	data, err := yaml.Marshal(setup)
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "setup.yaml"), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

func (w *Writer) WritePlayerConfigs(configs []PlayerConfig) error {
	header := []string{"id", "name", "target", "roll_strategy", "score_strategy", "goroutines", "episodes"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.Target),
			config.RollStrategy,
			config.ScoreStrategy,
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.Episodes),
		}
	}
	return w.writeCSV("player_configs", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"game", "config", "player", "total_score", "turns", "busts", "rolls", "won",
		"hot_dice", "max_turn_score", "start_time", "end_time", "duration",
	}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Config),
			record.Player,
			strconv.Itoa(record.TotalScore),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Busts),
			strconv.Itoa(record.Rolls),
			strconv.FormatBool(record.Won),
			strconv.Itoa(record.HotDice),
			strconv.Itoa(record.MaxTurnScore),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		}
	}
	return w.writeCSV("game_records", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{
		"config", "name", "games", "wins", "mean_turns", "median_turns", "mean_busts", "mean_rolls", "points_per_turn",
	}
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			strconv.Itoa(s.Config),
			s.Name,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			formatFloat(s.MeanTurns),
			formatFloat(s.MedianTurns),
			formatFloat(s.MeanBusts),
			formatFloat(s.MeanRolls),
			formatFloat(s.PointsPerTurn),
		}
	}
	return w.writeCSV("summaries", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name+".csv")
	f, err := w.create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", name, err)
	}

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	err = writer.WriteAll(rows)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	// Close reports a failed final write to disk
	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s file: %w", name, err)
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
