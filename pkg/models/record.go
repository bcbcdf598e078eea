package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// maxRecentRuns bounds how many runs the record file keeps
const maxRecentRuns = 20

// Run is one finished session
type Run struct {
	Outcome    string    `json:"outcome"`
	Seconds    int       `json:"seconds"`
	LapSeconds int       `json:"lap_seconds"`
	Patrols    int       `json:"patrols"`
	FinishedAt time.Time `json:"finished_at"`
}

// Record is the player's history across sessions
type Record struct {
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	BestSurvival int       `json:"best_survival"` // longest run in seconds
	Recent       []Run     `json:"recent"`        // newest first
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewRecord creates an empty record
func NewRecord() *Record {
	now := time.Now()
	return &Record{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add folds a finished run into the record
func (r *Record) Add(run Run) {
	switch run.Outcome {
	case "win":
		r.Wins++
	case "loss":
		r.Losses++
	}
	if run.Seconds > r.BestSurvival {
		r.BestSurvival = run.Seconds
	}
	r.Recent = append([]Run{run}, r.Recent...)
	if len(r.Recent) > maxRecentRuns {
		r.Recent = r.Recent[:maxRecentRuns]
	}
}

// Played is the number of decided runs
func (r *Record) Played() int {
	return r.Wins + r.Losses
}

// SaveToFile saves the record to a JSON file
func (r *Record) SaveToFile(filename string) error {
	r.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile loads a record from a JSON file
func LoadFromFile(filename string) (*Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %w", filename, err)
	}

	return &r, nil
}

// LoadOrNew loads filename, or starts a fresh record when it does not exist
func LoadOrNew(filename string) (*Record, error) {
	r, err := LoadFromFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRecord(), nil
	}
	return r, err
}
