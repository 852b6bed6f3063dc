package models

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Workshop is what the game remembers between sessions
type Workshop struct {
	EngineName string    `json:"engine_name"` // last engine picked on the menu
	Runs       int       `json:"runs"`        // simulations started
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewWorkshop creates an empty workshop record
func NewWorkshop() *Workshop {
	now := time.Now()
	return &Workshop{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Select records the engine picked on the menu
func (w *Workshop) Select(engineName string) {
	w.EngineName = engineName
}

// RecordRun records a simulation of engineName being started
func (w *Workshop) RecordRun(engineName string) {
	w.EngineName = engineName
	w.Runs++
}

// SaveToFile saves the workshop to a JSON file
func (w *Workshop) SaveToFile(filename string) error {
	w.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save workshop: %w", err)
	}
	return nil
}

// LoadFromFile loads a workshop from a JSON file
func LoadFromFile(filename string) (*Workshop, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var w Workshop
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("invalid workshop file '%s': %w", filename, err)
	}

	return &w, nil
}
