package store

import (
	"database/sql"
	"errors"
	"strconv"
)

// Settings keys persisted between sessions.
const (
	KeySensitivity     = "sensitivity"
	KeySingleThreshold = "single_threshold"
	KeyDoubleThreshold = "double_threshold"
	KeySmoothingWindow = "smoothing_window"
)

// SettingsRepository provides access to the key-value settings table.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get retrieves a setting value by key.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores a setting value, replacing any previous value for the key.
func (r *SettingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// GetFloat retrieves a setting as a float64, returning fallback when the
// key is missing or unparsable.
func (r *SettingsRepository) GetFloat(key string, fallback float64) float64 {
	raw, err := r.Get(key)
	if err != nil {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

// GetInt retrieves a setting as an int, returning fallback when the key is
// missing or unparsable.
func (r *SettingsRepository) GetInt(key string, fallback int) int {
	raw, err := r.Get(key)
	if err != nil {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// SetFloat stores a float64 setting.
func (r *SettingsRepository) SetFloat(key string, v float64) error {
	return r.Set(key, strconv.FormatFloat(v, 'g', -1, 64))
}

// SetInt stores an int setting.
func (r *SettingsRepository) SetInt(key string, v int) error {
	return r.Set(key, strconv.Itoa(v))
}
