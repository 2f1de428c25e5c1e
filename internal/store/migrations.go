package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Profiles table - named sets of cursor tuning parameters
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			sensitivity REAL NOT NULL DEFAULT 1.0,
			single_threshold REAL NOT NULL DEFAULT 0.05,
			double_threshold REAL NOT NULL DEFAULT 0.05,
			smoothing_window INTEGER NOT NULL DEFAULT 5,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs.
		// Holds the live tuning parameters between sessions; the
		// calibration scale factor is deliberately never written here.
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
