package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Idempotent enough for a fresh database;
// production deployments run the same statements at startup.
func (db *DB) RunMigrations() error {
	migration := `
-- Production submissions
CREATE TABLE IF NOT EXISTS submissions (
    id TEXT PRIMARY KEY,
    project_name TEXT NOT NULL,
    brand_name TEXT,
    project_goals TEXT NOT NULL,
    package_type TEXT NOT NULL,
    timeline TEXT,
    additional_notes TEXT,
    files TEXT NOT NULL DEFAULT '[]',
    status TEXT NOT NULL DEFAULT 'received' CHECK(status IN ('received', 'in-production', 'delivered')),
    submission_date TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions(status);
CREATE INDEX IF NOT EXISTS idx_submissions_package ON submissions(package_type);
CREATE INDEX IF NOT EXISTS idx_submissions_date ON submissions(submission_date);

-- Status transition audit trail
CREATE TABLE IF NOT EXISTS status_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    submission_id TEXT NOT NULL,
    from_status TEXT NOT NULL,
    to_status TEXT NOT NULL,
    changed_by TEXT,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (submission_id) REFERENCES submissions(id)
);
CREATE INDEX IF NOT EXISTS idx_history_submission ON status_history(submission_id);

-- Marketplace assets
CREATE TABLE IF NOT EXISTS assets (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    category TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]',
    price INTEGER NOT NULL DEFAULT 0,
    credit_cost INTEGER NOT NULL DEFAULT 0,
    preview_url TEXT,
    download_url TEXT,
    file_size INTEGER NOT NULL DEFAULT 0,
    file_format TEXT,
    license TEXT,
    featured INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assets_category ON assets(category);
CREATE INDEX IF NOT EXISTS idx_assets_featured ON assets(featured);

-- Customer credit balances
CREATE TABLE IF NOT EXISTS user_credits (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    credits INTEGER NOT NULL DEFAULT 0,
    total_purchased INTEGER NOT NULL DEFAULT 0,
    last_purchase TIMESTAMP,
    created_at TIMESTAMP NOT NULL
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
