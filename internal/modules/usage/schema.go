package usage

import "database/sql"

// UsageSchema holds the per-user monthly counter table
const UsageSchema = `
CREATE TABLE IF NOT EXISTS usage (
    user_id TEXT PRIMARY KEY,
    ai_calls_this_month INTEGER NOT NULL DEFAULT 0,
    last_reset_at TEXT NOT NULL
);
`

// InitSchema ensures the usage table exists
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(UsageSchema)
	return err
}
