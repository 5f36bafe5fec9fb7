package charts

import "database/sql"

// ChartsSchema holds the natal chart storage table. The computed chart is
// stored as an opaque JSON document; the service never updates it.
const ChartsSchema = `
CREATE TABLE IF NOT EXISTS natal_charts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    birth_date TEXT NOT NULL,
    birth_time TEXT NOT NULL,
    latitude REAL NOT NULL,
    longitude REAL NOT NULL,
    timezone TEXT NOT NULL,
    location TEXT NOT NULL,
    chart_data TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_natal_charts_user ON natal_charts(user_id);
CREATE INDEX IF NOT EXISTS idx_natal_charts_created ON natal_charts(created_at);
`

// InitSchema ensures the natal_charts table exists
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(ChartsSchema)
	return err
}
