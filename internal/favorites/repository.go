package favorites

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/surfscout/surfscout/internal/models"
	_ "modernc.org/sqlite"
)

// Beach is a user-saved beach. Only the bookmark is stored; snapshots and
// scores are never persisted.
type Beach struct {
	ID         int64
	LocationID int
	Name       string
	Region     string
	State      string
	CreatedAt  time.Time
}

// Location converts a saved beach back into a provider location
func (b Beach) Location() models.Location {
	return models.Location{
		ID:     b.LocationID,
		Name:   b.Name,
		Region: b.Region,
		State:  b.State,
	}
}

// Repository handles persistence for saved beaches
type Repository struct {
	dbPath string
}

// NewRepository creates a repository backed by the database at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// ensureSchema creates the saved_beaches table if needed. Safe to call
// multiple times.
func (r *Repository) ensureSchema() error {
	if err := os.MkdirAll(filepath.Dir(r.dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS saved_beaches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			location_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			region TEXT,
			state TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_saved_beaches_location ON saved_beaches(location_id);
	`)
	if err != nil {
		return fmt.Errorf("creating saved_beaches table: %w", err)
	}

	return nil
}

// Save stores a beach, replacing any existing entry for the same location
func (r *Repository) Save(beach *Beach) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if beach.CreatedAt.IsZero() {
		beach.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO saved_beaches (location_id, name, region, state, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(location_id) DO UPDATE SET
			name = excluded.name,
			region = excluded.region,
			state = excluded.state
	`

	res, err := db.Exec(query, beach.LocationID, beach.Name, beach.Region, beach.State, beach.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving beach: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	beach.ID = id

	return nil
}

// List retrieves all saved beaches ordered by name
func (r *Repository) List() ([]Beach, error) {
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, location_id, name, region, state, created_at FROM saved_beaches ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying beaches: %w", err)
	}
	defer rows.Close()

	var beaches []Beach
	for rows.Next() {
		var b Beach
		var region, state sql.NullString

		if err := rows.Scan(&b.ID, &b.LocationID, &b.Name, &region, &state, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning beach: %w", err)
		}
		b.Region = region.String
		b.State = state.String
		beaches = append(beaches, b)
	}

	return beaches, rows.Err()
}

// Delete removes a saved beach by its provider location id
func (r *Repository) Delete(locationID int) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM saved_beaches WHERE location_id = ?", locationID); err != nil {
		return fmt.Errorf("deleting beach: %w", err)
	}

	return nil
}
