package record

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Event is one recognized gesture occurrence: which gesture, on which hand,
// and where the hand was on screen when it was recognized.
type Event struct {
	ID         string    `json:"id"`
	Gesture    string    `json:"gesture"`
	Handedness string    `json:"handedness"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	DetectedAt time.Time `json:"detectedAt"`
}

// EventRepository provides access to the gesture event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Insert records a new event. An empty ID is assigned a fresh UUID; a zero
// DetectedAt is set to the current time.
func (r *EventRepository) Insert(e *Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.DetectedAt.IsZero() {
		e.DetectedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO events (id, gesture, handedness, x, y, detected_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Gesture, e.Handedness, e.X, e.Y, e.DetectedAt,
	)
	return err
}

// GetByID retrieves a single event.
func (r *EventRepository) GetByID(id string) (*Event, error) {
	e := &Event{}
	err := r.db.QueryRow(
		`SELECT id, gesture, handedness, x, y, detected_at
		 FROM events WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Gesture, &e.Handedness, &e.X, &e.Y, &e.DetectedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return e, nil
}

// List retrieves the most recent events, newest first, up to limit.
// A non-positive limit returns everything.
func (r *EventRepository) List(limit int) ([]*Event, error) {
	query := `SELECT id, gesture, handedness, x, y, detected_at
		 FROM events ORDER BY detected_at DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.Query(query+` LIMIT ?`, limit)
	} else {
		rows, err = r.db.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Gesture, &e.Handedness, &e.X, &e.Y, &e.DetectedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// CountByGesture returns how many events exist per gesture name.
func (r *EventRepository) CountByGesture() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT gesture, COUNT(*) FROM events GROUP BY gesture`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var gesture string
		var n int
		if err := rows.Scan(&gesture, &n); err != nil {
			return nil, err
		}
		counts[gesture] = n
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// Prune deletes events older than the given time and returns how many rows
// were removed.
func (r *EventRepository) Prune(before time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM events WHERE detected_at < ?`, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
