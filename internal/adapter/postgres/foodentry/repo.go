// Package foodentry implements the FoodLogEntry repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the range query builds through
// squirrel so the window bounds stay typed.
package foodentry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/macrolog/macrolog-backend/internal/adapter/postgres"
	"github.com/macrolog/macrolog-backend/internal/domain"
)

// Repo provides food log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new food log entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const entryColumns = `id, user_id, entry_date, name, description, calories, protein, created_at`

const insertSQL = `
INSERT INTO food_log_entries (id, user_id, entry_date, name, description, calories, protein, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM food_log_entries
WHERE id = $1`

const deleteSQL = `DELETE FROM food_log_entries WHERE id = $1`

const listByUserAndDateSQL = `
SELECT ` + entryColumns + `
FROM food_log_entries
WHERE user_id = $1 AND entry_date = $2
ORDER BY created_at`

// Create inserts a new entry and returns the stored row.
func (r *Repo) Create(ctx context.Context, e domain.FoodLogEntry) (*domain.FoodLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, insertSQL,
		e.ID, e.UserID, dateValue(e.EntryDate), e.Name, e.Description,
		e.Calories, e.Protein, e.CreatedAt,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "food_log_entry", e.ID)
	}
	return created, nil
}

// GetByID returns one entry by its ID. Returns ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FoodLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	entry, err := scanEntry(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "food_log_entry", id)
	}
	return entry, nil
}

// Delete removes an entry. Returns ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "food_log_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("food_log_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListByUserAndDate returns a user's entries for one app-date,
// ordered by creation time.
func (r *Repo) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date domain.Date) ([]domain.FoodLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByUserAndDateSQL, userID, dateValue(date))
	if err != nil {
		return nil, postgres.MapError(err, "food_log_entry", userID)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// GetByDateRange returns all of a user's entries with entry_date in
// [from, to], grouped by date. One query per call: this is the stats
// engine's single range fetch, and dates with no entries are simply
// absent from the map.
func (r *Repo) GetByDateRange(ctx context.Context, userID uuid.UUID, from, to domain.Date) (map[domain.Date][]domain.FoodLogEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := sq.Select("id", "user_id", "entry_date", "name", "description", "calories", "protein", "created_at").
		From("food_log_entries").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"entry_date": dateValue(from)}).
		Where(sq.LtOrEq{"entry_date": dateValue(to)}).
		OrderBy("entry_date", "created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build range query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "food_log_entry", userID)
	}
	defer rows.Close()

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}

	byDate := make(map[domain.Date][]domain.FoodLogEntry, len(entries))
	for _, e := range entries {
		byDate[e.EntryDate] = append(byDate[e.EntryDate], e)
	}
	return byDate, nil
}

// dateValue converts a domain.Date into a pgtype.Date for DATE columns.
func dateValue(d domain.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func scanEntry(row pgx.Row) (*domain.FoodLogEntry, error) {
	var (
		e         domain.FoodLogEntry
		entryDate pgtype.Date
	)
	err := row.Scan(&e.ID, &e.UserID, &entryDate, &e.Name, &e.Description,
		&e.Calories, &e.Protein, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.EntryDate = domain.DateOf(entryDate.Time)
	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]domain.FoodLogEntry, error) {
	var entries []domain.FoodLogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food_log_entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food_log_entries: %w", err)
	}
	return entries, nil
}
