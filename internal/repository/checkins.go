package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/happyrussia/mood-api/internal/domain"
)

// CheckInsRepository provides persistence helpers for check-in records.
type CheckInsRepository struct {
	pool *pgxpool.Pool
}

const checkInColumns = `
    id,
    region_id,
    region_name,
    mood,
    date,
    COALESCE(user_id, ''),
    city_id,
    city_name,
    federal_district,
    district,
    created_at,
    updated_at
`

// CheckInUpsertParams bundles the fields required to create or update a
// check-in. The record with the same ID is replaced wholesale, matching the
// mobile client's sync semantics.
type CheckInUpsertParams struct {
	ID              string
	RegionID        string
	RegionName      string
	Mood            int
	Date            time.Time
	UserID          *string
	CityID          *string
	CityName        *string
	FederalDistrict *string
	District        *string
}

// CheckInFilter selects the qualifying rows a ranking is computed from.
// Rows without a user never qualify and are filtered here, in the store.
type CheckInFilter struct {
	Since               *time.Time
	RegionID            *string
	WithCity            bool
	WithFederalDistrict bool
}

// Upsert inserts or replaces a check-in by ID and reports whether it was
// newly created.
func (r *CheckInsRepository) Upsert(ctx context.Context, params CheckInUpsertParams) (domain.CheckIn, bool, error) {
	query := `
        INSERT INTO checkins (id, region_id, region_name, mood, date, user_id, city_id, city_name, federal_district, district)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (id)
        DO UPDATE SET
            region_id = EXCLUDED.region_id,
            region_name = EXCLUDED.region_name,
            mood = EXCLUDED.mood,
            date = EXCLUDED.date,
            user_id = EXCLUDED.user_id,
            city_id = EXCLUDED.city_id,
            city_name = EXCLUDED.city_name,
            federal_district = EXCLUDED.federal_district,
            district = EXCLUDED.district,
            updated_at = now()
        RETURNING ` + checkInColumns + `, (xmax = 0) AS inserted
    `

	var checkIn domain.CheckIn
	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		params.ID,
		params.RegionID,
		params.RegionName,
		params.Mood,
		params.Date,
		params.UserID,
		params.CityID,
		params.CityName,
		params.FederalDistrict,
		params.District,
	).Scan(
		&checkIn.ID,
		&checkIn.RegionID,
		&checkIn.RegionName,
		&checkIn.Mood,
		&checkIn.Date,
		&checkIn.UserID,
		&checkIn.CityID,
		&checkIn.CityName,
		&checkIn.FederalDistrict,
		&checkIn.District,
		&checkIn.CreatedAt,
		&checkIn.UpdatedAt,
		&inserted,
	)
	if err != nil {
		return domain.CheckIn{}, false, fmt.Errorf("upsert checkin: %w", err)
	}
	return checkIn, inserted, nil
}

// SyncBatch upserts a batch of check-ins inside one transaction and returns
// the number of records written.
func (r *CheckInsRepository) SyncBatch(ctx context.Context, batch []CheckInUpsertParams) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin sync tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
        INSERT INTO checkins (id, region_id, region_name, mood, date, user_id, city_id, city_name, federal_district, district)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (id)
        DO UPDATE SET
            region_id = EXCLUDED.region_id,
            region_name = EXCLUDED.region_name,
            mood = EXCLUDED.mood,
            date = EXCLUDED.date,
            user_id = EXCLUDED.user_id,
            city_id = EXCLUDED.city_id,
            city_name = EXCLUDED.city_name,
            federal_district = EXCLUDED.federal_district,
            district = EXCLUDED.district,
            updated_at = now()
    `

	for _, params := range batch {
		if _, err := tx.Exec(ctx, query,
			params.ID,
			params.RegionID,
			params.RegionName,
			params.Mood,
			params.Date,
			params.UserID,
			params.CityID,
			params.CityName,
			params.FederalDistrict,
			params.District,
		); err != nil {
			return 0, fmt.Errorf("sync checkin %s: %w", params.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit sync tx: %w", err)
	}
	return len(batch), nil
}

// GetByID retrieves a single check-in.
func (r *CheckInsRepository) GetByID(ctx context.Context, id string) (domain.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM checkins WHERE id = $1`

	var checkIn domain.CheckIn
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&checkIn.ID,
		&checkIn.RegionID,
		&checkIn.RegionName,
		&checkIn.Mood,
		&checkIn.Date,
		&checkIn.UserID,
		&checkIn.CityID,
		&checkIn.CityName,
		&checkIn.FederalDistrict,
		&checkIn.District,
		&checkIn.CreatedAt,
		&checkIn.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.CheckIn{}, ErrNotFound
		}
		return domain.CheckIn{}, fmt.Errorf("get checkin: %w", err)
	}
	return checkIn, nil
}

// ListQualifying returns the check-ins matching the filter. Only rows with a
// non-empty user_id are returned; anonymous check-ins never enter a ranking.
func (r *CheckInsRepository) ListQualifying(ctx context.Context, filter CheckInFilter) ([]domain.CheckIn, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + checkInColumns + ` FROM checkins WHERE user_id IS NOT NULL AND user_id <> ''`)

	args := make([]any, 0, 2)
	if filter.Since != nil {
		args = append(args, *filter.Since)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if filter.RegionID != nil {
		args = append(args, *filter.RegionID)
		fmt.Fprintf(&sb, " AND region_id = $%d", len(args))
	}
	if filter.WithCity {
		sb.WriteString(" AND city_name IS NOT NULL AND city_name <> ''")
	}
	if filter.WithFederalDistrict {
		sb.WriteString(" AND federal_district IS NOT NULL AND federal_district <> ''")
	}
	sb.WriteString(" ORDER BY date, id")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	defer rows.Close()

	var checkIns []domain.CheckIn
	for rows.Next() {
		var checkIn domain.CheckIn
		if err := rows.Scan(
			&checkIn.ID,
			&checkIn.RegionID,
			&checkIn.RegionName,
			&checkIn.Mood,
			&checkIn.Date,
			&checkIn.UserID,
			&checkIn.CityID,
			&checkIn.CityName,
			&checkIn.FederalDistrict,
			&checkIn.District,
			&checkIn.CreatedAt,
			&checkIn.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan checkin: %w", err)
		}
		checkIns = append(checkIns, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkins: %w", err)
	}
	return checkIns, nil
}
