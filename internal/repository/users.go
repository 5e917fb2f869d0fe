package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/happyrussia/mood-api/internal/domain"
)

// UsersRepository provides persistence helpers for registered users.
type UsersRepository struct {
	pool *pgxpool.Pool
}

const userColumns = `
    user_id,
    name,
    registration_city_id,
    registration_city_name,
    registration_region_id,
    registration_region_name,
    registration_federal_district,
    created_at
`

// UserUpsertParams bundles the fields required to register or update a user.
type UserUpsertParams struct {
	UserID                      string
	Name                        string
	RegistrationCityID          *string
	RegistrationCityName        *string
	RegistrationRegionID        *string
	RegistrationRegionName      *string
	RegistrationFederalDistrict *string
}

// Upsert registers a user or updates an existing registration, reporting
// whether it was newly created.
func (r *UsersRepository) Upsert(ctx context.Context, params UserUpsertParams) (domain.User, bool, error) {
	query := `
        INSERT INTO users (user_id, name, registration_city_id, registration_city_name, registration_region_id, registration_region_name, registration_federal_district)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (user_id)
        DO UPDATE SET
            name = EXCLUDED.name,
            registration_city_id = EXCLUDED.registration_city_id,
            registration_city_name = EXCLUDED.registration_city_name,
            registration_region_id = EXCLUDED.registration_region_id,
            registration_region_name = EXCLUDED.registration_region_name,
            registration_federal_district = EXCLUDED.registration_federal_district
        RETURNING ` + userColumns + `, (xmax = 0) AS inserted
    `

	var user domain.User
	var inserted bool
	err := r.pool.QueryRow(ctx, query,
		params.UserID,
		params.Name,
		params.RegistrationCityID,
		params.RegistrationCityName,
		params.RegistrationRegionID,
		params.RegistrationRegionName,
		params.RegistrationFederalDistrict,
	).Scan(
		&user.UserID,
		&user.Name,
		&user.RegistrationCityID,
		&user.RegistrationCityName,
		&user.RegistrationRegionID,
		&user.RegistrationRegionName,
		&user.RegistrationFederalDistrict,
		&user.CreatedAt,
		&inserted,
	)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("upsert user: %w", err)
	}
	return user, inserted, nil
}

// Get retrieves a user by ID.
func (r *UsersRepository) Get(ctx context.Context, userID string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user domain.User
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.RegistrationCityID,
		&user.RegistrationCityName,
		&user.RegistrationRegionID,
		&user.RegistrationRegionName,
		&user.RegistrationFederalDistrict,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
