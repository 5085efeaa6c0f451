package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/pkg/entity"
)

type PlacesRepository struct {
	conn PgConnection
}

func NewPlacesRepo(conn PgConnection) *PlacesRepository {
	return &PlacesRepository{
		conn: conn,
	}
}

// GetOrCreate inserts the place unless a place with the same name exists.
// An existing place keeps the owner it was created with.
func (pr *PlacesRepository) GetOrCreate(ctx context.Context, name string, userID uuid.UUID) (*entity.Place, bool, error) {
	place := entity.Place{Name: name}
	row := pr.conn.QueryRow(ctx, `INSERT INTO places (name, user_id) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING RETURNING id, user_id;`, name, userID)
	err := row.Scan(&place.ID, &place.UserID)
	if err == nil {
		return &place, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		if code, _ := pgErrorCode(err); code == codeForeignKeyViolation {
			return nil, false, errorvalues.ErrOwnerNotFound
		}
		return nil, false, errors.New("creating place db error: " + err.Error())
	}
	row = pr.conn.QueryRow(ctx, `SELECT id, user_id FROM places WHERE name = $1;`, name)
	if err = row.Scan(&place.ID, &place.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, errorvalues.ErrPlaceNotFound
		}
		return nil, false, errors.New("searching place by name error: " + err.Error())
	}
	return &place, false, nil
}

func (pr *PlacesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	place := entity.Place{ID: id}
	row := pr.conn.QueryRow(ctx, `SELECT name, user_id FROM places WHERE id = $1;`, id)
	if err := row.Scan(&place.Name, &place.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPlaceNotFound
		}
		return nil, errors.New("getting place by id error: " + err.Error())
	}
	return &place, nil
}

func (pr *PlacesRepository) List(ctx context.Context) ([]*entity.Place, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, name, user_id FROM places ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing places error: " + err.Error())
	}
	defer rows.Close()
	places := make([]*entity.Place, 0)
	for rows.Next() {
		p := entity.Place{}
		if err = rows.Scan(&p.ID, &p.Name, &p.UserID); err != nil {
			return nil, errors.New("unmarshalling place error: " + err.Error())
		}
		places = append(places, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning places: " + err.Error())
	}
	return places, nil
}
