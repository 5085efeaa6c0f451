package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/pkg/entity"
)

type ItemsRepository struct {
	conn PgConnection
}

func NewItemsRepo(conn PgConnection) *ItemsRepository {
	return &ItemsRepository{
		conn: conn,
	}
}

func (ir *ItemsRepository) GetOrCreate(ctx context.Context, item *entity.Item) (*entity.Item, bool, error) {
	if item == nil {
		return nil, false, errors.New("item is nil")
	}
	res := entity.Item{Name: item.Name, PlaceID: item.PlaceID}
	row := ir.conn.QueryRow(ctx, `INSERT INTO items (name, place_id, forget_count) VALUES ($1, $2, $3)
		ON CONFLICT (name, place_id) DO NOTHING RETURNING id, forget_count;`,
		item.Name, item.PlaceID, item.ForgetCount)
	err := row.Scan(&res.ID, &res.ForgetCount)
	if err == nil {
		return &res, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		if code, _ := pgErrorCode(err); code == codeForeignKeyViolation {
			return nil, false, errorvalues.ErrPlaceNotFound
		}
		return nil, false, errors.New("creating item db error: " + err.Error())
	}
	row = ir.conn.QueryRow(ctx, `SELECT id, forget_count FROM items WHERE name = $1 AND place_id = $2;`, item.Name, item.PlaceID)
	if err = row.Scan(&res.ID, &res.ForgetCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, errorvalues.ErrItemNotFound
		}
		return nil, false, errors.New("searching item error: " + err.Error())
	}
	return &res, false, nil
}

func (ir *ItemsRepository) Create(ctx context.Context, item *entity.Item) error {
	if item == nil {
		return errors.New("item is nil")
	}
	row := ir.conn.QueryRow(ctx, `INSERT INTO items (name, place_id, forget_count) VALUES ($1, $2, $3) RETURNING id;`,
		item.Name, item.PlaceID, item.ForgetCount)
	if err := row.Scan(&item.ID); err != nil {
		switch code, _ := pgErrorCode(err); code {
		case codeUniqueViolation:
			return errorvalues.ErrItemExists
		case codeForeignKeyViolation:
			return errorvalues.ErrPlaceNotFound
		}
		return errors.New("creating item db error: " + err.Error())
	}
	return nil
}

func (ir *ItemsRepository) ListByForgetCount(ctx context.Context, placeID uuid.UUID) ([]*entity.Item, error) {
	return ir.list(ctx, `SELECT id, name, place_id, forget_count FROM items
		WHERE place_id = $1 ORDER BY forget_count DESC, name;`, placeID)
}

func (ir *ItemsRepository) ListByName(ctx context.Context, placeID uuid.UUID) ([]*entity.Item, error) {
	return ir.list(ctx, `SELECT id, name, place_id, forget_count FROM items WHERE place_id = $1 ORDER BY name;`, placeID)
}

func (ir *ItemsRepository) list(ctx context.Context, query string, placeID uuid.UUID) ([]*entity.Item, error) {
	rows, err := ir.conn.Query(ctx, query, placeID)
	if err != nil {
		return nil, errors.New("listing items error: " + err.Error())
	}
	defer rows.Close()
	items := make([]*entity.Item, 0)
	for rows.Next() {
		it := entity.Item{}
		if err = rows.Scan(&it.ID, &it.Name, &it.PlaceID, &it.ForgetCount); err != nil {
			return nil, errors.New("unmarshalling item error: " + err.Error())
		}
		items = append(items, &it)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning items: " + err.Error())
	}
	return items, nil
}

func (ir *ItemsRepository) MarkForgotten(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (err error) {
	tx, err := ir.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	ct, err := tx.Exec(ctx, `UPDATE users SET streaks = 0 WHERE id = $1;`, userID)
	if err != nil {
		return errors.New("resetting streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	for _, id := range itemIDs {
		ct, err = tx.Exec(ctx, `UPDATE items SET forget_count = forget_count + 1 WHERE id = $1;`, id)
		if err != nil {
			return errors.New("incrementing forget count error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			return errorvalues.ErrItemNotFound
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}
