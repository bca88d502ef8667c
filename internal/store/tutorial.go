package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/tutorialhub/tutorials-service/internal/models"
	srvErrors "github.com/tutorialhub/tutorials-service/pkg/errors"
)

// TutorialStore handles tutorial record storage.
type TutorialStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewTutorialStore(db *sql.DB, sb sq.StatementBuilderType) *TutorialStore {
	return &TutorialStore{db: db, sb: sb}
}

func (s *TutorialStore) List(ctx context.Context, opts ...ListOption) ([]models.Tutorial, error) {
	builder := s.sb.Select("id", "title", "description", "published").From("tutorials")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tutorials []models.Tutorial
	for rows.Next() {
		var t models.Tutorial
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Published); err != nil {
			return nil, err
		}
		tutorials = append(tutorials, t)
	}

	return tutorials, rows.Err()
}

// Get retrieves one tutorial by its identifier.
func (s *TutorialStore) Get(ctx context.Context, id int64) (*models.Tutorial, error) {
	query, args, err := s.sb.Select("id", "title", "description", "published").
		From("tutorials").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var t models.Tutorial
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&t.ID, &t.Title, &t.Description, &t.Published)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewTutorialNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new tutorial. The identifier is assigned by the database
// and written back into the returned record.
func (s *TutorialStore) Create(ctx context.Context, t models.Tutorial) (*models.Tutorial, error) {
	query, args, err := s.sb.Insert("tutorials").
		Columns("title", "description", "published").
		Values(t.Title, t.Description, t.Published).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&t.ID); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces the mutable fields of the tutorial identified by t.ID.
func (s *TutorialStore) Update(ctx context.Context, t models.Tutorial) (*models.Tutorial, error) {
	query, args, err := s.sb.Update("tutorials").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("published", t.Published).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING id, title, description, published").
		ToSql()
	if err != nil {
		return nil, err
	}

	var updated models.Tutorial
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&updated.ID, &updated.Title, &updated.Description, &updated.Published)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewTutorialNotFoundError(t.ID)
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes one tutorial by its identifier.
func (s *TutorialStore) Delete(ctx context.Context, id int64) error {
	query, args, err := s.sb.Delete("tutorials").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return srvErrors.NewTutorialNotFoundError(id)
	}
	return nil
}

// DeleteAll removes every tutorial.
func (s *TutorialStore) DeleteAll(ctx context.Context) error {
	query, args, err := s.sb.Delete("tutorials").ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByPublished(published bool) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"published": published})
	}
}
