package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"car-customizer/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var catalogSchema = []string{`
CREATE TABLE IF NOT EXISTS car_models (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	base_price NUMERIC(12, 2) NOT NULL,
	currency   CHAR(3) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS catalog_options (
	kind       TEXT NOT NULL,
	value      TEXT NOT NULL,
	label      TEXT NOT NULL,
	price      NUMERIC(12, 2) NOT NULL DEFAULT 0,
	position   SERIAL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (kind, value)
)`,
}

type CatalogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCatalogRepository(db *pgxpool.Pool, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the catalog tables if they do not exist.
func (r *CatalogRepository) Migrate(ctx context.Context) error {
	for _, stmt := range catalogSchema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create catalog schema: %w", err)
		}
	}
	r.logger.Info("Catalog schema ready")
	return nil
}

func (r *CatalogRepository) UpsertModel(ctx context.Context, m *models.CarModel) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := squirrel.Insert("car_models").
		Columns("id", "name", "base_price", "currency", "created_at").
		Values(m.ID, m.Name, squirrel.Expr("?::numeric", m.BasePrice.String()), m.Currency, m.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, base_price = EXCLUDED.base_price, currency = EXCLUDED.currency").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CatalogRepository) UpsertOption(ctx context.Context, o *models.CatalogOption) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}

	query := squirrel.Insert("catalog_options").
		Columns("kind", "value", "label", "price", "created_at").
		Values(string(o.Kind), o.Value, o.Label, squirrel.Expr("?::numeric", o.Price.String()), o.CreatedAt).
		Suffix("ON CONFLICT (kind, value) DO UPDATE SET label = EXCLUDED.label, price = EXCLUDED.price").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CatalogRepository) ListModels(ctx context.Context) ([]models.CarModel, error) {
	query := squirrel.Select("id", "name", "base_price::text", "currency", "created_at").
		From("car_models").
		OrderBy("base_price ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carModels := []models.CarModel{}
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, err
		}
		carModels = append(carModels, *m)
	}

	return carModels, rows.Err()
}

func (r *CatalogRepository) GetModel(ctx context.Context, id string) (*models.CarModel, error) {
	query := squirrel.Select("id", "name", "base_price::text", "currency", "created_at").
		From("car_models").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	m, err := scanModel(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (r *CatalogRepository) ListOptions(ctx context.Context) ([]models.CatalogOption, error) {
	query := squirrel.Select("kind", "value", "label", "price::text", "created_at").
		From("catalog_options").
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := []models.CatalogOption{}
	for rows.Next() {
		o, err := scanOption(rows)
		if err != nil {
			return nil, err
		}
		options = append(options, *o)
	}

	return options, rows.Err()
}

func (r *CatalogRepository) GetOption(ctx context.Context, kind models.OptionKind, value string) (*models.CatalogOption, error) {
	query := squirrel.Select("kind", "value", "label", "price::text", "created_at").
		From("catalog_options").
		Where(squirrel.Eq{"kind": string(kind), "value": value}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	o, err := scanOption(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func scanModel(row pgx.Row) (*models.CarModel, error) {
	var (
		m     models.CarModel
		price string
	)
	if err := row.Scan(&m.ID, &m.Name, &price, &m.Currency, &m.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if m.BasePrice, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("invalid base price for model %s: %w", m.ID, err)
	}
	return &m, nil
}

func scanOption(row pgx.Row) (*models.CatalogOption, error) {
	var (
		o     models.CatalogOption
		kind  string
		price string
	)
	if err := row.Scan(&kind, &o.Value, &o.Label, &price, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.Kind = models.OptionKind(kind)

	var err error
	if o.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("invalid price for option %s/%s: %w", kind, o.Value, err)
	}
	return &o, nil
}
