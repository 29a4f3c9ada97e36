package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/pantrycart/backend/internal/domain"
)

// PostgresRegistry implements the ingredient registry on PostgreSQL.
// Synonyms live in a separate table keyed by normalized name so that
// GetByName resolves them with a single join.
type PostgresRegistry struct {
	db *sqlx.DB
}

func NewPostgresRegistry(dataSourceName string) (*PostgresRegistry, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS ingredients (
		normalized_name TEXT PRIMARY KEY,
		id TEXT NOT NULL,
		display_name TEXT NOT NULL,
		category TEXT NOT NULL,
		synonyms JSONB NOT NULL DEFAULT '[]',
		needs_review BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create ingredients table: %w", err)
	}

	schema = `
	CREATE TABLE IF NOT EXISTS ingredient_synonyms (
		synonym TEXT PRIMARY KEY,
		normalized_name TEXT NOT NULL REFERENCES ingredients(normalized_name)
	);
	`
	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create ingredient_synonyms table: %w", err)
	}

	return &PostgresRegistry{db: db}, nil
}

func (s *PostgresRegistry) GetByName(ctx context.Context, normalizedName string) (*domain.CanonicalIngredient, error) {
	key := normalizeKey(normalizedName)

	ing, err := s.getByKey(ctx, key)
	if err == nil {
		return ing, nil
	}
	if err != domain.ErrIngredientNotFound {
		return nil, err
	}

	var target string
	err = s.db.QueryRowContext(ctx,
		"SELECT normalized_name FROM ingredient_synonyms WHERE synonym = $1", key).Scan(&target)
	if err == sql.ErrNoRows {
		return nil, domain.ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	return s.getByKey(ctx, target)
}

func (s *PostgresRegistry) getByKey(ctx context.Context, key string) (*domain.CanonicalIngredient, error) {
	var ing domain.CanonicalIngredient
	var synonymsJSON []byte

	err := s.db.QueryRowContext(ctx,
		"SELECT id, display_name, category, synonyms, needs_review, created_at FROM ingredients WHERE normalized_name = $1", key).Scan(
		&ing.ID,
		&ing.DisplayName,
		&ing.Category,
		&synonymsJSON,
		&ing.NeedsReview,
		&ing.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}

	if err := json.Unmarshal(synonymsJSON, &ing.Synonyms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal synonyms: %w", err)
	}
	return &ing, nil
}

func (s *PostgresRegistry) InsertIfAbsent(ctx context.Context, ingredient *domain.CanonicalIngredient) (*domain.CanonicalIngredient, bool, error) {
	key := normalizeKey(ingredient.DisplayName)

	synonymsJSON, err := json.Marshal(ingredient.Synonyms)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal synonyms: %w", err)
	}
	if ingredient.Synonyms == nil {
		synonymsJSON = []byte("[]")
	}

	// ON CONFLICT DO NOTHING makes concurrent inserts of the same name
	// safe: the loser re-reads the winner's row.
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO ingredients (normalized_name, id, display_name, category, synonyms, needs_review, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (normalized_name) DO NOTHING`,
		key, ingredient.ID, ingredient.DisplayName, ingredient.Category,
		synonymsJSON, ingredient.NeedsReview, ingredient.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	if inserted == 0 {
		existing, err := s.getByKey(ctx, key)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	for _, syn := range ingredient.Synonyms {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO ingredient_synonyms (synonym, normalized_name)
			 VALUES ($1, $2)
			 ON CONFLICT (synonym) DO NOTHING`,
			normalizeKey(syn), key)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
		}
	}

	stored := *ingredient
	return &stored, true, nil
}

func (s *PostgresRegistry) All(ctx context.Context) ([]domain.CanonicalIngredient, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, display_name, category, synonyms, needs_review, created_at FROM ingredients ORDER BY display_name")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	defer rows.Close()

	var out []domain.CanonicalIngredient
	for rows.Next() {
		var ing domain.CanonicalIngredient
		var synonymsJSON []byte
		if err := rows.Scan(&ing.ID, &ing.DisplayName, &ing.Category, &synonymsJSON, &ing.NeedsReview, &ing.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
		}
		if err := json.Unmarshal(synonymsJSON, &ing.Synonyms); err != nil {
			return nil, fmt.Errorf("failed to unmarshal synonyms: %w", err)
		}
		out = append(out, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	return out, nil
}

// Seed loads the given ingredients, skipping any that already exist.
func (s *PostgresRegistry) Seed(ctx context.Context, ingredients []domain.CanonicalIngredient) error {
	for i := range ingredients {
		if _, _, err := s.InsertIfAbsent(ctx, &ingredients[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresRegistry) Close() error {
	return s.db.Close()
}
