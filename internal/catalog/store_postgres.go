package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsukihara/workshelf/internal/platform/database/schema"
	"github.com/tsukihara/workshelf/internal/platform/dberr"
	"github.com/tsukihara/workshelf/pkg/normalize"
)

// PostgresLookup resolves entity names against the host catalog tables.
// The sync core treats these tables as read-only; writes belong to the host.
type PostgresLookup struct {
	db *pgxpool.Pool
}

func NewPostgresLookup(db *pgxpool.Pool) *PostgresLookup {
	return &PostgresLookup{db: db}
}

// FindByName matches on the pre-computed fold key so the comparison stays
// index-friendly regardless of how the name was cased on the product page.
func (repository *PostgresLookup) FindByName(context context.Context, kind Kind, name string) (*Entity, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CatalogEntity.ID, schema.CatalogEntity.Kind, schema.CatalogEntity.Name, schema.CatalogEntity.CreatedAt,
		schema.CatalogEntity.Table,
		schema.CatalogEntity.Kind, schema.CatalogEntity.NameKey,
	)

	entity := &Entity{}
	err := repository.db.QueryRow(context, query, string(kind), normalize.Key(name)).Scan(
		&entity.ID, &entity.Kind, &entity.Name, &entity.CreatedAt,
	)
	if err != nil {
		// Absence is an answer, not a failure: the mapper emits a name-reference.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dberr.Wrap(err, "find_entity_by_name")
	}

	return entity, nil
}

// Insert registers an entity, computing its fold key. Used by seeds and tests;
// the sync pipeline itself never calls it.
func (repository *PostgresLookup) Insert(context context.Context, entity *Entity) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		schema.CatalogEntity.Table,
		schema.CatalogEntity.ID, schema.CatalogEntity.Kind, schema.CatalogEntity.Name, schema.CatalogEntity.NameKey,
	)

	_, err := repository.db.Exec(context, query,
		entity.ID, string(entity.Kind), entity.Name, normalize.Key(entity.Name),
	)
	return dberr.Wrap(err, "insert_entity")
}
