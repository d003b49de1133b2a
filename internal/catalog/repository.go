package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"posterworks/internal/domain"
)

type MySQLSKURepository struct {
	db *sql.DB
}

func NewMySQLSKURepository(db *sql.DB) *MySQLSKURepository {
	return &MySQLSKURepository{db: db}
}

// FindByNames resolves product names to partner SKU mappings. Names without
// a row are simply absent from the result; callers decide on a fallback.
func (r *MySQLSKURepository) FindByNames(ctx context.Context, names []string) (map[string]domain.ProductSKU, error) {
	if len(names) == 0 {
		return map[string]domain.ProductSKU{}, nil
	}

	placeholders := make([]string, len(names))
	args := make([]interface{}, len(names))
	for i, name := range names {
		placeholders[i] = "?"
		args[i] = name
	}

	query := fmt.Sprintf(`
		SELECT name, sku, size
		FROM product_skus
		WHERE name IN (%s)
		  AND is_active = 1`,
		strings.Join(placeholders, ", "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying product skus: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.ProductSKU, len(names))
	for rows.Next() {
		var sku domain.ProductSKU
		if err := rows.Scan(&sku.Name, &sku.SKU, &sku.Size); err != nil {
			return nil, fmt.Errorf("scanning product sku row: %w", err)
		}
		result[sku.Name] = sku
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product sku rows: %w", err)
	}

	return result, nil
}
