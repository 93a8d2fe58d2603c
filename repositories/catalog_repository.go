package repositories

import (
	"context"

	"frushh/models"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, name, slug, price_250ml, price_350ml, protein_250ml, protein_350ml, is_active, created_at, updated_at
	          FROM products WHERE id = $1`

	var p models.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Price250ml, &p.Price350ml, &p.Protein250ml, &p.Protein350ml,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProductRepository) GetAddons(ctx context.Context, ids []int) ([]models.CatalogAddon, error) {
	addons := []models.CatalogAddon{}
	if len(ids) == 0 {
		return addons, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, price, is_active FROM addons WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.CatalogAddon
		if err := rows.Scan(&a.ID, &a.Name, &a.Price, &a.IsActive); err != nil {
			return nil, err
		}
		addons = append(addons, a)
	}
	return addons, rows.Err()
}
