package repositories

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type SeedProduct struct {
	Name         string `yaml:"name"`
	Slug         string `yaml:"slug"`
	Price250ml   int    `yaml:"price_250ml"`
	Price350ml   int    `yaml:"price_350ml"`
	Protein250ml int    `yaml:"protein_250ml"`
	Protein350ml int    `yaml:"protein_350ml"`
}

type SeedAddon struct {
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
}

type SeedCoupon struct {
	Code           string `yaml:"code"`
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	DiscountType   string `yaml:"discount_type"`
	DiscountValue  int    `yaml:"discount_value"`
	MinOrder       int    `yaml:"min_order"`
	MaxDiscount    *int   `yaml:"max_discount"`
	UsageLimit     *int   `yaml:"usage_limit"`
	FirstOrderOnly bool   `yaml:"first_order_only"`
	Public         bool   `yaml:"public"`
}

type SeedData struct {
	Products []SeedProduct `yaml:"products"`
	Addons   []SeedAddon   `yaml:"addons"`
	Coupons  []SeedCoupon  `yaml:"coupons"`
}

func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	for i := range data.Coupons {
		c := &data.Coupons[i]
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
		if c.Code == "" {
			return nil, fmt.Errorf("coupon %d: code is required", i)
		}
		if c.DiscountType != "flat" && c.DiscountType != "percent" {
			return nil, fmt.Errorf("coupon %s: discount_type must be flat or percent", c.Code)
		}
		// 0 means no cap / no limit in seed files.
		if c.MaxDiscount != nil && *c.MaxDiscount <= 0 {
			c.MaxDiscount = nil
		}
		if c.UsageLimit != nil && *c.UsageLimit <= 0 {
			c.UsageLimit = nil
		}
	}
	return &data, nil
}

// Seed inserts catalog rows and coupons that are not present yet.
func Seed(ctx context.Context, db DBTX, data *SeedData) error {
	for _, p := range data.Products {
		_, err := db.Exec(ctx,
			`INSERT INTO products (name, slug, price_250ml, price_350ml, protein_250ml, protein_350ml)
			 VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (slug) DO NOTHING`,
			p.Name, p.Slug, p.Price250ml, p.Price350ml, p.Protein250ml, p.Protein350ml)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.Slug, err)
		}
	}

	for _, a := range data.Addons {
		_, err := db.Exec(ctx,
			`INSERT INTO addons (name, price)
			 SELECT $1, $2 WHERE NOT EXISTS (SELECT 1 FROM addons WHERE name = $1)`,
			a.Name, a.Price)
		if err != nil {
			return fmt.Errorf("seed addon %s: %w", a.Name, err)
		}
	}

	for _, c := range data.Coupons {
		_, err := db.Exec(ctx,
			`INSERT INTO coupons (code, title, description, discount_type, discount_value, min_order,
			                      max_discount, usage_limit, is_first_order_only, is_public)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) ON CONFLICT (code) DO NOTHING`,
			c.Code, c.Title, c.Description, c.DiscountType, c.DiscountValue, c.MinOrder,
			c.MaxDiscount, c.UsageLimit, c.FirstOrderOnly, c.Public)
		if err != nil {
			return fmt.Errorf("seed coupon %s: %w", c.Code, err)
		}
	}

	return nil
}
