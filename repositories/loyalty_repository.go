package repositories

import (
	"context"
	"fmt"
	"time"
)

type LoyaltyRepo struct {
	db DBTX
}

func NewLoyaltyRepository(db DBTX) *LoyaltyRepo {
	return &LoyaltyRepo{db: db}
}

func (r *LoyaltyRepo) EnsureAccount(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO loyalty_points (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	return err
}

func (r *LoyaltyRepo) CreditOrderPoints(ctx context.Context, userID int, orderID string, points int, description string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin points credit: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO points_transactions (user_id, points, type, description, reference_id)
		 VALUES ($1, $2, 'order', $3, $4)
		 ON CONFLICT (user_id, reference_id, type) DO NOTHING`,
		userID, points, description, orderID)
	if err != nil {
		return fmt.Errorf("insert points transaction: %w", err)
	}

	if tag.RowsAffected() == 1 {
		_, err = tx.Exec(ctx, `
			INSERT INTO loyalty_points (user_id, points_balance, total_earned, updated_at)
			VALUES ($1, $2, $2, $3)
			ON CONFLICT (user_id) DO UPDATE
			SET points_balance = loyalty_points.points_balance + EXCLUDED.points_balance,
			    total_earned   = loyalty_points.total_earned + EXCLUDED.total_earned,
			    updated_at     = EXCLUDED.updated_at`,
			userID, points, time.Now())
		if err != nil {
			return fmt.Errorf("update loyalty balance: %w", err)
		}
	}

	return tx.Commit(ctx)
}
