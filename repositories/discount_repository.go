package repositories

import (
	"context"
	"fmt"

	"frushh/models"
)

type DiscountRepo struct {
	db DBTX
}

func NewDiscountRepository(db DBTX) *DiscountRepo {
	return &DiscountRepo{db: db}
}

const couponColumns = `id, code, title, description, discount_type, discount_value, min_order, max_discount,
	usage_limit, used_count, is_first_order_only, is_active, is_public, created_at`

func scanCoupon(row interface{ Scan(...any) error }) (*models.Coupon, error) {
	var c models.Coupon
	err := row.Scan(
		&c.ID, &c.Code, &c.Title, &c.Description, &c.DiscountType, &c.DiscountValue, &c.MinOrder,
		&c.MaxDiscount, &c.UsageLimit, &c.UsedCount, &c.IsFirstOrderOnly, &c.IsActive, &c.IsPublic,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *DiscountRepo) FindActiveCoupon(ctx context.Context, code string) (*models.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1 AND is_active = true`
	coupon, err := scanCoupon(r.db.QueryRow(ctx, query, code))
	if err != nil {
		return nil, translate(err)
	}
	return coupon, nil
}

func (r *DiscountRepo) FindActiveReferralCode(ctx context.Context, code string) (*models.ReferralCode, error) {
	query := `
		SELECT rc.id, rc.user_id, COALESCE(u.name, ''), rc.code, rc.discount_percent, rc.max_discount,
		       rc.times_used, rc.is_active, rc.created_at
		FROM referral_codes rc
		LEFT JOIN users u ON u.id = rc.user_id
		WHERE rc.code = $1 AND rc.is_active = true
	`

	var rc models.ReferralCode
	err := r.db.QueryRow(ctx, query, code).Scan(
		&rc.ID, &rc.UserID, &rc.OwnerName, &rc.Code, &rc.DiscountPercent, &rc.MaxDiscount,
		&rc.TimesUsed, &rc.IsActive, &rc.CreatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &rc, nil
}

func (r *DiscountRepo) ListPublicCoupons(ctx context.Context) ([]models.Coupon, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE is_active = true AND is_public = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := []models.Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, *c)
	}
	return coupons, rows.Err()
}

func (r *DiscountRepo) CreateReferralCode(ctx context.Context, rc *models.ReferralCode) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO referral_codes (user_id, code, discount_percent, max_discount)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_active, created_at`,
		rc.UserID, rc.Code, rc.DiscountPercent, rc.MaxDiscount,
	).Scan(&rc.ID, &rc.IsActive, &rc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "referral_codes_code_key") {
			return ErrDuplicate
		}
		return fmt.Errorf("insert referral code: %w", err)
	}
	return nil
}

func (r *DiscountRepo) RecordCouponUsage(ctx context.Context, couponID, userID int, orderID string, discount int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin coupon usage: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO coupon_usage (coupon_id, user_id, order_id, discount_applied)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (coupon_id, order_id) DO NOTHING`,
		couponID, userID, orderID, discount)
	if err != nil {
		return fmt.Errorf("insert coupon usage: %w", err)
	}

	if tag.RowsAffected() == 1 {
		if _, err := tx.Exec(ctx, `UPDATE coupons SET used_count = used_count + 1 WHERE id = $1`, couponID); err != nil {
			return fmt.Errorf("increment coupon used_count: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *DiscountRepo) RecordReferral(ctx context.Context, d models.ReferralDiscount, referredUserID int, orderID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin referral tracking: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`INSERT INTO referral_tracking
		   (referral_code_id, referrer_user_id, referred_user_id, referred_discount, status, referred_order_id)
		 VALUES ($1, $2, $3, $4, 'completed', $5)
		 ON CONFLICT (referral_code_id, referred_order_id) DO NOTHING`,
		d.ReferralCodeID, d.ReferrerUserID, referredUserID, d.Amount, orderID)
	if err != nil {
		return fmt.Errorf("insert referral tracking: %w", err)
	}

	if tag.RowsAffected() == 1 {
		if _, err := tx.Exec(ctx, `UPDATE referral_codes SET times_used = times_used + 1 WHERE id = $1`, d.ReferralCodeID); err != nil {
			return fmt.Errorf("increment referral times_used: %w", err)
		}
	}

	return tx.Commit(ctx)
}
