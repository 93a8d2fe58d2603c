package services

import (
	"context"
	"testing"

	"frushh/models"
	"frushh/utils"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ledger := newMemLedger()
	svc := NewAuthService(ledger, ledger, ledger, testr.New(t))
	svc.randNum = func() int { return 42 }
	ctx := context.Background()

	reg, err := svc.Register(ctx, models.RegisterRequest{Email: " Asha@Example.com", Password: "secret1", Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", reg.User.Email)
	assert.Equal(t, models.RoleCustomer, reg.User.Role)
	assert.Equal(t, "ASHA42", reg.ReferralCode)
	assert.NotEqual(t, "secret1", ledger.users[reg.User.ID].Password)
	assert.True(t, ledger.accounts[reg.User.ID])

	claims, err := utils.ValidateToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)

	_, err = svc.Register(ctx, models.RegisterRequest{Email: "asha@example.com", Password: "other12", Name: "Asha"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	login, err := svc.Login(ctx, models.LoginRequest{Email: "ASHA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterIssuesReferralCode(t *testing.T) {
	ledger := newMemLedger()
	svc := NewAuthService(ledger, ledger, ledger, testr.New(t))
	ctx := context.Background()

	ledger.referralCodes["PRIYAS7"] = &models.ReferralCode{ID: 1, UserID: 99, Code: "PRIYAS7", IsActive: true}
	nums := []int{7, 7, 31}
	svc.randNum = func() int { n := nums[0]; nums = nums[1:]; return n }

	reg, err := svc.Register(ctx, models.RegisterRequest{Email: "priya.sharma_91@example.com", Password: "secret1", Name: "Priya"})
	require.NoError(t, err)
	assert.Equal(t, "PRIYAS31", reg.ReferralCode)
	assert.Empty(t, nums)

	code := ledger.referralCodes["PRIYAS31"]
	require.NotNil(t, code)
	assert.Equal(t, reg.User.ID, code.UserID)
	assert.Equal(t, 20, code.DiscountPercent)
	assert.Equal(t, 25, code.MaxDiscount)

	// A friend can redeem the new code; its owner cannot.
	discounts := NewDiscountService(ledger)
	friend := models.Customer{ID: reg.User.ID + 1, Name: "Ravi"}
	d, err := discounts.Resolve(ctx, "priyas31", 188, friend)
	require.NoError(t, err)
	assert.Equal(t, 25, d.DiscountAmount())

	_, err = discounts.Resolve(ctx, "PRIYAS31", 188, models.Customer{ID: reg.User.ID})
	assert.ErrorIs(t, err, ErrSelfReferral)
}

func TestAuthService_RegisterSurvivesReferralCollisions(t *testing.T) {
	ledger := newMemLedger()
	svc := NewAuthService(ledger, ledger, ledger, testr.New(t))
	svc.randNum = func() int { return 5 }
	ledger.referralCodes["FRUSHH5"] = &models.ReferralCode{ID: 1, UserID: 99, Code: "FRUSHH5", IsActive: true}

	reg, err := svc.Register(context.Background(), models.RegisterRequest{Email: "42@example.com", Password: "secret1", Name: "Guest"})
	require.NoError(t, err)
	assert.Empty(t, reg.ReferralCode)
	assert.NotEmpty(t, reg.Token)
	assert.Len(t, ledger.referralCodes, 1)
}

func TestReferralPrefix(t *testing.T) {
	tests := map[string]string{
		"asha@example.com":            "ASHA",
		"priya.sharma_91@example.com": "PRIYAS",
		"Raj.K@example.com":           "RAJK",
		"1234@example.com":            "FRUSHH",
		"zoë@example.com":             "ZO",
	}
	for email, want := range tests {
		assert.Equal(t, want, referralPrefix(email), email)
	}
}

func TestCustomerService_Identify(t *testing.T) {
	ledger := newMemLedger()
	ledger.users[1] = &models.User{ID: 1, Name: "Asha", Email: "asha@example.com", Phone: "9876543210"}
	ledger.multipliers[1] = 1.5
	svc := NewCustomerService(ledger)

	c, err := svc.Identify(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1.5, c.TierMultiplier)
	assert.True(t, c.IsFirstOrder)

	// A marker recorded under the same phone from another account counts.
	require.NoError(t, ledger.RecordFirstOrder(context.Background(), "other@example.com", "9876543210"))
	c, err = svc.Identify(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, c.IsFirstOrder)

	_, err = svc.Identify(context.Background(), 404)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
