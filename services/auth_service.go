package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"

	"frushh/models"
	"frushh/repositories"
	"frushh/utils"

	"github.com/go-logr/logr"
)

const (
	referralCodeAttempts = 5
	referralPrefixLen    = 6
	referralFallback     = "FRUSHH"
)

type AuthService struct {
	customerRepo repositories.CustomerRepository
	discountRepo repositories.DiscountRepository
	loyaltyRepo  repositories.LoyaltyRepository
	log          logr.Logger
	randNum      func() int
}

func NewAuthService(customerRepo repositories.CustomerRepository, discountRepo repositories.DiscountRepository, loyaltyRepo repositories.LoyaltyRepository, logger logr.Logger) *AuthService {
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	return &AuthService{
		customerRepo: customerRepo,
		discountRepo: discountRepo,
		loyaltyRepo:  loyaltyRepo,
		log:          logger.WithName("auth"),
		randNum:      func() int { return rand.IntN(100) },
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existingUser, err := s.customerRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleCustomer,
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
	}

	if err := s.customerRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	// Points are credited at checkout; a missing account only costs the
	// customer their tier multiplier until it is created.
	if err := s.loyaltyRepo.EnsureAccount(ctx, user.ID); err != nil {
		s.log.Error(err, "create loyalty account", "user", user.ID)
	}

	referral, err := s.issueReferralCode(ctx, user)
	if err != nil {
		s.log.Error(err, "create referral code", "user", user.ID)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	resp := &models.LoginResponse{
		Token: token,
		User:  *user,
	}
	if referral != nil {
		resp.ReferralCode = referral.Code
	}
	return resp, nil
}

// issueReferralCode gives a new customer their own code, retrying with a
// fresh number when the generated code is taken.
func (s *AuthService) issueReferralCode(ctx context.Context, user *models.User) (*models.ReferralCode, error) {
	prefix := referralPrefix(user.Email)

	var err error
	for range referralCodeAttempts {
		code := &models.ReferralCode{
			UserID:          user.ID,
			OwnerName:       user.Name,
			Code:            prefix + strconv.Itoa(s.randNum()),
			DiscountPercent: models.ReferralDiscountPercent,
			MaxDiscount:     models.ReferralMaxDiscount,
		}
		err = s.discountRepo.CreateReferralCode(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, repositories.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, err
}

// referralPrefix is the first letters of the email's local part, uppercased.
func referralPrefix(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	for _, r := range local {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		if b.Len() == referralPrefixLen {
			break
		}
	}
	if b.Len() == 0 {
		return referralFallback
	}
	return b.String()
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.customerRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}
