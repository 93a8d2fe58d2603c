package services

import (
	"context"
	"errors"
	"fmt"

	"frushh/models"
	"frushh/repositories"
)

type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// Identify loads the checkout view of a user: contact snapshot, points tier
// and whether this would be their first order.
func (s *CustomerService) Identify(ctx context.Context, userID int) (*models.Customer, error) {
	user, err := s.customerRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}

	multiplier, err := s.customerRepo.TierMultiplier(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load tier multiplier: %w", err)
	}

	firstOrder, err := s.customerRepo.IsFirstTimeCustomer(ctx, userID, user.Email, user.Phone)
	if err != nil {
		return nil, fmt.Errorf("check first order: %w", err)
	}

	return &models.Customer{
		ID:             user.ID,
		Name:           user.Name,
		Phone:          user.Phone,
		Email:          user.Email,
		TierMultiplier: multiplier,
		IsFirstOrder:   firstOrder,
	}, nil
}
