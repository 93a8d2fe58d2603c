package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"frushh/models"
	"frushh/repositories"
)

type memOrders struct {
	mu      sync.Mutex
	byKey   map[string]*models.Order
	history map[string][]models.OrderStatusHistory
	creates int
}

func newMemOrders() *memOrders {
	return &memOrders{byKey: map[string]*models.Order{}, history: map[string][]models.OrderStatusHistory{}}
}

func (m *memOrders) Create(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	key := idempotencyScope(order.UserID, order.IdempotencyKey)
	if _, ok := m.byKey[key]; ok {
		return repositories.ErrDuplicate
	}
	stored := *order
	m.byKey[key] = &stored
	m.history[order.ID] = append(m.history[order.ID], models.OrderStatusHistory{
		OrderID: order.ID, Status: order.Status, Notes: "Order placed successfully",
	})
	return nil
}

func (m *memOrders) FindByIdempotencyKey(_ context.Context, userID int, key string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.byKey[idempotencyScope(userID, key)]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *memOrders) FindByNumber(_ context.Context, number string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.byKey {
		if o.OrderNumber == number {
			cp := *o
			return &cp, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memOrders) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	_, err := m.FindByNumber(ctx, number)
	return err == nil, nil
}

func (m *memOrders) List(_ context.Context, filter models.OrderFilter) ([]models.Order, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := []models.Order{}
	for _, o := range m.byKey {
		if filter.UserID != nil && o.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		all = append(all, *o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].OrderNumber < all[j].OrderNumber })
	total := len(all)
	end := min(filter.Offset+filter.Limit, total)
	if filter.Offset >= total {
		return []models.Order{}, total, nil
	}
	return all[filter.Offset:end], total, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, orderID string, from, to models.OrderStatus, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.byKey {
		if o.ID != orderID {
			continue
		}
		if o.Status != from {
			return repositories.ErrConflict
		}
		o.Status = to
		m.history[orderID] = append(m.history[orderID], models.OrderStatusHistory{OrderID: orderID, Status: to, Notes: notes})
		return nil
	}
	return repositories.ErrNotFound
}

func (m *memOrders) StatusHistory(_ context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.OrderStatusHistory(nil), m.history[orderID]...), nil
}

func (m *memOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byKey)
}

// memLedger records side effects the way the database does: one row per
// (record, order) pair, counters bumped only for new rows.
type memLedger struct {
	mu            sync.Mutex
	couponUsage   map[string]int
	couponUsed    map[int]int
	referrals     map[string]int
	referralUsed  map[int]int
	points        map[string]int
	balance       map[int]int
	firstOrders   map[string]bool
	accounts      map[int]bool
	coupons       map[string]*models.Coupon
	referralCodes map[string]*models.ReferralCode
	users         map[int]*models.User
	multipliers   map[int]float64
}

func newMemLedger() *memLedger {
	return &memLedger{
		couponUsage:   map[string]int{},
		couponUsed:    map[int]int{},
		referrals:     map[string]int{},
		referralUsed:  map[int]int{},
		points:        map[string]int{},
		balance:       map[int]int{},
		firstOrders:   map[string]bool{},
		accounts:      map[int]bool{},
		coupons:       map[string]*models.Coupon{},
		referralCodes: map[string]*models.ReferralCode{},
		users:         map[int]*models.User{},
		multipliers:   map[int]float64{},
	}
}

func (l *memLedger) FindActiveCoupon(_ context.Context, code string) (*models.Coupon, error) {
	if c, ok := l.coupons[code]; ok {
		cp := *c
		cp.UsedCount += l.couponUsed[c.ID]
		return &cp, nil
	}
	return nil, repositories.ErrNotFound
}

func (l *memLedger) FindActiveReferralCode(_ context.Context, code string) (*models.ReferralCode, error) {
	if r, ok := l.referralCodes[code]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, repositories.ErrNotFound
}

func (l *memLedger) ListPublicCoupons(context.Context) ([]models.Coupon, error) {
	out := []models.Coupon{}
	for _, c := range l.coupons {
		if c.IsPublic {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (l *memLedger) CreateReferralCode(_ context.Context, rc *models.ReferralCode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.referralCodes[rc.Code]; ok {
		return repositories.ErrDuplicate
	}
	rc.ID = len(l.referralCodes) + 100
	rc.IsActive = true
	stored := *rc
	l.referralCodes[rc.Code] = &stored
	return nil
}

func (l *memLedger) RecordCouponUsage(_ context.Context, couponID, _ int, orderID string, discount int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := fmt.Sprintf("%d/%s", couponID, orderID)
	if _, ok := l.couponUsage[key]; ok {
		return nil
	}
	l.couponUsage[key] = discount
	l.couponUsed[couponID]++
	return nil
}

func (l *memLedger) RecordReferral(_ context.Context, d models.ReferralDiscount, _ int, orderID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := fmt.Sprintf("%d/%s", d.ReferralCodeID, orderID)
	if _, ok := l.referrals[key]; ok {
		return nil
	}
	l.referrals[key] = d.Amount
	l.referralUsed[d.ReferralCodeID]++
	return nil
}

func (l *memLedger) EnsureAccount(_ context.Context, userID int) error {
	l.accounts[userID] = true
	return nil
}

func (l *memLedger) CreditOrderPoints(_ context.Context, userID int, orderID string, points int, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := fmt.Sprintf("%d/%s", userID, orderID)
	if _, ok := l.points[key]; ok {
		return nil
	}
	l.points[key] = points
	l.balance[userID] += points
	return nil
}

func (l *memLedger) Create(_ context.Context, user *models.User) error {
	for _, u := range l.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = len(l.users) + 1
	l.users[user.ID] = user
	return nil
}

func (l *memLedger) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range l.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (l *memLedger) FindByID(_ context.Context, id int) (*models.User, error) {
	if u, ok := l.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (l *memLedger) TierMultiplier(_ context.Context, userID int) (float64, error) {
	if m, ok := l.multipliers[userID]; ok {
		return m, nil
	}
	return 1, nil
}

func (l *memLedger) IsFirstTimeCustomer(_ context.Context, _ int, email, phone string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.firstOrders[email] && !l.firstOrders[phone], nil
}

func (l *memLedger) RecordFirstOrder(_ context.Context, email, phone string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.firstOrders[email] = true
	if phone != "" {
		l.firstOrders[phone] = true
	}
	return nil
}

type memCatalog struct {
	products map[int]*models.Product
	addons   map[int]models.CatalogAddon
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		products: map[int]*models.Product{
			1: {ID: 1, Name: "Chocolate Peanut Butter", Price250ml: 79, Price350ml: 99, Protein250ml: 15, Protein350ml: 22, IsActive: true},
			2: {ID: 2, Name: "Mango Greek Yogurt", Price250ml: 89, Price350ml: 109, Protein250ml: 18, Protein350ml: 25, IsActive: false},
		},
		addons: map[int]models.CatalogAddon{
			1: {ID: 1, Name: "Chia Seeds", Price: 10, IsActive: true},
			2: {ID: 2, Name: "Extra Whey Scoop", Price: 30, IsActive: false},
		},
	}
}

func (c *memCatalog) GetProduct(_ context.Context, id int) (*models.Product, error) {
	if p, ok := c.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repositories.ErrNotFound
}

func (c *memCatalog) GetAddons(_ context.Context, ids []int) ([]models.CatalogAddon, error) {
	out := []models.CatalogAddon{}
	for _, id := range ids {
		if a, ok := c.addons[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubLocker struct {
	held     map[string]bool
	acquired []string
}

func (s *stubLocker) Acquire(_ context.Context, key string) (string, bool, error) {
	if s.held[key] {
		return "", false, nil
	}
	s.acquired = append(s.acquired, key)
	return "token-" + key, true, nil
}

func (s *stubLocker) Release(context.Context, string, string) error { return nil }

// scenarioCart is 1x 250ml at 79 plus 1x 350ml at 99 with a 10 add-on.
func scenarioCart() models.Cart {
	return models.Cart{Lines: []models.CartLine{
		{ID: "a", ProductID: 1, ProductName: "Chocolate Peanut Butter", Size: models.Size250ml, UnitPrice: 79, Protein: 15, Quantity: 1, Addons: []models.Addon{}},
		{ID: "b", ProductID: 1, ProductName: "Chocolate Peanut Butter", Size: models.Size350ml, UnitPrice: 99, Protein: 22, Quantity: 1,
			Addons: []models.Addon{{ID: 1, Name: "Chia Seeds", Price: 10}}},
	}}
}
