package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gadgetpasal/backend/internal/model"
)

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]model.Order
	now    func() time.Time
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[uuid.UUID]model.Order),
		now:    time.Now,
	}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.New()
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	now := r.now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
	}

	r.orders[order.ID] = copyOrder(*order)
	return nil
}

func (r *MemoryOrderRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	o = copyOrder(o)
	return &o, nil
}

func (r *MemoryOrderRepository) List(_ context.Context) ([]model.Order, error) {
	return r.filter(func(model.Order) bool { return true }), nil
}

func (r *MemoryOrderRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Order, error) {
	return r.filter(func(o model.Order) bool { return o.UserID == userID }), nil
}

func (r *MemoryOrderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = r.now()
	r.orders[id] = o
	return nil
}

func (r *MemoryOrderRepository) CountByStatus(_ context.Context) (map[model.OrderStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[model.OrderStatus]int)
	for _, o := range r.orders {
		counts[o.Status]++
	}
	return counts, nil
}

func (r *MemoryOrderRepository) Revenue(_ context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, o := range r.orders {
		if o.Status != model.OrderStatusCancelled {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}

func (r *MemoryOrderRepository) filter(keep func(model.Order) bool) []model.Order {
	r.mu.RLock()
	out := []model.Order{}
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, copyOrder(o))
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func copyOrder(o model.Order) model.Order {
	o.Items = append([]model.OrderItem{}, o.Items...)
	return o
}
