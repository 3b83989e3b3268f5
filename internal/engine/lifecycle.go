package engine

import (
	"time"

	"github.com/lucsky/cuid"
	"github.com/skylark-hq/skylark/internal/models"
)

// CanTransition reports whether an order may move from one status to the
// other. Forward moves advance exactly one step; cancellation is allowed from
// any non-terminal state; completed and cancelled are terminal.
func CanTransition(from, to models.OrderStatus) bool {
	if !to.Valid() || from == to {
		return false
	}
	switch from {
	case models.StatusPending:
		return to == models.StatusPreparing || to == models.StatusCancelled
	case models.StatusPreparing:
		return to == models.StatusReady || to == models.StatusCancelled
	case models.StatusReady:
		return to == models.StatusCompleted || to == models.StatusCancelled
	case models.StatusCompleted, models.StatusCancelled:
		return false
	}
	return false
}

// ValidateCustomerInfo checks the fields required to place an order: name and
// phone always, table number for dine-in service.
func ValidateCustomerInfo(info models.CustomerInfo) error {
	if info.Name == "" {
		return ErrMissingName
	}
	if info.Phone == "" {
		return ErrMissingPhone
	}
	if !info.ServiceType.Valid() {
		return ErrInvalidService
	}
	if info.ServiceType == models.ServiceDineIn && info.TableNumber == "" {
		return ErrMissingTable
	}
	return nil
}

// NewOrder builds a pending order from a cart and customer info. The item
// list is snapshotted so later menu edits never reach back into placed
// orders; total and estimate are computed once and frozen. No state is
// touched on validation failure.
func NewOrder(cart Cart, info models.CustomerInfo, now time.Time) (models.Order, error) {
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if err := ValidateCustomerInfo(info); err != nil {
		return models.Order{}, err
	}
	if info.ServiceType != models.ServiceDineIn {
		info.TableNumber = ""
	}

	items := make([]models.CartItem, len(cart))
	copy(items, cart)

	return models.Order{
		ID:            cuid.New(),
		CustomerName:  info.Name,
		CustomerInfo:  info,
		Items:         items,
		Status:        models.StatusPending,
		TotalAmount:   CartTotal(cart),
		Timestamp:     models.NewMillis(now),
		EstimatedTime: EstimatePrepTime(cart),
	}, nil
}
