package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/skylark-hq/skylark/internal/events"
	"github.com/skylark-hq/skylark/internal/models"
	"github.com/skylark-hq/skylark/internal/repositories"
	"go.uber.org/zap"
)

// OrderLine is one requested (item id, quantity) pair when an order is placed
// directly, without going through the kiosk cart.
type OrderLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Engine owns the menu, ingredient, order and cart state and serializes all
// mutations. Collections are replaced wholesale, never mutated in place, so
// availability recomputation always runs over a consistent snapshot and a
// status transition is decided against the committed order list.
type Engine struct {
	mu          sync.Mutex
	menu        []models.MenuItem
	ingredients []models.Ingredient
	recipes     models.RecipeBook
	orders      []models.Order
	cart        Cart

	repo   repositories.OrderRepository
	sink   events.Sink
	topic  string
	logger *zap.SugaredLogger
	now    func() time.Time
}

func New(menu []models.MenuItem, ingredients []models.Ingredient, recipes models.RecipeBook, logger *zap.SugaredLogger) *Engine {
	return &Engine{
		menu:        ResolveAvailability(menu, ingredients, recipes),
		ingredients: ingredients,
		recipes:     recipes,
		topic:       "skylark.orders",
		logger:      logger,
		now:         time.Now,
	}
}

// AttachRepository wires durable order storage and loads the persisted list.
func (e *Engine) AttachRepository(ctx context.Context, repo repositories.OrderRepository) error {
	orders, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load persisted orders: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.repo = repo
	e.orders = orders
	return nil
}

// AttachSink wires an event sink; order lifecycle events are published to it.
func (e *Engine) AttachSink(sink events.Sink, topic string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = sink
	if topic != "" {
		e.topic = topic
	}
}

func (e *Engine) Menu() []models.MenuItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	menu := make([]models.MenuItem, len(e.menu))
	copy(menu, e.menu)
	return menu
}

func (e *Engine) Ingredients() []models.Ingredient {
	e.mu.Lock()
	defer e.mu.Unlock()
	ingredients := make([]models.Ingredient, len(e.ingredients))
	copy(ingredients, e.ingredients)
	return ingredients
}

func (e *Engine) Orders() []models.Order {
	e.mu.Lock()
	defer e.mu.Unlock()
	orders := make([]models.Order, len(e.orders))
	copy(orders, e.orders)
	return orders
}

func (e *Engine) Cart() Cart {
	e.mu.Lock()
	defer e.mu.Unlock()
	cart := make(Cart, len(e.cart))
	copy(cart, e.cart)
	return cart
}

func (e *Engine) CartTotal() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CartTotal(e.cart)
}

// AddToCart adds one unit of the item to the kiosk cart. Unlike the pure
// cart function, the engine enforces the availability guard and rejects
// unknown or unavailable items.
func (e *Engine) AddToCart(itemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, err := e.findMenuItem(itemID)
	if err != nil {
		return err
	}
	if !item.Available {
		return ErrItemUnavailable
	}
	e.cart = AddToCart(e.cart, item)
	return nil
}

func (e *Engine) RemoveFromCart(itemID string, removeAll bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = RemoveFromCart(e.cart, itemID, removeAll)
}

func (e *Engine) UpdateQuantity(itemID string, delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = UpdateQuantity(e.cart, itemID, delta)
}

func (e *Engine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = ClearCart()
}

// PlaceOrder creates a pending order from the kiosk cart. The cart is cleared
// only after the order is committed, so a validation failure never loses the
// customer's selections.
func (e *Engine) PlaceOrder(ctx context.Context, info models.CustomerInfo) (models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, err := NewOrder(e.cart, info, e.now())
	if err != nil {
		return models.Order{}, err
	}

	e.commitOrder(ctx, order)
	e.cart = ClearCart()
	return order, nil
}

// PlaceOrderLines creates an order from explicit (item, quantity) lines, the
// path the HTTP surface uses. Lines referencing unknown or unavailable items
// are rejected before any state changes.
func (e *Engine) PlaceOrderLines(ctx context.Context, lines []OrderLine, info models.CustomerInfo) (models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var cart Cart
	for _, line := range lines {
		item, err := e.findMenuItem(line.ItemID)
		if err != nil {
			return models.Order{}, err
		}
		if !item.Available {
			return models.Order{}, ErrItemUnavailable
		}
		if line.Quantity < 1 {
			continue
		}
		cart = append(cart, models.CartItem{MenuItem: item, Quantity: line.Quantity})
	}

	order, err := NewOrder(cart, info, e.now())
	if err != nil {
		return models.Order{}, err
	}

	e.commitOrder(ctx, order)
	return order, nil
}

// UpdateStatus applies a status transition if it is legal against the
// committed state. Illegal transitions return ErrIllegalTransition and leave
// the order untouched.
func (e *Engine) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, o := range e.orders {
		if o.ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrOrderNotFound
	}
	if !CanTransition(e.orders[idx].Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, e.orders[idx].Status, status)
	}

	next := make([]models.Order, len(e.orders))
	copy(next, e.orders)
	next[idx].Status = status
	e.orders = next

	e.persist(ctx)
	e.emit(events.EventOrderStatusChanged, next[idx])
	return nil
}

// DeleteOrder removes an order record permanently, regardless of status.
// Confirmation is the caller's responsibility.
func (e *Engine) DeleteOrder(ctx context.Context, orderID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := make([]models.Order, 0, len(e.orders))
	var deleted *models.Order
	for _, o := range e.orders {
		if o.ID == orderID {
			o := o
			deleted = &o
			continue
		}
		next = append(next, o)
	}
	if deleted == nil {
		return ErrOrderNotFound
	}
	e.orders = next

	e.persist(ctx)
	e.emit(events.EventOrderDeleted, *deleted)
	return nil
}

// ToggleIngredientStock flips an ingredient's stock flag and recomputes menu
// availability from the new ingredient list.
func (e *Engine) ToggleIngredientStock(ingredientID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := make([]models.Ingredient, len(e.ingredients))
	copy(next, e.ingredients)
	found := false
	for i := range next {
		if next[i].ID == ingredientID {
			next[i].InStock = !next[i].InStock
			found = true
			break
		}
	}
	if !found {
		return ErrIngredientNotFound
	}

	e.ingredients = next
	e.menu = ResolveAvailability(e.menu, e.ingredients, e.recipes)
	return nil
}

// UpsertMenuItem saves a menu-editor change: replace by id when present,
// append otherwise. Availability is re-derived afterwards.
func (e *Engine) UpsertMenuItem(item models.MenuItem) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := make([]models.MenuItem, 0, len(e.menu)+1)
	replaced := false
	for _, m := range e.menu {
		if m.ID == item.ID {
			next = append(next, item)
			replaced = true
			continue
		}
		next = append(next, m)
	}
	if !replaced {
		next = append(next, item)
	}
	e.menu = ResolveAvailability(next, e.ingredients, e.recipes)
}

func (e *Engine) DeleteMenuItem(itemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := make([]models.MenuItem, 0, len(e.menu))
	found := false
	for _, m := range e.menu {
		if m.ID == itemID {
			found = true
			continue
		}
		next = append(next, m)
	}
	if !found {
		return ErrItemNotFound
	}
	e.menu = next
	return nil
}

// ReplaceMenu swaps in a full menu, used by CSV import. The import carries
// its own availability column, so no recompute runs until the next
// ingredient change.
func (e *Engine) ReplaceMenu(menu []models.MenuItem) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.menu = menu
}

func (e *Engine) findMenuItem(itemID string) (models.MenuItem, error) {
	for _, item := range e.menu {
		if item.ID == itemID {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrItemNotFound
}

// commitOrder prepends the order (newest first, matching the order board),
// persists and emits. Callers hold the lock.
func (e *Engine) commitOrder(ctx context.Context, order models.Order) {
	next := make([]models.Order, 0, len(e.orders)+1)
	next = append(next, order)
	next = append(next, e.orders...)
	e.orders = next

	e.persist(ctx)
	e.emit(events.EventOrderPlaced, order)
}

func (e *Engine) persist(ctx context.Context) {
	if e.repo == nil {
		return
	}
	if err := e.repo.Save(ctx, e.orders); err != nil {
		e.logger.Errorw("failed to persist order list", "error", err)
	}
}

func (e *Engine) emit(eventType string, order models.Order) {
	if e.sink == nil {
		return
	}
	msg, err := events.Marshal(eventType, order, e.now())
	if err != nil {
		e.logger.Errorw("failed to marshal event", "type", eventType, "error", err)
		return
	}
	if err := e.sink.WriteMessage(e.topic, msg); err != nil {
		e.logger.Errorw("failed to publish event", "type", eventType, "error", err)
	}
}
