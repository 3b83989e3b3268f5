package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/skylark-hq/skylark/internal/events"
	"github.com/skylark-hq/skylark/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRepo struct {
	saved   [][]models.Order
	initial []models.Order
}

func (m *memoryRepo) Load(_ context.Context) ([]models.Order, error) {
	return m.initial, nil
}

func (m *memoryRepo) Save(_ context.Context, orders []models.Order) error {
	snapshot := make([]models.Order, len(orders))
	copy(snapshot, orders)
	m.saved = append(m.saved, snapshot)
	return nil
}

type captureSink struct {
	topics   []string
	messages [][]byte
}

func (c *captureSink) WriteMessage(topic string, msg []byte) error {
	c.topics = append(c.topics, topic)
	c.messages = append(c.messages, msg)
	return nil
}

func (c *captureSink) Close() error { return nil }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	menu, ingredients, recipes := availabilityFixture()
	return New(menu, ingredients, recipes, zap.NewNop().Sugar())
}

func takeaway() models.CustomerInfo {
	return models.CustomerInfo{Name: "Asha", Phone: "9876543210", ServiceType: models.ServiceTakeaway}
}

func TestEngineAddToCartGuards(t *testing.T) {
	eng := newTestEngine(t)

	require.NoError(t, eng.AddToCart("chai"))
	assert.Equal(t, 1, CartCount(eng.Cart()))

	assert.ErrorIs(t, eng.AddToCart("ghost"), ErrItemNotFound)

	require.NoError(t, eng.ToggleIngredientStock("milk"))
	assert.ErrorIs(t, eng.AddToCart("chai"), ErrItemUnavailable)
}

func TestEnginePlaceOrderClearsCartOnSuccess(t *testing.T) {
	eng := newTestEngine(t)
	require.NoError(t, eng.AddToCart("chai"))
	require.NoError(t, eng.AddToCart("omelette"))

	order, err := eng.PlaceOrder(context.Background(), takeaway())
	require.NoError(t, err)

	assert.Empty(t, eng.Cart())
	assert.Len(t, order.Items, 2)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestEnginePlaceOrderKeepsCartOnFailure(t *testing.T) {
	eng := newTestEngine(t)
	require.NoError(t, eng.AddToCart("chai"))

	_, err := eng.PlaceOrder(context.Background(), models.CustomerInfo{Phone: "1", ServiceType: models.ServiceTakeaway})
	assert.ErrorIs(t, err, ErrMissingName)
	assert.Equal(t, 1, CartCount(eng.Cart()))
}

func TestEnginePlaceOrderLines(t *testing.T) {
	eng := newTestEngine(t)

	order, err := eng.PlaceOrderLines(context.Background(), []OrderLine{
		{ItemID: "chai", Quantity: 2},
		{ItemID: "omelette", Quantity: 1},
		{ItemID: "room", Quantity: 0}, // sub-minimum quantity is dropped
	}, takeaway())
	require.NoError(t, err)

	assert.Len(t, order.Items, 2)
	assert.Equal(t, 2*30+80, order.TotalAmount)
}

func TestEnginePlaceOrderLinesRejectsUnknownAndUnavailable(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.PlaceOrderLines(context.Background(), []OrderLine{{ItemID: "ghost", Quantity: 1}}, takeaway())
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, eng.ToggleIngredientStock("eggs"))
	_, err = eng.PlaceOrderLines(context.Background(), []OrderLine{{ItemID: "omelette", Quantity: 1}}, takeaway())
	assert.ErrorIs(t, err, ErrItemUnavailable)

	assert.Empty(t, eng.Orders())
}

func TestEngineOrdersNewestFirst(t *testing.T) {
	eng := newTestEngine(t)

	first, err := eng.PlaceOrderLines(context.Background(), []OrderLine{{ItemID: "chai", Quantity: 1}}, takeaway())
	require.NoError(t, err)
	second, err := eng.PlaceOrderLines(context.Background(), []OrderLine{{ItemID: "omelette", Quantity: 1}}, takeaway())
	require.NoError(t, err)

	orders := eng.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestEngineUpdateStatus(t *testing.T) {
	eng := newTestEngine(t)
	order, err := eng.PlaceOrderLines(context.Background(), []OrderLine{{ItemID: "chai", Quantity: 1}}, takeaway())
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, eng.UpdateStatus(ctx, order.ID, models.StatusCompleted), ErrIllegalTransition)

	require.NoError(t, eng.UpdateStatus(ctx, order.ID, models.StatusPreparing))
	require.NoError(t, eng.UpdateStatus(ctx, order.ID, models.StatusReady))
	require.NoError(t, eng.UpdateStatus(ctx, order.ID, models.StatusCompleted))

	assert.ErrorIs(t, eng.UpdateStatus(ctx, order.ID, models.StatusCancelled), ErrIllegalTransition)
	assert.ErrorIs(t, eng.UpdateStatus(ctx, "ghost", models.StatusPreparing), ErrOrderNotFound)
	assert.ErrorIs(t, eng.UpdateStatus(ctx, order.ID, models.OrderStatus("bogus")), ErrInvalidStatus)
}

func TestEngineDeleteOrder(t *testing.T) {
	eng := newTestEngine(t)
	order, err := eng.PlaceOrderLines(context.Background(), []OrderLine{{ItemID: "chai", Quantity: 1}}, takeaway())
	require.NoError(t, err)

	require.NoError(t, eng.DeleteOrder(context.Background(), order.ID))
	assert.Empty(t, eng.Orders())
	assert.ErrorIs(t, eng.DeleteOrder(context.Background(), order.ID), ErrOrderNotFound)
}

func TestEngineToggleIngredientStockPropagates(t *testing.T) {
	eng := newTestEngine(t)

	require.NoError(t, eng.ToggleIngredientStock("eggs"))
	for _, item := range eng.Menu() {
		if item.ID == "omelette" {
			assert.False(t, item.Available)
			assert.Equal(t, []string{"Eggs"}, item.MissingIngredients)
		}
	}

	require.NoError(t, eng.ToggleIngredientStock("eggs"))
	for _, item := range eng.Menu() {
		if item.ID == "omelette" {
			assert.True(t, item.Available)
		}
	}

	assert.ErrorIs(t, eng.ToggleIngredientStock("ghost"), ErrIngredientNotFound)
}

func TestEngineUpsertMenuItem(t *testing.T) {
	eng := newTestEngine(t)

	eng.UpsertMenuItem(models.MenuItem{ID: "lassi", Name: "Sweet Lassi", Price: 60, PrepTime: models.PrepQuick})
	menu := eng.Menu()
	require.Len(t, menu, 4)
	assert.True(t, menu[3].Available) // no recipe, always available

	eng.UpsertMenuItem(models.MenuItem{ID: "lassi", Name: "Sweet Lassi", Price: 70, PrepTime: models.PrepQuick})
	menu = eng.Menu()
	require.Len(t, menu, 4)
	assert.Equal(t, 70, menu[3].Price)
}

func TestEngineDeleteMenuItem(t *testing.T) {
	eng := newTestEngine(t)

	require.NoError(t, eng.DeleteMenuItem("room"))
	assert.Len(t, eng.Menu(), 2)
	assert.ErrorIs(t, eng.DeleteMenuItem("room"), ErrItemNotFound)
}

func TestEnginePersistsThroughRepository(t *testing.T) {
	eng := newTestEngine(t)
	repo := &memoryRepo{initial: []models.Order{{ID: "old", Status: models.StatusCompleted}}}
	require.NoError(t, eng.AttachRepository(context.Background(), repo))

	assert.Len(t, eng.Orders(), 1)

	_, err := eng.PlaceOrderLines(context.Background(), []OrderLine{{ItemID: "chai", Quantity: 1}}, takeaway())
	require.NoError(t, err)

	require.Len(t, repo.saved, 1)
	assert.Len(t, repo.saved[0], 2)
	assert.Equal(t, "old", repo.saved[0][1].ID)
}

func TestEngineEmitsLifecycleEvents(t *testing.T) {
	eng := newTestEngine(t)
	sink := &captureSink{}
	eng.AttachSink(sink, "orders.test")

	order, err := eng.PlaceOrderLines(context.Background(), []OrderLine{{ItemID: "chai", Quantity: 1}}, takeaway())
	require.NoError(t, err)
	require.NoError(t, eng.UpdateStatus(context.Background(), order.ID, models.StatusCancelled))
	require.NoError(t, eng.DeleteOrder(context.Background(), order.ID))

	require.Len(t, sink.messages, 3)
	assert.Equal(t, "orders.test", sink.topics[0])

	var envelope events.Envelope
	require.NoError(t, json.Unmarshal(sink.messages[0], &envelope))
	assert.Equal(t, events.EventOrderPlaced, envelope.Type)
	assert.Equal(t, order.ID, envelope.Order.ID)

	require.NoError(t, json.Unmarshal(sink.messages[1], &envelope))
	assert.Equal(t, events.EventOrderStatusChanged, envelope.Type)
	assert.Equal(t, models.StatusCancelled, envelope.Order.Status)

	require.NoError(t, json.Unmarshal(sink.messages[2], &envelope))
	assert.Equal(t, events.EventOrderDeleted, envelope.Type)
}
