// Package simulator drives randomized order flow through the engine, useful
// for demoing the kitchen event stream and producing analytics fixtures.
package simulator

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/skylark-hq/skylark/internal/engine"
	"github.com/skylark-hq/skylark/internal/factories"
	"github.com/skylark-hq/skylark/internal/models"
	"go.uber.org/zap"
)

type Simulator struct {
	engine  *engine.Engine
	config  *models.Config
	logger  *zap.SugaredLogger
	rng     *rand.Rand
	factory *factories.CustomerFactory
}

func New(eng *engine.Engine, cfg *models.Config, logger *zap.SugaredLogger) *Simulator {
	return &Simulator{
		engine:  eng,
		config:  cfg,
		logger:  logger,
		rng:     rand.New(rand.NewSource(int64(cfg.Seed))),
		factory: &factories.CustomerFactory{},
	}
}

// Run places cfg.SimOrders random orders and walks each through its
// lifecycle. Roughly one order in ten gets cancelled along the way.
func (s *Simulator) Run(ctx context.Context) error {
	for i := 0; i < s.config.SimOrders; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lines := s.randomLines()
		info := s.factory.CreateCustomerInfo(s.rng)

		order, err := s.engine.PlaceOrderLines(ctx, lines, info)
		if err != nil {
			return fmt.Errorf("failed to place simulated order: %w", err)
		}
		s.logger.Infow("order placed",
			"order_id", order.ID,
			"customer", order.CustomerName,
			"total", order.TotalAmount,
			"estimated_minutes", order.EstimatedTime,
		)

		if err := s.advance(ctx, order); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulator) randomLines() []engine.OrderLine {
	items := factories.PickAvailable(s.engine.Menu(), s.rng.Intn(4)+1, s.rng)
	lines := make([]engine.OrderLine, 0, len(items))
	for _, item := range items {
		if s.config.VegOnly && !item.IsVeg {
			continue
		}
		lines = append(lines, engine.OrderLine{ItemID: item.ID, Quantity: s.rng.Intn(3) + 1})
	}
	if len(lines) == 0 {
		// veg-only filter can empty small picks; fall back to one veg item
		for _, item := range s.engine.Menu() {
			if item.Available && item.IsVeg {
				lines = append(lines, engine.OrderLine{ItemID: item.ID, Quantity: 1})
				break
			}
		}
	}
	return lines
}

func (s *Simulator) advance(ctx context.Context, order models.Order) error {
	if s.rng.Intn(10) == 0 {
		if err := s.engine.UpdateStatus(ctx, order.ID, models.StatusCancelled); err != nil {
			return fmt.Errorf("failed to cancel simulated order: %w", err)
		}
		s.logger.Infow("order cancelled", "order_id", order.ID)
		return nil
	}

	for _, status := range []models.OrderStatus{
		models.StatusPreparing,
		models.StatusReady,
		models.StatusCompleted,
	} {
		if err := s.engine.UpdateStatus(ctx, order.ID, status); err != nil {
			return fmt.Errorf("failed to advance simulated order: %w", err)
		}
	}
	s.logger.Infow("order completed", "order_id", order.ID)
	return nil
}
