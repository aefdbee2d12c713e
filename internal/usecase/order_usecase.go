package usecase

import (
	"context"
	"net/http"
	"strings"

	"tunitest/internal/domain/model"
	"tunitest/internal/metrics"
	repo "tunitest/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventPublisher pushes order lifecycle events to the event stream.
type EventPublisher interface {
	PublishOrderCreated(o model.Order) error
}

// OrderUsecase is the order submission endpoint and the admin back
// office over persisted orders.
type OrderUsecase struct {
	orderRepo repo.OrderRepository
	events    EventPublisher
	metrics   *metrics.Metrics
	logger    *log.Entry
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, events EventPublisher, m *metrics.Metrics) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		events:    events,
		metrics:   m,
		logger:    log.WithField("component", "order-usecase"),
	}
}

// CreateOrderInput mirrors the POST /orders body. BookIDs and
// Quantities are parallel arrays taken from the cart.
type CreateOrderInput struct {
	BookIDs       []string
	Quantities    []int64
	TotalPrice    float64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	PaymentMethod string
}

// Create validates and persists one order as an atomic create.
// Missing required fields are a 400, matching the storefront contract.
func (u *OrderUsecase) Create(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	if len(in.BookIDs) == 0 || len(in.Quantities) == 0 ||
		strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.Address) == "" {
		u.metrics.OrderFailed()
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	if len(in.BookIDs) != len(in.Quantities) {
		u.metrics.OrderFailed()
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "bookIds and quantities must have the same length")
	}
	for _, q := range in.Quantities {
		if q < 1 {
			u.metrics.OrderFailed()
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}
	if in.TotalPrice < 0 {
		u.metrics.OrderFailed()
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid total price")
	}

	payment := model.PaymentMethod(in.PaymentMethod)
	switch payment {
	case "":
		payment = model.PaymentCard
	case model.PaymentCash, model.PaymentCard:
	default:
		u.metrics.OrderFailed()
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}

	created, err := u.orderRepo.Create(ctx, model.Order{
		ID:            uuid.NewString(),
		BookIDs:       in.BookIDs,
		Quantities:    in.Quantities,
		TotalPrice:    in.TotalPrice,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Address:       strings.TrimSpace(in.Address),
		PaymentMethod: payment,
		Status:        model.OrderStatusPreparing,
	})
	if err != nil {
		u.metrics.OrderFailed()
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.metrics.OrderCreated()

	// Best effort: a broken event stream must not fail the order.
	if err := u.events.PublishOrderCreated(created); err != nil {
		u.logger.WithError(err).WithField("order_id", created.ID).Warn("order event not published")
	}

	return created, nil
}

func (u *OrderUsecase) List(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func (u *OrderUsecase) Get(ctx context.Context, id string) (model.Order, error) {
	if id == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

func (u *OrderUsecase) UpdateStatus(ctx context.Context, id string, status string) (model.Order, error) {
	if id == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	switch model.OrderStatus(status) {
	case model.OrderStatusPreparing, model.OrderStatusDelivering, model.OrderStatusDelivered:
	default:
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, id, model.OrderStatus(status))
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.Get(ctx, id)
}

func (u *OrderUsecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.orderRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
