package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tunitest/internal/cart"
	"tunitest/internal/domain/model"
	"tunitest/internal/metrics"

	log "github.com/sirupsen/logrus"
)

// OrderPlacer is how checkout hands a finalized cart to the order
// endpoint. In process it is the OrderUsecase; tests substitute a fake.
type OrderPlacer interface {
	Create(ctx context.Context, in CreateOrderInput) (model.Order, error)
}

// CheckoutInput is the contact form. Email is optional.
type CheckoutInput struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	PaymentMethod string
}

// CheckoutUsecase turns the current cart snapshot plus the contact
// form into one order-creation request.
//
// Each attempt runs Idle -> Submitting -> Success or Failed. Success
// clears the cart and is terminal for the attempt; any failure leaves
// the cart untouched so the user can resubmit. There is no automatic
// retry.
type CheckoutUsecase struct {
	orders  OrderPlacer
	metrics *metrics.Metrics
	logger  *log.Entry
}

// DI
func NewCheckoutUsecase(orders OrderPlacer, m *metrics.Metrics) *CheckoutUsecase {
	return &CheckoutUsecase{
		orders:  orders,
		metrics: m,
		logger:  log.WithField("component", "checkout"),
	}
}

func (u *CheckoutUsecase) Submit(ctx context.Context, store *cart.Store, in CheckoutInput) (model.Order, error) {
	// The UI keeps an empty cart away from the checkout form; this is
	// the backstop for direct API calls.
	lines := store.Lines()
	if len(lines) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	if strings.TrimSpace(in.Name) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "phone is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "address is required")
	}

	bookIDs := make([]string, len(lines))
	quantities := make([]int64, len(lines))
	for i, ln := range lines {
		bookIDs[i] = ln.Item.BookID
		quantities[i] = ln.Quantity
	}

	u.logger.WithFields(log.Fields{
		"items": len(lines),
		"total": store.Total(),
	}).Info("submitting order")

	started := time.Now()
	order, err := u.orders.Create(ctx, CreateOrderInput{
		BookIDs:       bookIDs,
		Quantities:    quantities,
		TotalPrice:    store.Total(),
		CustomerName:  in.Name,
		CustomerEmail: in.Email,
		CustomerPhone: in.Phone,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
	})
	u.metrics.ObserveCheckout(time.Since(started).Seconds())

	if err != nil {
		// Failed: the cart stays intact for a user-initiated retry.
		u.logger.WithError(err).Info("order submission failed")
		return model.Order{}, err
	}

	// Success: the cart is cleared everywhere this profile is open.
	store.Clear(ctx)
	u.logger.WithField("order_id", order.ID).Info("order accepted")

	return order, nil
}
