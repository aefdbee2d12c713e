package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"tunitest/internal/cart"
	"tunitest/internal/domain/model"
	"tunitest/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type placerFake struct {
	got  usecase.CreateOrderInput
	out  model.Order
	err  error
	hits int
}

func (p *placerFake) Create(_ context.Context, in usecase.CreateOrderInput) (model.Order, error) {
	p.got = in
	p.hits++
	return p.out, p.err
}

func checkoutStore(t *testing.T) *cart.Store {
	t.Helper()
	return cart.NewStore(context.Background(), cart.NewMemoryStorage(), cart.NewMemoryBus(), cart.FeePolicy{})
}

func validCheckout() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		Name:    "Amine",
		Phone:   "21612345",
		Address: "Tunis",
	}
}

func TestCheckout_BuildsParallelArraysFromCart(t *testing.T) {
	ctx := context.Background()
	s := checkoutStore(t)
	s.Add(ctx, cart.Item{BookID: "book-a", Title: "A", UnitPrice: 20}, 2)
	s.Add(ctx, cart.Item{BookID: "book-b", Title: "B", UnitPrice: 15}, 1)

	placer := &placerFake{out: model.Order{ID: "o1"}}
	uc := usecase.NewCheckoutUsecase(placer, newTestMetrics())

	out, err := uc.Submit(ctx, s, validCheckout())
	assert.NoError(t, err)
	assert.Equal(t, "o1", out.ID)

	assert.Equal(t, []string{"book-a", "book-b"}, placer.got.BookIDs)
	assert.Equal(t, []int64{2, 1}, placer.got.Quantities)
	assert.Equal(t, 55.0, placer.got.TotalPrice)
	assert.Equal(t, "Amine", placer.got.CustomerName)
}

func TestCheckout_SuccessClearsCart(t *testing.T) {
	ctx := context.Background()
	s := checkoutStore(t)
	s.Add(ctx, cart.Item{BookID: "book-a", UnitPrice: 20}, 1)

	uc := usecase.NewCheckoutUsecase(&placerFake{out: model.Order{ID: "o1"}}, newTestMetrics())

	_, err := uc.Submit(ctx, s, validCheckout())
	assert.NoError(t, err)
	assert.Equal(t, 0, s.Count())
}

func TestCheckout_FailurePreservesCart(t *testing.T) {
	ctx := context.Background()
	s := checkoutStore(t)
	s.Add(ctx, cart.Item{BookID: "book-a", UnitPrice: 20}, 2)

	placer := &placerFake{err: usecase.NewHTTPError(http.StatusInternalServerError, "db error")}
	uc := usecase.NewCheckoutUsecase(placer, newTestMetrics())

	_, err := uc.Submit(ctx, s, validCheckout())
	assertStatus(t, err, http.StatusInternalServerError)

	// one attempt, no automatic retry, cart intact
	assert.Equal(t, 1, placer.hits)
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 40.0, s.Subtotal())
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	s := checkoutStore(t)
	placer := &placerFake{}
	uc := usecase.NewCheckoutUsecase(placer, newTestMetrics())

	_, err := uc.Submit(context.Background(), s, validCheckout())
	assertStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, 0, placer.hits)
}

func TestCheckout_ContactFormValidation(t *testing.T) {
	ctx := context.Background()

	cases := map[string]func(*usecase.CheckoutInput){
		"no name":    func(in *usecase.CheckoutInput) { in.Name = "" },
		"no phone":   func(in *usecase.CheckoutInput) { in.Phone = " " },
		"no address": func(in *usecase.CheckoutInput) { in.Address = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := checkoutStore(t)
			s.Add(ctx, cart.Item{BookID: "book-a", UnitPrice: 20}, 1)

			in := validCheckout()
			mutate(&in)

			uc := usecase.NewCheckoutUsecase(&placerFake{}, newTestMetrics())
			_, err := uc.Submit(ctx, s, in)
			assertStatus(t, err, http.StatusBadRequest)
			assert.Equal(t, 1, s.Count())
		})
	}
}
