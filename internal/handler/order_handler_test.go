package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tunitest/internal/domain/model"
	"tunitest/internal/handler"
	"tunitest/internal/metrics"
	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type orderRepoStub struct {
	created []model.Order
}

func (s *orderRepoStub) List(context.Context) ([]model.Order, error) { return nil, nil }
func (s *orderRepoStub) FindByID(context.Context, string) (model.Order, error) {
	return model.Order{}, nil
}
func (s *orderRepoStub) Create(_ context.Context, o model.Order) (model.Order, error) {
	s.created = append(s.created, o)
	return o, nil
}
func (s *orderRepoStub) UpdateStatus(context.Context, string, model.OrderStatus) error { return nil }
func (s *orderRepoStub) Delete(context.Context, string) error                          { return nil }

type nopEvents struct{}

func (nopEvents) PublishOrderCreated(model.Order) error { return nil }

func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegisterer(prometheus.NewRegistry())
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func doJSON(e *echo.Echo, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func newOrderAPI(repo *orderRepoStub) *echo.Echo {
	e := echo.New()
	uc := usecase.NewOrderUsecase(repo, nopEvents{}, newTestMetrics())
	handler.NewOrderHandler(uc).RegisterRoutes(e)
	return e
}

func TestOrderHandler_Create_Success(t *testing.T) {
	repo := &orderRepoStub{}
	e := newOrderAPI(repo)

	body := `{
		"bookIds": ["book-a", "book-b"],
		"quantities": [2, 1],
		"totalPrice": 55,
		"customerName": "Amine",
		"customerPhone": "21612345",
		"address": "Tunis"
	}`

	rec, env := doJSON(e, http.MethodPost, "/orders", body, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Commande créée avec succès", env.Message)

	var o model.Order
	assert.NoError(t, json.Unmarshal(env.Data, &o))
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, model.OrderStatusPreparing, o.Status)
	assert.Len(t, repo.created, 1)
}

func TestOrderHandler_Create_MissingFields(t *testing.T) {
	e := newOrderAPI(&orderRepoStub{})

	body := `{"bookIds": ["book-a"], "quantities": [1]}`
	rec, env := doJSON(e, http.MethodPost, "/orders", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Missing required fields", env.Error)
}

func TestOrderHandler_Create_BadBody(t *testing.T) {
	e := newOrderAPI(&orderRepoStub{})

	rec, env := doJSON(e, http.MethodPost, "/orders", `{"bookIds": "oops"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}
