package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rebill/internal/config"
	"rebill/internal/rebill"
	"rebill/internal/soap"

	"github.com/beevik/etree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// MockRebill is a mock implementation of handlers.RebillAPI
type MockRebill struct {
	mock.Mock
}

func (m *MockRebill) result(args mock.Arguments) (*soap.Response, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*soap.Response), args.Error(1)
}

func (m *MockRebill) CustomerAdd(ctx context.Context, fields rebill.Fields) (*soap.Response, error) {
	return m.result(m.Called(ctx, fields))
}

func (m *MockRebill) CustomerEdit(ctx context.Context, customerID string, fields rebill.Fields) (*soap.Response, error) {
	return m.result(m.Called(ctx, customerID, fields))
}

func (m *MockRebill) CustomerDelete(ctx context.Context, customerID string) (*soap.Response, error) {
	return m.result(m.Called(ctx, customerID))
}

func (m *MockRebill) CustomerGet(ctx context.Context, customerID string) (*soap.Response, error) {
	return m.result(m.Called(ctx, customerID))
}

func (m *MockRebill) PaymentAdd(ctx context.Context, fields rebill.Fields) (*soap.Response, error) {
	return m.result(m.Called(ctx, fields))
}

func (m *MockRebill) PaymentEdit(ctx context.Context, rebillID string, fields rebill.Fields) (*soap.Response, error) {
	return m.result(m.Called(ctx, rebillID, fields))
}

func (m *MockRebill) PaymentDelete(ctx context.Context, customerID, rebillID string) (*soap.Response, error) {
	return m.result(m.Called(ctx, customerID, rebillID))
}

func (m *MockRebill) PaymentGet(ctx context.Context, customerID, rebillID string) (*soap.Response, error) {
	return m.result(m.Called(ctx, customerID, rebillID))
}

func (m *MockRebill) Transactions(ctx context.Context, q rebill.TransactionQuery) (*soap.Response, error) {
	return m.result(m.Called(ctx, q))
}

func (m *MockRebill) TransactionNext(ctx context.Context, customerID, rebillID string) (*soap.Response, error) {
	return m.result(m.Called(ctx, customerID, rebillID))
}

// response builds a decoded reply whose result holds a single Result element
func response(op, result string) *soap.Response {
	doc := etree.NewDocument()
	body := doc.CreateElement(op + "Response")
	body.CreateElement(op + "Result").CreateElement("Result").SetText(result)
	return &soap.Response{Operation: op, Body: body}
}

func newTestRouter(api *MockRebill) http.Handler {
	cfg := config.Cfg{Sec: config.SecurityCfg{AdminToken: testToken}}
	return NewRouter(RouterDependencies{Config: cfg, Rebill: api, Gatherer: prometheus.NewRegistry()})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(RouterDependencies{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAPIDisabledWithoutToken(t *testing.T) {
	router := NewRouter(RouterDependencies{Rebill: new(MockRebill)})

	rec := do(t, router, http.MethodGet, "/api/v1/customers/1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIRequiresBearer(t *testing.T) {
	router := newTestRouter(new(MockRebill))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers/1", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/1", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCustomerAddReturnsResult(t *testing.T) {
	api := new(MockRebill)
	fields := rebill.Fields{"customerFirstName": "A", "customerLastName": "B", "customerEmail": "a@b.com"}
	api.On("CustomerAdd", mock.Anything, fields).
		Return(response(rebill.OpCreateRebillCustomer, "Success"), nil)

	rec := do(t, newTestRouter(api), http.MethodPost, "/api/v1/customers",
		`{"customerFirstName":"A","customerLastName":"B","customerEmail":"a@b.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"operation":"CreateRebillCustomer","result":{"Result":"Success"}}`, rec.Body.String())
	api.AssertExpectations(t)
}

func TestCustomerAddBadJSON(t *testing.T) {
	api := new(MockRebill)

	rec := do(t, newTestRouter(api), http.MethodPost, "/api/v1/customers", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	api.AssertNotCalled(t, "CustomerAdd", mock.Anything, mock.Anything)
}

func TestFieldErrorMapsToBadRequest(t *testing.T) {
	api := new(MockRebill)
	api.On("CustomerEdit", mock.Anything, "42", mock.Anything).
		Return(nil, &rebill.FieldError{Record: rebill.RecordCustomer, Field: "customerEmail"})

	rec := do(t, newTestRouter(api), http.MethodPut, "/api/v1/customers/42", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "customerEmail", body["field"])
	assert.Equal(t, "customer: customerEmail is a required field", body["error"])
}

func TestFaultMapsToBadGateway(t *testing.T) {
	api := new(MockRebill)
	api.On("CustomerGet", mock.Anything, "9").
		Return(nil, &soap.Fault{Code: "soap:Server", String: "Customer not found"})

	rec := do(t, newTestRouter(api), http.MethodGet, "/api/v1/customers/9", "")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var body struct {
		Error string `json:"error"`
		Fault struct {
			Code string `json:"faultcode"`
		} `json:"fault"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Customer not found", body.Error)
	assert.Equal(t, "soap:Server", body.Fault.Code)
}

func TestTransportErrorHidesDetail(t *testing.T) {
	api := new(MockRebill)
	api.On("CustomerDelete", mock.Anything, "9").Return(nil, &soap.StatusError{StatusCode: 500, Body: "stack trace"})

	rec := do(t, newTestRouter(api), http.MethodDelete, "/api/v1/customers/9", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "stack trace")
}

func TestPaymentRoutes(t *testing.T) {
	api := new(MockRebill)
	api.On("PaymentGet", mock.Anything, "1", "2").Return(response(rebill.OpQueryRebillEvent, "Success"), nil)
	api.On("PaymentDelete", mock.Anything, "1", "2").Return(response(rebill.OpDeleteRebillEvent, "Success"), nil)
	api.On("PaymentEdit", mock.Anything, "2", rebill.Fields{"RebillInvRef": "x"}).
		Return(response(rebill.OpUpdateRebillEvent, "Success"), nil)
	api.On("PaymentAdd", mock.Anything, rebill.Fields{"RebillInvRef": "x"}).
		Return(response(rebill.OpCreateRebillEvent, "Success"), nil)
	api.On("TransactionNext", mock.Anything, "1", "2").Return(response(rebill.OpQueryNextTransaction, "Success"), nil)
	router := newTestRouter(api)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/v1/customers/1/payments/2", ""},
		{http.MethodDelete, "/api/v1/customers/1/payments/2", ""},
		{http.MethodPut, "/api/v1/payments/2", `{"RebillInvRef":"x"}`},
		{http.MethodPost, "/api/v1/payments", `{"RebillInvRef":"x"}`},
		{http.MethodGet, "/api/v1/customers/1/payments/2/transactions/next", ""},
	} {
		rec := do(t, router, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusOK, rec.Code, tc.method+" "+tc.path)
	}
	api.AssertExpectations(t)
}

func TestTransactionsAbsentFiltersStayNil(t *testing.T) {
	api := new(MockRebill)
	api.On("Transactions", mock.Anything, mock.MatchedBy(func(q rebill.TransactionQuery) bool {
		return q.CustomerID == "1" && q.RebillID == "2" &&
			q.StartDate == nil && q.EndDate != nil && *q.EndDate == "" &&
			q.Status != nil && *q.Status == "Failed"
	})).Return(response(rebill.OpQueryTransactions, "Success"), nil)

	rec := do(t, newTestRouter(api), http.MethodGet, "/api/v1/customers/1/payments/2/transactions?endDate=&status=Failed", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	api.AssertExpectations(t)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_total", Help: "probe"})
	reg.MustRegister(counter)
	counter.Inc()

	rec := httptest.NewRecorder()
	NewRouter(RouterDependencies{Gatherer: reg}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "probe_total 1")
}
