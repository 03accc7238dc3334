package soap

import (
	"errors"
	"net/http"
	"testing"
)

func decode(t *testing.T, operation string, status int, body string) (*Response, error) {
	t.Helper()
	return decodeEnvelope(operation, &HTTPResponse{StatusCode: status, Body: []byte(body)})
}

func TestDecodeTransactionList(t *testing.T) {
	resp, err := decode(t, "QueryTransactions", http.StatusOK, `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <soap:Body>
    <QueryTransactionsResponse xmlns="urn:test">
      <QueryTransactionsResult>
        <rebillTransaction>
          <TransactionDate>2024-01-01</TransactionDate>
          <Status>Successful</Status>
        </rebillTransaction>
        <rebillTransaction>
          <TransactionDate>2024-02-01</TransactionDate>
          <Status xsi:nil="true"/>
        </rebillTransaction>
      </QueryTransactionsResult>
    </QueryTransactionsResponse>
  </soap:Body>
</soap:Envelope>`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	value, ok := resp.Value().(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", resp.Value())
	}
	list, ok := value["rebillTransaction"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %#v", value["rebillTransaction"])
	}
	first := list[0].(map[string]any)
	if first["Status"] != "Successful" {
		t.Fatalf("unexpected first status: %v", first["Status"])
	}
	second := list[1].(map[string]any)
	if second["Status"] != nil {
		t.Fatalf("xsi:nil should decode to nil, got %v", second["Status"])
	}
}

func TestDecodeFieldsAndText(t *testing.T) {
	resp, err := decode(t, "QueryRebillCustomer", http.StatusOK, `<Envelope xmlns="http://schemas.xmlsoap.org/soap/envelope/"><Body>
<QueryRebillCustomerResponse><QueryRebillCustomerResult>
<Result>Success</Result><CustomerFirstName> Joe </CustomerFirstName>
</QueryRebillCustomerResult></QueryRebillCustomerResponse></Body></Envelope>`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Text("Result") != "Success" {
		t.Fatalf("unexpected Result: %q", resp.Text("Result"))
	}
	fields := resp.Fields()
	if fields["CustomerFirstName"] != "Joe" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if resp.Text("Missing") != "" {
		t.Fatal("missing element should be empty")
	}
}

func TestDecodeResultFallsBackToBody(t *testing.T) {
	resp, err := decode(t, "DeleteRebillCustomer", http.StatusOK, `<Envelope><Body>
<DeleteRebillCustomerResponse><Result>Success</Result></DeleteRebillCustomerResponse>
</Body></Envelope>`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text("Result") != "Success" {
		t.Fatalf("unexpected Result: %q", resp.Text("Result"))
	}
}

func TestDecodeEmptyBody(t *testing.T) {
	resp, err := decode(t, "DeleteRebillCustomer", http.StatusOK, `<Envelope><Body/></Envelope>`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result() != nil || resp.Value() != nil {
		t.Fatal("empty body should have no result")
	}
	if len(resp.Fields()) != 0 {
		t.Fatal("empty body should have no fields")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := decode(t, "Op", http.StatusOK, `<html/>`); !errors.Is(err, ErrNoBody) {
		t.Fatalf("expected ErrNoBody, got %v", err)
	}
	if _, err := decode(t, "Op", http.StatusOK, `not xml <`); err == nil {
		t.Fatal("expected parse error")
	}

	_, err := decode(t, "Op", http.StatusServiceUnavailable, `busy`)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Body != "busy" {
		t.Fatalf("expected *StatusError, got %v", err)
	}

	_, err = decode(t, "Op", http.StatusInternalServerError, `<Envelope><Body><Fault><faultstring>boom</faultstring></Fault></Body></Envelope>`)
	var fault *Fault
	if !errors.As(err, &fault) || fault.String != "boom" {
		t.Fatalf("expected fault, got %v", err)
	}
	if fault.Error() != "soap fault: boom" {
		t.Fatalf("unexpected message: %s", fault.Error())
	}
}
