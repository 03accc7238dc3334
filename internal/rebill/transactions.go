package rebill

import (
	"context"

	"rebill/internal/soap"
)

// TransactionQuery filters QueryTransactions. Nil bounds and status are
// forwarded as explicit nils, not omitted.
type TransactionQuery struct {
	CustomerID string
	RebillID   string
	StartDate  *string
	EndDate    *string
	Status     *string
}

// Transactions lists the transactions of a rebill event. The query is
// forwarded as-is; no local filtering is applied.
func (c *Client) Transactions(ctx context.Context, q TransactionQuery) (*soap.Response, error) {
	params := soap.NewParams().
		Set(FieldRebillCustomerID, q.CustomerID).
		Set(FieldRebillID, q.RebillID).
		SetOptional(FieldStartDate, q.StartDate).
		SetOptional(FieldEndDate, q.EndDate).
		SetOptional(FieldStatus, q.Status)
	return c.caller.Call(ctx, OpQueryTransactions, params)
}

// TransactionNext returns the next scheduled transaction of a rebill event
func (c *Client) TransactionNext(ctx context.Context, customerID, rebillID string) (*soap.Response, error) {
	return c.caller.Call(ctx, OpQueryNextTransaction, eventKey(customerID, rebillID))
}
