// internal/backend/transactions.go
package backend

import (
	"context"
	"net/url"
	"strconv"

	"rental-console/internal/domain/transaction"
)

func (c *Client) listTransactions(ctx context.Context, path string, q url.Values) ([]transaction.Transaction, error) {
	var list []transaction.Transaction
	if err := c.get(ctx, path, q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]transaction.Transaction, error) {
	return c.listTransactions(ctx, "/Movimentacoes/todas", nil)
}

func (c *Client) TransactionsByProperty(ctx context.Context, propertyID string) ([]transaction.Transaction, error) {
	return c.listTransactions(ctx, "/Movimentacoes/imovel/"+escape(propertyID), nil)
}

func (c *Client) TransactionsByPeriod(ctx context.Context, period transaction.PeriodQuery) ([]transaction.Transaction, error) {
	return c.listTransactions(ctx, "/Movimentacoes/periodo", period.Values())
}

func (c *Client) TransactionsByCategory(ctx context.Context, category string) ([]transaction.Transaction, error) {
	return c.listTransactions(ctx, "/Movimentacoes/categoria/"+escape(category), nil)
}

func (c *Client) SearchTransactions(ctx context.Context, params transaction.SearchParams) ([]transaction.Transaction, error) {
	return c.listTransactions(ctx, "/Movimentacoes/search", params.Values())
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*transaction.Transaction, error) {
	var t transaction.Transaction
	if err := c.get(ctx, "/Movimentacoes/"+escape(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req *transaction.CreateTransactionRequest) (*transaction.Transaction, error) {
	var t transaction.Transaction
	if err := c.post(ctx, "/Movimentacoes", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id string, req *transaction.UpdateTransactionRequest) (*transaction.Transaction, error) {
	var t transaction.Transaction
	if err := c.put(ctx, "/Movimentacoes/"+escape(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.delete(ctx, "/Movimentacoes/"+escape(id))
}

// SettleTransaction moves a transaction to paid, received or cancelled.
// action is one of "pagar", "receber" or "cancelar".
func (c *Client) SettleTransaction(ctx context.Context, id, action string, req *transaction.SettleRequest) error {
	if req == nil {
		req = &transaction.SettleRequest{}
	}
	return c.put(ctx, "/Movimentacoes/"+escape(id)+"/"+action, req, nil)
}

func (c *Client) PeriodBalance(ctx context.Context, period transaction.PeriodQuery) (*transaction.PeriodBalance, error) {
	var b transaction.PeriodBalance
	if err := c.get(ctx, "/Movimentacoes/saldo-periodo", period.Values(), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) AnnualReport(ctx context.Context, year int) ([]transaction.MonthReport, error) {
	var report []transaction.MonthReport
	if err := c.get(ctx, "/Movimentacoes/relatorio/"+strconv.Itoa(year), nil, &report); err != nil {
		return nil, err
	}
	return report, nil
}
