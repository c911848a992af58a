// internal/backend/payments.go
package backend

import (
	"context"
	"strconv"

	"rental-console/internal/domain/payment"
)

func (c *Client) listPayments(ctx context.Context, path string) ([]payment.Payment, error) {
	var list []payment.Payment
	if err := c.get(ctx, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListPayments(ctx context.Context) ([]payment.Payment, error) {
	return c.listPayments(ctx, "/Recebimentos/todos")
}

func (c *Client) PendingPayments(ctx context.Context) ([]payment.Payment, error) {
	return c.listPayments(ctx, "/Recebimentos/pendentes")
}

func (c *Client) OverduePayments(ctx context.Context) ([]payment.Payment, error) {
	return c.listPayments(ctx, "/Recebimentos/atrasados")
}

func (c *Client) PaymentsByLease(ctx context.Context, leaseID string) ([]payment.Payment, error) {
	return c.listPayments(ctx, "/Recebimentos/contrato/"+escape(leaseID))
}

func (c *Client) GetPayment(ctx context.Context, id string) (*payment.Payment, error) {
	var p payment.Payment
	if err := c.get(ctx, "/Recebimentos/"+escape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePayment goes through the generate endpoint, which is the only
// creation route the backend exposes for receivables.
func (c *Client) CreatePayment(ctx context.Context, req *payment.CreatePaymentRequest) (*payment.Payment, error) {
	var p payment.Payment
	if err := c.post(ctx, "/Recebimentos/gerar", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GeneratePayments(ctx context.Context, req *payment.GenerateRequest) ([]payment.Payment, error) {
	var list []payment.Payment
	if err := c.post(ctx, "/Recebimentos/gerar", req, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) PayPayment(ctx context.Context, id string, req *payment.PayRequest) (*payment.Payment, error) {
	var p payment.Payment
	if err := c.put(ctx, "/Recebimentos/"+escape(id)+"/pagar", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// MonthTotal is the amount received in the current month.
func (c *Client) MonthTotal(ctx context.Context) (float64, error) {
	var total float64
	if err := c.get(ctx, "/Recebimentos/total-mes", nil, &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) TotalByMonth(ctx context.Context, year, month int) (float64, error) {
	var total float64
	path := "/Recebimentos/total/" + strconv.Itoa(year) + "/" + strconv.Itoa(month)
	if err := c.get(ctx, path, nil, &total); err != nil {
		return 0, err
	}
	return total, nil
}
