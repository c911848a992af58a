// internal/backend/adjustments.go
package backend

import (
	"context"
	"net/url"
	"strconv"

	"rental-console/internal/domain/adjustment"
)

func (c *Client) listAdjustments(ctx context.Context, path string, q url.Values) ([]adjustment.Adjustment, error) {
	var list []adjustment.Adjustment
	if err := c.get(ctx, path, q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListAdjustments(ctx context.Context) ([]adjustment.Adjustment, error) {
	return c.listAdjustments(ctx, "/Reajustes/todos", nil)
}

func (c *Client) AdjustmentsByLease(ctx context.Context, leaseID string) ([]adjustment.Adjustment, error) {
	return c.listAdjustments(ctx, "/Reajustes/contrato/"+escape(leaseID), nil)
}

func (c *Client) LatestAdjustments(ctx context.Context, count int) ([]adjustment.Adjustment, error) {
	q := url.Values{}
	q.Set("quantidade", strconv.Itoa(count))
	return c.listAdjustments(ctx, "/Reajustes/ultimos", q)
}

func (c *Client) GetAdjustment(ctx context.Context, id string) (*adjustment.Adjustment, error) {
	var a adjustment.Adjustment
	if err := c.get(ctx, "/Reajustes/"+escape(id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) CreateAdjustment(ctx context.Context, req *adjustment.CreateAdjustmentRequest) (*adjustment.Adjustment, error) {
	var a adjustment.Adjustment
	if err := c.post(ctx, "/Reajustes", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateAdjustment(ctx context.Context, id string, req *adjustment.UpdateAdjustmentRequest) (*adjustment.Adjustment, error) {
	var a adjustment.Adjustment
	if err := c.put(ctx, "/Reajustes/"+escape(id), req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteAdjustment(ctx context.Context, id string) error {
	return c.delete(ctx, "/Reajustes/"+escape(id))
}

// CalculateAdjustment returns the projected rent.
func (c *Client) CalculateAdjustment(ctx context.Context, req *adjustment.CalculateRequest) (float64, error) {
	var value float64
	if err := c.post(ctx, "/Reajustes/calcular", req, &value); err != nil {
		return 0, err
	}
	return value, nil
}

// SuggestAdjustment returns the backend's textual suggestion for a lease.
func (c *Client) SuggestAdjustment(ctx context.Context, leaseID, index string) (string, error) {
	if index == "" {
		index = adjustment.DefaultIndex
	}
	q := url.Values{}
	q.Set("indice", index)

	var suggestion string
	if err := c.get(ctx, "/Reajustes/sugerir/"+escape(leaseID), q, &suggestion); err != nil {
		return "", err
	}
	return suggestion, nil
}
