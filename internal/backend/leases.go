// internal/backend/leases.go
package backend

import (
	"context"

	"rental-console/internal/domain/lease"
)

func (c *Client) ListLeases(ctx context.Context) ([]lease.Lease, error) {
	var list []lease.Lease
	if err := c.get(ctx, "/Contratos", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetLease(ctx context.Context, id string) (*lease.Lease, error) {
	var l lease.Lease
	if err := c.get(ctx, "/Contratos/"+escape(id), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) GetLeaseDetails(ctx context.Context, id string) (*lease.Details, error) {
	var d lease.Details
	if err := c.get(ctx, "/Contratos/"+escape(id)+"/detalhes", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) CreateLease(ctx context.Context, req *lease.CreateLeaseRequest) (*lease.Lease, error) {
	var l lease.Lease
	if err := c.post(ctx, "/Contratos", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) UpdateLease(ctx context.Context, id string, req *lease.UpdateLeaseRequest) (*lease.Lease, error) {
	var l lease.Lease
	if err := c.put(ctx, "/Contratos/"+escape(id), req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) DeleteLease(ctx context.Context, id string) error {
	return c.delete(ctx, "/Contratos/"+escape(id))
}

func (c *Client) CloseLease(ctx context.Context, id string) error {
	return c.put(ctx, "/Contratos/"+escape(id)+"/encerrar", nil, nil)
}

func (c *Client) SuspendLease(ctx context.Context, id string) error {
	return c.put(ctx, "/Contratos/"+escape(id)+"/suspender", nil, nil)
}

func (c *Client) ReactivateLease(ctx context.Context, id string) error {
	return c.put(ctx, "/Contratos/"+escape(id)+"/reativar", nil, nil)
}

// LeasePDF downloads the generated contract document.
func (c *Client) LeasePDF(ctx context.Context, id string) ([]byte, string, error) {
	return c.download(ctx, "/Contratos/"+escape(id)+"/gerar-pdf", "application/pdf")
}

// SaveLeasePDF stores the contract document on the backend and returns the
// lease with its document path set.
func (c *Client) SaveLeasePDF(ctx context.Context, id string) (*lease.Lease, error) {
	var l lease.Lease
	if err := c.post(ctx, "/Contratos/"+escape(id)+"/salvar-pdf", nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
