// internal/backend/insurance.go
package backend

import (
	"context"
	"net/url"

	"rental-console/internal/domain/insurance"
)

func (c *Client) listInsurance(ctx context.Context, path string, q url.Values) ([]insurance.Insurance, error) {
	var list []insurance.Insurance
	if err := c.get(ctx, path, q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListInsurance(ctx context.Context, query insurance.Query) ([]insurance.Insurance, error) {
	return c.listInsurance(ctx, "/Seguros/todos", query.Values())
}

func (c *Client) InsuranceByProperty(ctx context.Context, propertyID string) ([]insurance.Insurance, error) {
	return c.listInsurance(ctx, "/Seguros/imovel/"+escape(propertyID), nil)
}

// SearchInsurance filters by insurer and policy number only.
func (c *Client) SearchInsurance(ctx context.Context, query insurance.Query) ([]insurance.Insurance, error) {
	q := url.Values{}
	if query.Insurer != "" {
		q.Set("seguradora", query.Insurer)
	}
	if query.Policy != "" {
		q.Set("apolice", query.Policy)
	}
	return c.listInsurance(ctx, "/Seguros/buscar", q)
}

func (c *Client) ExpiringInsurance(ctx context.Context) ([]insurance.Insurance, error) {
	return c.listInsurance(ctx, "/Seguros/vencendo-proximos-30-dias", nil)
}

func (c *Client) GetInsurance(ctx context.Context, id string) (*insurance.Insurance, error) {
	var i insurance.Insurance
	if err := c.get(ctx, "/Seguros/"+escape(id), nil, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (c *Client) CreateInsurance(ctx context.Context, req *insurance.CreateInsuranceRequest) (*insurance.Insurance, error) {
	var i insurance.Insurance
	if err := c.post(ctx, "/Seguros", req, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (c *Client) UpdateInsurance(ctx context.Context, id string, req *insurance.UpdateInsuranceRequest) (*insurance.Insurance, error) {
	var i insurance.Insurance
	if err := c.put(ctx, "/Seguros/"+escape(id), req, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (c *Client) DeleteInsurance(ctx context.Context, id string) error {
	return c.delete(ctx, "/Seguros/"+escape(id))
}
