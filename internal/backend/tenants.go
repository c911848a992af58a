// internal/backend/tenants.go
package backend

import (
	"context"
	"net/url"

	"rental-console/internal/domain/tenant"
)

func (c *Client) ListTenants(ctx context.Context) ([]tenant.Tenant, error) {
	var list []tenant.Tenant
	if err := c.get(ctx, "/Locatarios", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SearchTenants(ctx context.Context, params tenant.SearchParams) ([]tenant.Tenant, error) {
	q := url.Values{}
	if params.Term != "" {
		q.Set("termo", params.Term)
	}
	var list []tenant.Tenant
	if err := c.get(ctx, "/Locatarios/buscar", q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetTenant(ctx context.Context, id string) (*tenant.Tenant, error) {
	var t tenant.Tenant
	if err := c.get(ctx, "/Locatarios/"+escape(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) CreateTenant(ctx context.Context, req *tenant.CreateTenantRequest) (*tenant.Tenant, error) {
	var t tenant.Tenant
	if err := c.post(ctx, "/Locatarios", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTenant(ctx context.Context, id string, req *tenant.UpdateTenantRequest) (*tenant.Tenant, error) {
	var t tenant.Tenant
	if err := c.put(ctx, "/Locatarios/"+escape(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	return c.delete(ctx, "/Locatarios/"+escape(id))
}

func (c *Client) MarkTenantCompliant(ctx context.Context, id string) error {
	return c.put(ctx, "/Locatarios/"+escape(id)+"/adimplente", nil, nil)
}

func (c *Client) MarkTenantDefaulting(ctx context.Context, id string) error {
	return c.put(ctx, "/Locatarios/"+escape(id)+"/inadimplente", nil, nil)
}
