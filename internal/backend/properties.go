// internal/backend/properties.go
package backend

import (
	"context"
	"net/url"

	"rental-console/internal/domain/property"
)

func (c *Client) ListProperties(ctx context.Context) ([]property.Property, error) {
	var list []property.Property
	if err := c.get(ctx, "/Imoveis", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) SearchProperties(ctx context.Context, params property.SearchParams) ([]property.Property, error) {
	q := url.Values{}
	if params.Term != "" {
		q.Set("termo", params.Term)
	}
	var list []property.Property
	if err := c.get(ctx, "/Imoveis/buscar", q, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*property.Property, error) {
	var p property.Property
	if err := c.get(ctx, "/Imoveis/"+escape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProperty(ctx context.Context, req *property.CreatePropertyRequest) (*property.Property, error) {
	var p property.Property
	if err := c.post(ctx, "/Imoveis", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, req *property.UpdatePropertyRequest) (*property.Property, error) {
	var p property.Property
	if err := c.put(ctx, "/Imoveis/"+escape(id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.delete(ctx, "/Imoveis/"+escape(id))
}

func (c *Client) ActivateProperty(ctx context.Context, id string) error {
	return c.put(ctx, "/Imoveis/"+escape(id)+"/ativar", nil, nil)
}

func (c *Client) DeactivateProperty(ctx context.Context, id string) error {
	return c.put(ctx, "/Imoveis/"+escape(id)+"/desativar", nil, nil)
}
