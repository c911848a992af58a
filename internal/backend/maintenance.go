// internal/backend/maintenance.go
package backend

import (
	"context"

	"rental-console/internal/domain/maintenance"
)

func (c *Client) ListMaintenance(ctx context.Context) ([]maintenance.Maintenance, error) {
	var list []maintenance.Maintenance
	if err := c.get(ctx, "/Manutencoes/todas", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) MaintenanceByProperty(ctx context.Context, propertyID string) ([]maintenance.Maintenance, error) {
	var list []maintenance.Maintenance
	if err := c.get(ctx, "/Manutencoes/imovel/"+escape(propertyID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetMaintenance(ctx context.Context, id string) (*maintenance.Maintenance, error) {
	var m maintenance.Maintenance
	if err := c.get(ctx, "/Manutencoes/"+escape(id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) CreateMaintenance(ctx context.Context, req *maintenance.CreateMaintenanceRequest) (*maintenance.Maintenance, error) {
	var m maintenance.Maintenance
	if err := c.post(ctx, "/Manutencoes", req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) UpdateMaintenance(ctx context.Context, id string, req *maintenance.UpdateMaintenanceRequest) (*maintenance.Maintenance, error) {
	var m maintenance.Maintenance
	if err := c.put(ctx, "/Manutencoes/"+escape(id), req, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) DeleteMaintenance(ctx context.Context, id string) error {
	return c.delete(ctx, "/Manutencoes/"+escape(id))
}

func (c *Client) CompleteMaintenance(ctx context.Context, id string) error {
	return c.put(ctx, "/Manutencoes/"+escape(id)+"/concluir", nil, nil)
}
