// internal/backend/dashboard.go
package backend

import (
	"context"

	"rental-console/internal/domain/dashboard"
)

func (c *Client) DashboardSummary(ctx context.Context) (*dashboard.Summary, error) {
	var s dashboard.Summary
	if err := c.get(ctx, "/Dashboard/resumo", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) RevenueExpenseChart(ctx context.Context) ([]dashboard.ChartPoint, error) {
	var points []dashboard.ChartPoint
	if err := c.get(ctx, "/Dashboard/grafico-receita-despesa", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *Client) ExpiringLeases(ctx context.Context) ([]dashboard.ExpiringLease, error) {
	var list []dashboard.ExpiringLease
	if err := c.get(ctx, "/Dashboard/contratos-vencimento", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) PendingMaintenance(ctx context.Context) ([]dashboard.PendingMaintenance, error) {
	var list []dashboard.PendingMaintenance
	if err := c.get(ctx, "/Dashboard/manutencoes-pendentes", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) DetailedStats(ctx context.Context) (*dashboard.DetailedStats, error) {
	var s dashboard.DetailedStats
	if err := c.get(ctx, "/Dashboard/estatisticas-detalhadas", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
