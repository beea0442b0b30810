package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

type stockService interface {
	SubmitStock(ctx context.Context, input apiclient.StockInput) error
}

// UpdateStockCommand wraps FormController.SubmitStock.
type UpdateStockCommand struct {
	service   stockService
	telemetry Telemetry
}

// NewUpdateStockCommand builds a command instance.
func NewUpdateStockCommand(service stockService, telemetry Telemetry) *UpdateStockCommand {
	return &UpdateStockCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[apiclient.StockInput] = (*UpdateStockCommand)(nil)

// Execute applies the stock adjustment.
func (c *UpdateStockCommand) Execute(ctx context.Context, msg apiclient.StockInput) error {
	if c.service == nil {
		return errors.New("update stock command requires service")
	}
	if err := c.service.SubmitStock(ctx, msg); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "inventory.stock.update", map[string]any{
		"product_id":      msg.ProductID,
		"quantity_change": msg.QuantityChange,
	})
	return nil
}
