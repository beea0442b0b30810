package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// DeleteProductInput identifies the product to remove. Transports collect the
// user confirmation before dispatching.
type DeleteProductInput struct {
	ProductID int `json:"product_id"`
}

type deleteService interface {
	DeleteProduct(ctx context.Context, productID int) error
}

// DeleteProductCommand wraps FormController.DeleteProduct.
type DeleteProductCommand struct {
	service   deleteService
	telemetry Telemetry
}

// NewDeleteProductCommand builds a command instance.
func NewDeleteProductCommand(service deleteService, telemetry Telemetry) *DeleteProductCommand {
	return &DeleteProductCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[DeleteProductInput] = (*DeleteProductCommand)(nil)

// Execute removes the product.
func (c *DeleteProductCommand) Execute(ctx context.Context, msg DeleteProductInput) error {
	if c.service == nil {
		return errors.New("delete product command requires service")
	}
	if err := c.service.DeleteProduct(ctx, msg.ProductID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "inventory.product.delete", map[string]any{
		"product_id": msg.ProductID,
	})
	return nil
}
