package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

type productService interface {
	SubmitProduct(ctx context.Context, product apiclient.NewProduct) error
}

// AddProductCommand wraps FormController.SubmitProduct, which validates the
// payload before it reaches the backend.
type AddProductCommand struct {
	service   productService
	telemetry Telemetry
}

// NewAddProductCommand builds a command instance.
func NewAddProductCommand(service productService, telemetry Telemetry) *AddProductCommand {
	return &AddProductCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[apiclient.NewProduct] = (*AddProductCommand)(nil)

// Execute validates and creates the product.
func (c *AddProductCommand) Execute(ctx context.Context, msg apiclient.NewProduct) error {
	if c.service == nil {
		return errors.New("add product command requires service")
	}
	if err := c.service.SubmitProduct(ctx, msg); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "inventory.product.add", map[string]any{
		"product_name": msg.ProductName,
	})
	return nil
}
