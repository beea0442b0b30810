package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

type saleService interface {
	SubmitSale(ctx context.Context, input apiclient.SaleInput) (apiclient.SaleReceipt, error)
}

// RecordSaleCommand wraps FormController.SubmitSale so transports can record
// sales without linking directly against the controller. Unlike the other
// mutations it hands the server's receipt back to the caller: the confirmation
// shown to the user must carry the authoritative revenue and profit, not the
// local preview.
type RecordSaleCommand struct {
	service   saleService
	telemetry Telemetry
}

// NewRecordSaleCommand creates a command instance.
func NewRecordSaleCommand(service saleService, telemetry Telemetry) *RecordSaleCommand {
	return &RecordSaleCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Querier[apiclient.SaleInput, apiclient.SaleReceipt] = (*RecordSaleCommand)(nil)

// Query records the sale through the form controller and returns the receipt.
func (c *RecordSaleCommand) Query(ctx context.Context, msg apiclient.SaleInput) (apiclient.SaleReceipt, error) {
	if c.service == nil {
		return apiclient.SaleReceipt{}, errors.New("record sale command requires service")
	}
	receipt, err := c.service.SubmitSale(ctx, msg)
	if err != nil {
		return apiclient.SaleReceipt{}, err
	}
	c.telemetry.Record(ctx, "inventory.sale.record", map[string]any{
		"product_id": msg.ProductID,
		"quantity":   msg.Quantity,
		"revenue":    receipt.Revenue.StringFixed(2),
		"profit":     receipt.Profit.StringFixed(2),
	})
	return receipt, nil
}
