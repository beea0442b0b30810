package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// ErrProductNotFound is returned by form lookups for an unknown product id.
var ErrProductNotFound = errors.New("dashboard: product not found")

// FormOptions configures a FormController.
type FormOptions struct {
	Client    DataClient
	Validator ProductValidator
	Telemetry Telemetry
}

// FormController owns the data-entry flows: product lookups, live previews,
// and submissions. Preview math runs locally as the user types, but the
// server response stays authoritative for anything it reports back.
type FormController struct {
	client    DataClient
	validator ProductValidator
	telemetry Telemetry
}

// NewFormController builds a controller with noop defaults for optional
// collaborators.
func NewFormController(opts FormOptions) (*FormController, error) {
	if opts.Client == nil {
		return nil, errMissingClient
	}
	if opts.Validator == nil {
		opts.Validator = noopProductValidator{}
	}
	return &FormController{
		client:    opts.Client,
		validator: opts.Validator,
		telemetry: normalizeTelemetry(opts.Telemetry),
	}, nil
}

// ProductQuote is the lookup result backing readonly form fields.
type ProductQuote struct {
	ProductName string
	MRP         decimal.Decimal
	UnitCost    decimal.Decimal
}

// Lookup resolves a product id against the current inventory. A zero id
// clears the quote without an error so dependent fields reset.
func (f *FormController) Lookup(ctx context.Context, productID int) (*ProductQuote, error) {
	if productID == 0 {
		return nil, nil
	}
	inventory, err := f.client.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	for _, product := range inventory {
		if product.ProductID == productID {
			return &ProductQuote{
				ProductName: product.ProductName,
				MRP:         product.MRP,
				UnitCost:    product.OrderCostFixed,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
}

// SalePreview holds the live revenue and profit estimates for the sale form.
type SalePreview struct {
	Revenue string
	Profit  string
}

// PreviewSale computes the live sale preview: revenue is quantity times MRP,
// profit is quantity times the MRP/unit-cost spread. A nil quote or
// non-positive quantity yields empty previews, matching the cleared fields.
func PreviewSale(quote *ProductQuote, quantity int) SalePreview {
	if quote == nil || quantity <= 0 {
		return SalePreview{}
	}
	qty := decimal.NewFromInt(int64(quantity))
	revenue := qty.Mul(quote.MRP)
	profit := qty.Mul(quote.MRP.Sub(quote.UnitCost))
	return SalePreview{
		Revenue: revenue.StringFixed(2),
		Profit:  profit.StringFixed(2),
	}
}

// PreviewStockTotal computes the live total cost for the stock form.
func PreviewStockTotal(quote *ProductQuote, quantityChange int) string {
	if quote == nil {
		return ""
	}
	qty := decimal.NewFromInt(int64(quantityChange))
	return qty.Mul(quote.UnitCost).StringFixed(2)
}

// SubmitSale records a sale and returns the server's receipt.
func (f *FormController) SubmitSale(ctx context.Context, input apiclient.SaleInput) (apiclient.SaleReceipt, error) {
	receipt, err := f.client.RecordSale(ctx, input)
	if err != nil {
		return apiclient.SaleReceipt{}, err
	}
	f.telemetry.Record(ctx, "dashboard.form.sale_recorded", map[string]any{
		"product_id": input.ProductID,
		"quantity":   input.Quantity,
		"revenue":    receipt.Revenue.StringFixed(2),
	})
	return receipt, nil
}

// SubmitStock applies a stock adjustment.
func (f *FormController) SubmitStock(ctx context.Context, input apiclient.StockInput) error {
	if err := f.client.UpdateStock(ctx, input); err != nil {
		return err
	}
	f.telemetry.Record(ctx, "dashboard.form.stock_updated", map[string]any{
		"product_id":      input.ProductID,
		"quantity_change": input.QuantityChange,
	})
	return nil
}

// SubmitProduct validates and creates a new product.
func (f *FormController) SubmitProduct(ctx context.Context, product apiclient.NewProduct) error {
	if err := f.validator.Validate(product); err != nil {
		return err
	}
	if err := f.client.AddProduct(ctx, product); err != nil {
		return err
	}
	f.telemetry.Record(ctx, "dashboard.form.product_added", map[string]any{
		"product_name": product.ProductName,
	})
	return nil
}

// DeleteProduct removes a product. Callers surface the confirmation prompt
// before dispatching here.
func (f *FormController) DeleteProduct(ctx context.Context, productID int) error {
	if err := f.client.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	f.telemetry.Record(ctx, "dashboard.form.product_deleted", map[string]any{
		"product_id": productID,
	})
	return nil
}
