package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

func newTestForms(t *testing.T, client DataClient) *FormController {
	t.Helper()
	forms, err := NewFormController(FormOptions{Client: client})
	require.NoError(t, err)
	return forms
}

func TestLookupFindsProduct(t *testing.T) {
	client := &fakeClient{products: []apiclient.Product{
		{ProductID: 1, ProductName: "Aspirin", MRP: decimal.RequireFromString("12.50"), OrderCostFixed: decimal.RequireFromString("10.25")},
		{ProductID: 2, ProductName: "Ibuprofen", MRP: decimal.RequireFromString("8.00"), OrderCostFixed: decimal.RequireFromString("5.00")},
	}}
	forms := newTestForms(t, client)

	quote, err := forms.Lookup(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Ibuprofen", quote.ProductName)
	assert.True(t, quote.MRP.Equal(decimal.RequireFromString("8.00")))
	assert.True(t, quote.UnitCost.Equal(decimal.RequireFromString("5.00")))
}

func TestLookupUnknownProduct(t *testing.T) {
	forms := newTestForms(t, &fakeClient{})

	_, err := forms.Lookup(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestLookupZeroIDClearsQuote(t *testing.T) {
	forms := newTestForms(t, &fakeClient{})

	quote, err := forms.Lookup(context.Background(), 0)
	require.NoError(t, err)
	assert.Nil(t, quote)
}

func TestLookupPropagatesFetchError(t *testing.T) {
	boom := errors.New("backend down")
	forms := newTestForms(t, &fakeClient{inventoryErr: boom})

	_, err := forms.Lookup(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}

func TestPreviewSaleMath(t *testing.T) {
	quote := &ProductQuote{
		ProductName: "Aspirin",
		MRP:         decimal.RequireFromString("12.50"),
		UnitCost:    decimal.RequireFromString("10.25"),
	}

	preview := PreviewSale(quote, 3)
	assert.Equal(t, "37.50", preview.Revenue)
	assert.Equal(t, "6.75", preview.Profit)
}

func TestPreviewSaleClears(t *testing.T) {
	quote := &ProductQuote{MRP: decimal.RequireFromString("5.00")}

	assert.Equal(t, SalePreview{}, PreviewSale(nil, 3))
	assert.Equal(t, SalePreview{}, PreviewSale(quote, 0))
	assert.Equal(t, SalePreview{}, PreviewSale(quote, -2))
}

func TestPreviewStockTotal(t *testing.T) {
	quote := &ProductQuote{UnitCost: decimal.RequireFromString("10.25")}

	assert.Equal(t, "51.25", PreviewStockTotal(quote, 5))
	assert.Equal(t, "-20.50", PreviewStockTotal(quote, -2))
	assert.Equal(t, "", PreviewStockTotal(nil, 5))
}

func TestSubmitSaleReturnsServerReceipt(t *testing.T) {
	client := &fakeClient{receipt: apiclient.SaleReceipt{
		Message: "Sale recorded successfully",
		Revenue: decimal.RequireFromString("37.50"),
		Profit:  decimal.RequireFromString("6.75"),
	}}
	forms := newTestForms(t, client)

	receipt, err := forms.SubmitSale(context.Background(), apiclient.SaleInput{ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "37.50", receipt.Revenue.StringFixed(2))
	require.Len(t, client.sales, 1)
	assert.Equal(t, 3, client.sales[0].Quantity)
}

func TestSubmitStock(t *testing.T) {
	client := &fakeClient{}
	forms := newTestForms(t, client)

	input := apiclient.StockInput{ProductID: 1, QuantityChange: -4, TotalCost: decimal.RequireFromString("-41.00")}
	require.NoError(t, forms.SubmitStock(context.Background(), input))
	require.Len(t, client.stocks, 1)
	assert.Equal(t, -4, client.stocks[0].QuantityChange)
}

type rejectingValidator struct{ err error }

func (v rejectingValidator) Validate(apiclient.NewProduct) error { return v.err }

func TestSubmitProductValidatesFirst(t *testing.T) {
	invalid := errors.New("product_name is required")
	client := &fakeClient{}
	forms, err := NewFormController(FormOptions{Client: client, Validator: rejectingValidator{err: invalid}})
	require.NoError(t, err)

	err = forms.SubmitProduct(context.Background(), apiclient.NewProduct{})
	assert.ErrorIs(t, err, invalid)
	assert.Empty(t, client.added)
}

func TestSubmitProductPassesValidation(t *testing.T) {
	client := &fakeClient{}
	forms := newTestForms(t, client)

	product := apiclient.NewProduct{ProductName: "Paracetamol", CurrentStock: 100, ExpiryDate: "2027-01-31"}
	require.NoError(t, forms.SubmitProduct(context.Background(), product))
	require.Len(t, client.added, 1)
	assert.Equal(t, "Paracetamol", client.added[0].ProductName)
}

func TestDeleteProduct(t *testing.T) {
	client := &fakeClient{}
	forms := newTestForms(t, client)

	require.NoError(t, forms.DeleteProduct(context.Background(), 7))
	assert.Equal(t, []int{7}, client.deleted)
}
