package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

func TestRecordSaleCommand(t *testing.T) {
	service := &stubForms{}
	telemetry := &stubTelemetry{}
	cmd := NewRecordSaleCommand(service, telemetry)
	receipt, err := cmd.Query(context.Background(), apiclient.SaleInput{ProductID: 1, Quantity: 3})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if service.saleCalls != 1 {
		t.Fatalf("expected sale call")
	}
	if telemetry.calls == 0 {
		t.Fatalf("expected telemetry to record events")
	}
	// the server's receipt flows back to the caller
	if receipt.Revenue.StringFixed(2) != "30.00" || receipt.Profit.StringFixed(2) != "12.00" {
		t.Fatalf("receipt not returned: %+v", receipt)
	}
}

func TestRecordSaleCommandPropagatesError(t *testing.T) {
	service := &stubForms{err: errors.New("insufficient stock")}
	cmd := NewRecordSaleCommand(service, nil)
	if _, err := cmd.Query(context.Background(), apiclient.SaleInput{ProductID: 1, Quantity: 99}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestUpdateStockCommand(t *testing.T) {
	service := &stubForms{}
	cmd := NewUpdateStockCommand(service, nil)
	if err := cmd.Execute(context.Background(), apiclient.StockInput{ProductID: 2, QuantityChange: 10}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.stockCalls != 1 {
		t.Fatalf("expected stock call")
	}
}

func TestAddProductCommand(t *testing.T) {
	service := &stubForms{}
	cmd := NewAddProductCommand(service, nil)
	if err := cmd.Execute(context.Background(), apiclient.NewProduct{ProductName: "Paracetamol"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.productCalls != 1 {
		t.Fatalf("expected product call")
	}
}

func TestDeleteProductCommand(t *testing.T) {
	service := &stubForms{}
	cmd := NewDeleteProductCommand(service, nil)
	if err := cmd.Execute(context.Background(), DeleteProductInput{ProductID: 7}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.deleteCalls != 1 {
		t.Fatalf("expected delete call")
	}
}

func TestCommandsRequireService(t *testing.T) {
	if _, err := NewRecordSaleCommand(nil, nil).Query(context.Background(), apiclient.SaleInput{}); err == nil {
		t.Fatalf("expected error")
	}
	if err := NewDeleteProductCommand(nil, nil).Execute(context.Background(), DeleteProductInput{}); err == nil {
		t.Fatalf("expected error")
	}
}

type stubForms struct {
	saleCalls    int
	stockCalls   int
	productCalls int
	deleteCalls  int
	err          error
}

func (s *stubForms) SubmitSale(context.Context, apiclient.SaleInput) (apiclient.SaleReceipt, error) {
	s.saleCalls++
	if s.err != nil {
		return apiclient.SaleReceipt{}, s.err
	}
	return apiclient.SaleReceipt{
		Message: "Sale recorded",
		Revenue: decimal.NewFromInt(30),
		Profit:  decimal.NewFromInt(12),
	}, nil
}

func (s *stubForms) SubmitStock(context.Context, apiclient.StockInput) error {
	s.stockCalls++
	return s.err
}

func (s *stubForms) SubmitProduct(context.Context, apiclient.NewProduct) error {
	s.productCalls++
	return s.err
}

func (s *stubForms) DeleteProduct(context.Context, int) error {
	s.deleteCalls++
	return s.err
}

type stubTelemetry struct {
	calls int
}

func (s *stubTelemetry) Record(context.Context, string, map[string]any) {
	s.calls++
}
