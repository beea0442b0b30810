package dashboard

import (
	"context"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// Tab identifies one dashboard view.
type Tab string

const (
	TabOverview  Tab = "overview"
	TabInventory Tab = "inventory"
	TabSales     Tab = "sales"
	TabAlerts    Tab = "alerts"
	TabOrders    Tab = "orders"
	TabActions   Tab = "actions"
	TabHistory   Tab = "history"
)

// DefaultTab is the initial view after startup.
const DefaultTab = TabOverview

// Tabs returns the built-in tab order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabInventory, TabSales, TabAlerts, TabOrders, TabActions, TabHistory}
}

// DataClient is the slice of the inventory API the dashboard consumes.
// Implementations ensure every call is a fresh round trip.
type DataClient interface {
	Inventory(ctx context.Context) ([]apiclient.Product, error)
	Advice(ctx context.Context) ([]apiclient.AdviceEntry, error)
	FastMoving(ctx context.Context) ([]apiclient.MovementItem, error)
	SlowMoving(ctx context.Context) ([]apiclient.MovementItem, error)
	ExpiryAlerts(ctx context.Context) ([]apiclient.ExpiryAlert, error)
	PurchaseOrder(ctx context.Context) ([]apiclient.OrderLine, error)
	SalesSummary(ctx context.Context) (apiclient.SalesSummary, error)
	SalesHistory(ctx context.Context) ([]apiclient.HistoryEntry, error)
	RecordSale(ctx context.Context, input apiclient.SaleInput) (apiclient.SaleReceipt, error)
	UpdateStock(ctx context.Context, input apiclient.StockInput) error
	AddProduct(ctx context.Context, product apiclient.NewProduct) error
	DeleteProduct(ctx context.Context, productID int) error
	Logout(ctx context.Context) error
}

var _ DataClient = (*apiclient.Client)(nil)

// TabRenderer produces the view description for one tab.
type TabRenderer interface {
	Render(ctx context.Context, rc RenderContext) (*Page, error)
}

// RenderContext carries the collaborators a renderer may use. Renderers hold
// no state of their own; everything comes in through this value.
type RenderContext struct {
	Client    DataClient
	Charts    *ChartAdapter
	Theme     Theme
	Telemetry Telemetry
}

// TabDefinition describes tab metadata shown in navigation. The localized
// maps are keyed by lowercase locale tags and fall back to Name/Description.
type TabDefinition struct {
	Code                 Tab
	Name                 string
	Description          string
	NameLocalized        map[string]string
	DescriptionLocalized map[string]string
}
