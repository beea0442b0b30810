package dashboard

var defaultTabDefinitions = []TabDefinition{
	{Code: TabOverview, Name: "Overview", Description: "Quick actions, alerts summary, stock status"},
	{Code: TabInventory, Name: "Inventory", Description: "Complete inventory list"},
	{Code: TabSales, Name: "Sales Analysis", Description: "Monthly sales trend and movers"},
	{Code: TabAlerts, Name: "Alerts", Description: "Reorder and expiry alerts"},
	{Code: TabOrders, Name: "Purchase Orders", Description: "Draft purchase order"},
	{Code: TabActions, Name: "Actions", Description: "Record sales and stock updates"},
	{Code: TabHistory, Name: "History", Description: "Transaction log and profit totals"},
}

// DefaultTabDefinitions returns copies of the built-in tab definitions.
func DefaultTabDefinitions() []TabDefinition {
	out := make([]TabDefinition, len(defaultTabDefinitions))
	copy(out, defaultTabDefinitions)
	return out
}
