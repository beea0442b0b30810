package httpapi

import (
	"bufio"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	gocommand "github.com/goliatone/go-command"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/RaiLord005/inventory-agent-software/components/dashboard"
	"github.com/RaiLord005/inventory-agent-software/components/dashboard/commands"
	"github.com/RaiLord005/inventory-agent-software/components/dashboard/queries"
	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// Handlers groups the shared commands backing the mutating endpoints. Sale is
// a Querier because its response must surface the server's receipt.
type Handlers struct {
	Sale   gocommand.Querier[apiclient.SaleInput, apiclient.SaleReceipt]
	Stock  gocommand.Commander[apiclient.StockInput]
	Add    gocommand.Commander[apiclient.NewProduct]
	Delete gocommand.Commander[commands.DeleteProductInput]
}

// Config wires the server's collaborators.
type Config struct {
	Coordinator *dashboard.Coordinator
	Shell       *dashboard.PageShell
	Forms       *dashboard.FormController
	Activity    *dashboard.ActivityLog
	Broadcast   *dashboard.BroadcastHook
	Handlers    Handlers
	Logger      *zap.Logger
}

// Server serves the rendered dashboard over HTTP.
type Server struct {
	app   *fiber.App
	cfg   Config
	quote *queries.ProductQuoteQuery
	log   *zap.Logger
}

// NewServer builds the fiber application and registers all routes.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Coordinator == nil {
		return nil, errors.New("httpapi: coordinator is required")
	}
	if cfg.Shell == nil {
		return nil, errors.New("httpapi: page shell is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	s := &Server{
		app: fiber.New(fiber.Config{DisableStartupMessage: true}),
		cfg: cfg,
		log: cfg.Logger,
	}
	if cfg.Forms != nil {
		s.quote = queries.NewProductQuoteQuery(cfg.Forms)
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard/"+string(dashboard.DefaultTab), http.StatusFound)
	})
	s.app.Get("/dashboard/:tab", s.handleTab)
	s.app.Get("/logout", s.handleLogout)
	s.app.Get("/export/purchase-order.csv", s.handleExportOrder)
	s.app.Get("/api/product-quote/:id", s.handleProductQuote)
	s.app.Get("/api/activity", s.handleActivity)
	s.app.Get("/events", s.handleEvents)
	s.app.Post("/api/record-sale", s.handleRecordSale)
	s.app.Post("/api/update-stock", s.handleUpdateStock)
	s.app.Post("/api/add-product", s.handleAddProduct)
	s.app.Post("/api/delete-product", s.handleDeleteProduct)
	s.app.Post("/theme/toggle", s.handleThemeToggle)
}

// App exposes the fiber application for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on the given address.
func (s *Server) Listen(addr string) error {
	s.log.Info("dashboard listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleTab(c *fiber.Ctx) error {
	tab := dashboard.Tab(c.Params("tab"))
	page, err := s.cfg.Coordinator.Navigate(c.UserContext(), tab, dashboard.WithAnchor(c.Query("anchor")))
	if errors.Is(err, dashboard.ErrNavigationSuperseded) {
		// A newer navigation owns the view now; this response is obsolete.
		return c.SendStatus(http.StatusConflict)
	}
	if errors.Is(err, dashboard.ErrUnknownTab) {
		return fiber.NewError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		s.log.Warn("tab render failed", zap.String("tab", string(tab)), zap.Error(err))
		return s.errorPage(c, tab, err)
	}
	locale := dashboard.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	defs := dashboard.LocalizeDefinitions(s.cfg.Coordinator.Registry().Definitions(), locale)
	html, err := s.cfg.Shell.RenderPage(page, s.cfg.Coordinator.Theme(), defs)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (s *Server) errorPage(c *fiber.Ctx, tab dashboard.Tab, cause error) error {
	html, err := s.cfg.Shell.RenderError(tab, s.cfg.Coordinator.Theme(), cause)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusBadGateway).SendString(html)
}

func (s *Server) handleProductQuote(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid product id")
	}
	quote, err := s.quote.Query(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, dashboard.ErrProductNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	if quote == nil {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(fiber.Map{
		"product_name": quote.ProductName,
		"mrp":          quote.MRP.StringFixed(2),
		"unit_cost":    quote.UnitCost.StringFixed(2),
	})
}

func (s *Server) handleRecordSale(c *fiber.Ctx) error {
	var input apiclient.SaleInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	receipt, err := s.cfg.Handlers.Sale.Query(c.UserContext(), input)
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	message := receipt.Message
	if message == "" {
		message = "Sale recorded successfully"
	}
	// Revenue and profit come from the server's receipt, never the local
	// preview math.
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": message,
		"revenue": receipt.Revenue.InexactFloat64(),
		"profit":  receipt.Profit.InexactFloat64(),
	})
}

func (s *Server) handleUpdateStock(c *fiber.Ctx) error {
	var input apiclient.StockInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := s.cfg.Handlers.Stock.Execute(c.UserContext(), input); err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Stock updated successfully"})
}

func (s *Server) handleAddProduct(c *fiber.Ctx) error {
	var product apiclient.NewProduct
	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := s.cfg.Handlers.Add.Execute(c.UserContext(), product); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Product added successfully"})
}

func (s *Server) handleDeleteProduct(c *fiber.Ctx) error {
	var input commands.DeleteProductInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := s.cfg.Handlers.Delete.Execute(c.UserContext(), input); err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func (s *Server) handleActivity(c *fiber.Ctx) error {
	if s.cfg.Activity == nil {
		return fiber.ErrNotFound
	}
	limit := c.QueryInt("limit", 20)
	return c.JSON(s.cfg.Activity.Recent(limit))
}

// handleEvents streams coordinator page events as Server-Sent Events so open
// browser tabs can refresh when the view changes elsewhere.
func (s *Server) handleEvents(c *fiber.Ctx) error {
	if s.cfg.Broadcast == nil {
		return fiber.ErrNotFound
	}
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	broadcast := s.cfg.Broadcast
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		events, cancel := broadcast.Subscribe()
		defer cancel()
		encoder := json.NewEncoder(w)
		for event := range events {
			if _, err := w.WriteString("data: "); err != nil {
				return
			}
			if err := encoder.Encode(event); err != nil {
				return
			}
			if _, err := w.WriteString("\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}

func (s *Server) handleThemeToggle(c *fiber.Ctx) error {
	theme, err := s.cfg.Coordinator.ToggleTheme(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"theme": string(theme)})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	if err := s.cfg.Coordinator.Logout(c.UserContext()); err != nil {
		s.log.Warn("logout failed", zap.Error(err))
	}
	return c.Redirect("/", http.StatusFound)
}

func (s *Server) handleExportOrder(c *fiber.Ctx) error {
	lines, err := s.cfg.Coordinator.Client().PurchaseOrder(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	csvBody, err := dashboard.ExportOrderCSV(lines)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="purchase-order.csv"`)
	return c.SendString(csvBody)
}
