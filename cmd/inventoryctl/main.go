package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ettle/strcase"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/RaiLord005/inventory-agent-software/components/dashboard"
	"github.com/RaiLord005/inventory-agent-software/components/dashboard/commands"
	"github.com/RaiLord005/inventory-agent-software/components/dashboard/httpapi"
	"github.com/RaiLord005/inventory-agent-software/components/dashboard/queries"
	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
	"github.com/RaiLord005/inventory-agent-software/pkg/logger"
)

type cli struct {
	APIURL    string        `name:"api-url" env:"INVENTORY_API_URL" default:"http://localhost:5000" help:"Base URL of the inventory backend."`
	ThemeFile string        `name:"theme-file" env:"INVENTORY_THEME_FILE" help:"Path of the persisted theme preference file."`
	Manifest  string        `name:"manifest" env:"INVENTORY_TAB_MANIFEST" type:"path" help:"Optional tab manifest YAML overriding tab metadata."`
	Timeout   time.Duration `name:"timeout" env:"INVENTORY_API_TIMEOUT" default:"15s" help:"Backend request timeout."`
	Debug     bool          `help:"Enable debug logging."`

	Serve    serveCmd    `cmd:"" help:"Serve the rendered dashboard over HTTP."`
	Render   renderCmd   `cmd:"" help:"Render a single tab to stdout or a file."`
	Theme    themeCmd    `cmd:"" help:"Inspect or change the persisted theme preference."`
	Manifold manifestCmd `cmd:"" name:"manifest" help:"Write a starter tab manifest."`
}

func main() {
	_ = godotenv.Load()

	root := &cli{}
	ctx := kong.Parse(root,
		kong.Description("Inventory dashboard agent for the pharmacy backend API."),
		kong.UsageOnError(),
	)
	err := ctx.Run(root)
	ctx.FatalIfErrorf(err)
}

func (c *cli) logger() *zap.Logger {
	return logger.Must(logger.New(c.Debug))
}

// buildStack wires the shared dashboard stack used by serve and render.
func (c *cli) buildStack(log *zap.Logger) (*dashboard.Stack, error) {
	client := apiclient.New(c.APIURL, apiclient.WithTimeout(c.Timeout))

	registry := dashboard.NewRegistry()
	if c.Manifest != "" {
		if _, err := registry.LoadManifestFile(c.Manifest); err != nil {
			return nil, err
		}
	}

	return dashboard.Bootstrap(dashboard.BootstrapConfig{
		Client:    client,
		Registry:  registry,
		ThemeFile: c.ThemeFile,
		Logger:    log,
	})
}

type serveCmd struct {
	Listen string `default:":8080" env:"INVENTORY_LISTEN_ADDR" help:"Listen address for the dashboard."`
}

func (cmd *serveCmd) Run(root *cli) error {
	log := root.logger()
	defer log.Sync() //nolint:errcheck

	stack, err := root.buildStack(log)
	if err != nil {
		return err
	}

	server, err := httpapi.NewServer(httpapi.Config{
		Coordinator: stack.Coordinator,
		Shell:       stack.Shell,
		Forms:       stack.Forms,
		Activity:    stack.Activity,
		Broadcast:   stack.Broadcast,
		Handlers: httpapi.Handlers{
			Sale:   commands.NewRecordSaleCommand(stack.Forms, stack.Activity),
			Stock:  commands.NewUpdateStockCommand(stack.Forms, stack.Activity),
			Add:    commands.NewAddProductCommand(stack.Forms, stack.Activity),
			Delete: commands.NewDeleteProductCommand(stack.Forms, stack.Activity),
		},
		Logger: log.Named("http"),
	})
	if err != nil {
		return err
	}
	return server.Listen(cmd.Listen)
}

type renderCmd struct {
	Tab string `default:"overview" help:"Tab to render."`
	Out string `type:"path" help:"Output file (defaults to stdout)."`
}

func (cmd *renderCmd) Run(root *cli) error {
	log := root.logger()
	defer log.Sync() //nolint:errcheck

	stack, err := root.buildStack(log)
	if err != nil {
		return err
	}

	page, err := queries.NewPageQuery(stack.Coordinator).Query(context.Background(), queries.PageQueryInput{
		Tab: dashboard.Tab(cmd.Tab),
	})
	if err != nil {
		return err
	}
	html, err := stack.Shell.RenderPage(page, stack.Coordinator.Theme(), stack.Coordinator.Registry().Definitions())
	if err != nil {
		return err
	}
	if cmd.Out == "" {
		fmt.Fprintln(os.Stdout, html)
		return nil
	}
	return os.WriteFile(cmd.Out, []byte(html), 0o644)
}

type themeCmd struct {
	Set    string `help:"Set the theme (light or dark)." enum:"light,dark,"`
	Toggle bool   `help:"Flip the persisted theme."`
}

func (cmd *themeCmd) Run(root *cli) error {
	if root.ThemeFile == "" {
		return fmt.Errorf("inventoryctl: --theme-file is required for theme management")
	}
	store := dashboard.NewFilePreferenceStore(root.ThemeFile)
	ctx := context.Background()

	theme, err := store.Theme(ctx)
	if err != nil {
		theme = dashboard.DefaultTheme
	}
	switch {
	case cmd.Set != "":
		theme, err = dashboard.ParseTheme(cmd.Set)
		if err != nil {
			return err
		}
		if err := store.SaveTheme(ctx, theme); err != nil {
			return err
		}
	case cmd.Toggle:
		theme = theme.Toggle()
		if err := store.SaveTheme(ctx, theme); err != nil {
			return err
		}
	}
	fmt.Fprintln(os.Stdout, theme)
	return nil
}

type manifestCmd struct {
	Out  string `required:"" type:"path" help:"Path of the manifest file to write."`
	Name string `default:"Inventory Dashboard" help:"Deployment name recorded in the manifest."`
}

func (cmd *manifestCmd) Run(_ *cli) error {
	doc := dashboard.TabManifestDocument{
		Version: dashboard.ManifestVersion,
		Name:    strcase.ToKebab(cmd.Name),
	}
	for _, def := range dashboard.DefaultTabDefinitions() {
		doc.Tabs = append(doc.Tabs, dashboard.ManifestTab{
			Code:        def.Code,
			Name:        def.Name,
			Description: def.Description,
		})
	}

	file, err := os.Create(cmd.Out) //nolint:gosec
	if err != nil {
		return fmt.Errorf("inventoryctl: create manifest %s: %w", cmd.Out, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("inventoryctl: write manifest: %w", err)
	}
	return nil
}
