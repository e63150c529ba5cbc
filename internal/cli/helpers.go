package cli

import (
	"fmt"

	"github.com/cperrin88/exportpoll/internal/logger"
	"github.com/cperrin88/exportpoll/pkg/config"
	"github.com/cperrin88/exportpoll/pkg/export"
	pkghttp "github.com/cperrin88/exportpoll/pkg/http"
	"github.com/cperrin88/exportpoll/pkg/hub"
	"github.com/cperrin88/exportpoll/pkg/portal"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
)

// loadConfig loads the configuration, applies command line overrides and
// configures logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.OutputFormat))
	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// An empty path makes loading and saving fail with a descriptive error.
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

// newService wires the backend clients described by cfg.
func newService(cfg *config.Config) *export.Service {
	hubClient := hub.NewClient(cfg.Hub.URL,
		pkghttp.NewHTTPClient(cfg.Settings.HTTPTimeout, "", cfg.HubAuthenticator()))

	var portalClient portal.Client
	if cfg.PortalConfigured() {
		portalClient = portal.NewRESTClient(cfg.Portal.URL, cfg.Portal.Token,
			pkghttp.NewHTTPClient(cfg.Settings.HTTPTimeout, "", cfg.PortalAuthenticator()))
	}

	return export.NewService(hubClient, portalClient, export.PortalConfig{
		Owner:         cfg.Portal.Username,
		HoldingFolder: cfg.Portal.HoldingFolder,
		LockWindow:    cfg.Settings.LockWindow,
	}, nil)
}
