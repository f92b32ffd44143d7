// Package internal provides the App struct that wires all components of
// the HealthBuddy triage system together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/healthbuddy-dev/healthbuddy/internal/cli"
	"github.com/healthbuddy-dev/healthbuddy/internal/core"
	"github.com/healthbuddy-dev/healthbuddy/internal/integration"
	"github.com/healthbuddy-dev/healthbuddy/internal/observability"
	"github.com/healthbuddy-dev/healthbuddy/internal/storage"
)

// App holds all service dependencies for the HealthBuddy system.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Core services
	KB     *core.KnowledgeBase
	Engine *core.Engine

	// Integration services
	LinkResolver integration.RouteLinkResolver

	// Observability
	DecisionLog observability.DecisionLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components of the HealthBuddy system.
// basePath is the directory where configuration, knowledge base
// overrides, and the decision log live (typically the directory
// containing .hbdconfig).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(globalCfg); err != nil {
		return nil, err
	}

	// --- Knowledge base ---
	overridesPath := globalCfg.KBOverridesFile
	if !filepath.IsAbs(overridesPath) {
		overridesPath = filepath.Join(basePath, overridesPath)
	}
	overrides := storage.LoadKBOverrides(overridesPath)
	app.KB = core.LoadKnowledgeBase(core.DefaultKnowledgeBase(), overrides)

	// --- Triage engine ---
	// A missing key here means the rule table references a message the
	// knowledge base cannot supply; refusing to start beats failing
	// mid-evaluation.
	app.Engine, err = core.NewEngine(app.KB, core.DefaultRuleTable())
	if err != nil {
		return nil, err
	}

	// --- Integration services ---
	app.LinkResolver = integration.NewRouteLinkResolver(globalCfg.RouteLinks)

	// --- Observability ---
	logPath := globalCfg.DecisionLogFile
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(basePath, logPath)
	}
	app.DecisionLog, err = observability.NewJSONLDecisionLog(logPath)
	if err != nil {
		// Non-fatal: triage still works without the decision log.
		app.DecisionLog = nil
	}
	if app.DecisionLog != nil {
		app.MetricsCalc = observability.NewMetricsCalculator(app.DecisionLog)
	}

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Engine = app.Engine
	cli.KB = app.KB
	cli.DecisionLog = app.DecisionLog
	cli.MetricsCalc = app.MetricsCalc
	cli.LinkResolver = app.LinkResolver

	return app, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.DecisionLog != nil {
		if err := a.DecisionLog.Close(); err != nil {
			return fmt.Errorf("closing decision log: %w", err)
		}
	}
	return nil
}

// ResolveBasePath determines the data directory for hbd.
func ResolveBasePath() string {
	if home := os.Getenv("HBD_HOME"); home != "" {
		return home
	}
	// Default: look for .hbdconfig in the current directory tree.
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	// Walk up to find a directory containing .hbdconfig.
	for {
		if _, err := os.Stat(filepath.Join(dir, ".hbdconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	// Fall back to cwd.
	cwd, _ := os.Getwd()
	return cwd
}
