package cli

import (
	"github.com/healthbuddy-dev/healthbuddy/internal/core"
	"github.com/healthbuddy-dev/healthbuddy/internal/integration"
	"github.com/healthbuddy-dev/healthbuddy/internal/observability"
)

// Service instances, set during app initialization in app.go.
var (
	BasePath     string
	Engine       *core.Engine
	KB           *core.KnowledgeBase
	DecisionLog  observability.DecisionLog
	MetricsCalc  observability.MetricsCalculator
	LinkResolver integration.RouteLinkResolver
)
