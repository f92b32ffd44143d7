package models

// GlobalConfig holds settings read from the .hbdconfig file via Viper.
type GlobalConfig struct {
	// KBOverridesFile is the knowledge base override source, relative
	// to the base path unless absolute.
	KBOverridesFile string `yaml:"kb_overrides_file" mapstructure:"kb_overrides_file"`

	// DecisionLogFile is the JSONL decision log, relative to the base
	// path unless absolute.
	DecisionLogFile string `yaml:"decision_log_file" mapstructure:"decision_log_file"`

	// RouteLinks overrides the default route label to URL mapping.
	RouteLinks map[string]string `yaml:"route_links,omitempty" mapstructure:"route_links"`
}
