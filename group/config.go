package group

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/healthops/health"
)

// StatusSettings configures status aggregation and HTTP mapping.
type StatusSettings struct {
	// Order lists status codes from most severe to least severe.
	Order []string `yaml:"order"`

	// HTTPMapping maps status codes to HTTP response codes.
	HTTPMapping map[string]int `yaml:"http-mapping"`
}

// GroupSettings configures a single named group.
type GroupSettings struct {
	// Include lists member contributor names, or "*".
	Include []string `yaml:"include"`

	// Exclude lists excluded contributor names, or "*".
	Exclude []string `yaml:"exclude"`

	// Status overrides the top-level status settings for this group.
	Status StatusSettings `yaml:"status"`

	// ShowComponents is one of never, always, when-authorized. Empty
	// follows ShowDetails.
	ShowComponents string `yaml:"show-components"`

	// ShowDetails is one of never, always, when-authorized. Empty
	// inherits the top-level setting.
	ShowDetails string `yaml:"show-details"`

	// AdditionalPath is a "namespace:path" string such as "server:/livez".
	AdditionalPath string `yaml:"additional-path"`
}

// Config is the YAML configuration surface for health groups. Top-level
// settings apply to the primary group and act as defaults for named groups.
type Config struct {
	// Status configures the default severity order and HTTP mapping.
	Status StatusSettings `yaml:"status"`

	// ShowComponents is the primary group's component visibility.
	ShowComponents string `yaml:"show-components"`

	// ShowDetails is the primary group's detail visibility and the
	// default for named groups.
	ShowDetails string `yaml:"show-details"`

	// Groups configures the named groups.
	Groups map[string]GroupSettings `yaml:"groups"`
}

// ParseConfig parses YAML configuration.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("group: parse config: %w", err)
	}
	return &config, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("group: read config: %w", err)
	}
	return ParseConfig(data)
}

// Build constructs the group registry from the configuration. All
// validation is eager: a malformed show value, additional path, or a path
// shared by two groups fails construction so the application can refuse to
// start.
func (c *Config) Build() (*Groups, error) {
	primaryShowDetails, err := parseShowSetting(c.ShowDetails, ShowNever)
	if err != nil {
		return nil, fmt.Errorf("show-details: %w", err)
	}

	primaryConfig := GroupConfig{
		StatusAggregator:     buildAggregator(c.Status, StatusSettings{}),
		HTTPCodeStatusMapper: buildMapper(c.Status, StatusSettings{}),
		ShowDetails:          primaryShowDetails,
	}
	if c.ShowComponents != "" {
		show, err := ParseShow(c.ShowComponents)
		if err != nil {
			return nil, fmt.Errorf("show-components: %w", err)
		}
		primaryConfig.ShowComponents = &show
	}
	primary := NewGroup(primaryConfig)

	named := make(map[string]Group, len(c.Groups))
	for name, settings := range c.Groups {
		g, err := c.buildGroup(settings, primaryShowDetails)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}
		named[name] = g
	}

	return NewGroups(primary, named)
}

func (c *Config) buildGroup(settings GroupSettings, inheritedShowDetails Show) (Group, error) {
	showDetails, err := parseShowSetting(settings.ShowDetails, inheritedShowDetails)
	if err != nil {
		return nil, fmt.Errorf("show-details: %w", err)
	}

	config := GroupConfig{
		Include:              settings.Include,
		Exclude:              settings.Exclude,
		StatusAggregator:     buildAggregator(settings.Status, c.Status),
		HTTPCodeStatusMapper: buildMapper(settings.Status, c.Status),
		ShowDetails:          showDetails,
	}

	if settings.ShowComponents != "" {
		show, err := ParseShow(settings.ShowComponents)
		if err != nil {
			return nil, fmt.Errorf("show-components: %w", err)
		}
		config.ShowComponents = &show
	}

	if settings.AdditionalPath != "" {
		path, err := ParseAdditionalPath(settings.AdditionalPath)
		if err != nil {
			return nil, err
		}
		config.AdditionalPath = &path
	}

	return NewGroup(config), nil
}

// parseShowSetting parses a show value, falling back when unset.
func parseShowSetting(s string, fallback Show) (Show, error) {
	if s == "" {
		return fallback, nil
	}
	return ParseShow(s)
}

// buildAggregator builds the group's aggregator from its own settings,
// falling back to the shared settings, then to the module default.
func buildAggregator(settings, shared StatusSettings) health.StatusAggregator {
	order := settings.Order
	if len(order) == 0 {
		order = shared.Order
	}
	if len(order) == 0 {
		return nil
	}
	return health.NewSimpleStatusAggregator(order...)
}

// buildMapper builds the group's HTTP code mapper the same way.
func buildMapper(settings, shared StatusSettings) health.HTTPCodeStatusMapper {
	mapping := settings.HTTPMapping
	if len(mapping) == 0 {
		mapping = shared.HTTPMapping
	}
	if len(mapping) == 0 {
		return nil
	}
	return health.NewSimpleHTTPCodeStatusMapper(mapping)
}
