package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// MetricTypeEvent is the only metric type recorded as a server event
const MetricTypeEvent = "event"

// top-level metrics.yaml keys which do not define a category
var reservedKeys = map[string]struct{}{
	"$schema": {},
	"$tags":   {},
	"no_lint": {},
}

// ExtraKey is a declared event extra
type ExtraKey struct {
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
}

type metricDefinition struct {
	Type        string              `yaml:"type"`
	Description string              `yaml:"description"`
	SendInPings []string            `yaml:"send_in_pings"`
	ExtraKeys   map[string]ExtraKey `yaml:"extra_keys"`
}

// Event is an event metric definition
type Event struct {
	Category    string
	Name        string
	Description string
	SendInPings []string
	ExtraKeys   map[string]ExtraKey
}

// Identifier returns the dotted category.name event identifier
func (e Event) Identifier() string {
	return e.Category + "." + e.Name
}

// UnknownExtras returns the sorted extra keys not declared by the event
func (e Event) UnknownExtras(extra map[string]string) []string {
	var unknown []string
	for key := range extra {
		if _, ok := e.ExtraKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Catalog is the set of events defined across metrics.yaml files
type Catalog struct {
	events      map[string]Event
	unsupported []string
}

// Load reads and parses the metrics.yaml files at paths
func Load(fs afero.Fs, paths ...string) (Catalog, error) {
	c := Catalog{events: map[string]Event{}}
	for _, path := range paths {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to read metrics file: %w", err)
		}
		if err := c.parse(data); err != nil {
			return Catalog{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	sort.Strings(c.unsupported)
	return c, nil
}

// Parse parses a single metrics.yaml document
func Parse(data []byte) (Catalog, error) {
	c := Catalog{events: map[string]Event{}}
	if err := c.parse(data); err != nil {
		return Catalog{}, err
	}
	sort.Strings(c.unsupported)
	return c, nil
}

func (c *Catalog) parse(data []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	for category, value := range doc {
		if _, ok := reservedKeys[category]; ok {
			continue
		}

		// re-encode each category to decode it into typed definitions
		raw, err := yaml.Marshal(value)
		if err != nil {
			return err
		}

		var metrics map[string]metricDefinition
		if err := yaml.Unmarshal(raw, &metrics); err != nil {
			return fmt.Errorf("invalid category %q: %w", category, err)
		}

		for name, metric := range metrics {
			if metric.Type != MetricTypeEvent {
				c.unsupported = append(c.unsupported, fmt.Sprintf("%s:%s.%s", metric.Type, category, name))
				continue
			}

			event := Event{
				Category:    category,
				Name:        name,
				Description: strings.TrimSpace(metric.Description),
				SendInPings: metric.SendInPings,
				ExtraKeys:   metric.ExtraKeys,
			}
			if _, ok := c.events[event.Identifier()]; ok {
				return fmt.Errorf("duplicate event %s", event.Identifier())
			}
			c.events[event.Identifier()] = event
		}
	}
	return nil
}

// Lookup finds the event by its category.name identifier
func (c Catalog) Lookup(identifier string) (Event, bool) {
	e, ok := c.events[identifier]
	return e, ok
}

// Events returns all events sorted by identifier
func (c Catalog) Events() []Event {
	events := make([]Event, 0, len(c.events))
	for _, e := range c.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Identifier() < events[j].Identifier()
	})
	return events
}

// Unsupported returns the metrics defined with a type other than event,
// formatted as type:category.name
func (c Catalog) Unsupported() []string {
	return c.unsupported
}
