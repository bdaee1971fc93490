// Package knowledge externalizes the retrieval and intent tables as
// deployment configuration: a YAML file overriding the built-in defaults,
// with hot reload, plus the seed corpus.
package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chartwell/andy/internal/domain/usecases"
)

// Config is the on-disk shape of the knowledge tables. Either section may
// be omitted, in which case the built-in defaults apply. The shape is
// load-bearing for behavioral compatibility: a synonym map keyed by
// canonical term, and an ordered intent list.
type Config struct {
	Synonyms map[string][]string `yaml:"synonyms"`
	Intents  []IntentConfig      `yaml:"intents"`
}

// IntentConfig is one intent rule as configured.
type IntentConfig struct {
	Name           string   `yaml:"name"`
	Keywords       []string `yaml:"keywords"`
	NoContextReply string   `yaml:"no_context_reply"`
	ContextReply   string   `yaml:"context_reply"`
	NextStep       string   `yaml:"next_step"`
}

// Load reads and parses a knowledge config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing knowledge config %s: %w", path, err)
	}
	return &cfg, nil
}

// SynonymTable converts the configured synonyms, falling back to the
// defaults when the section is empty.
func (c *Config) SynonymTable() usecases.SynonymTable {
	if c == nil || len(c.Synonyms) == 0 {
		return usecases.DefaultSynonyms()
	}
	table := make(usecases.SynonymTable, len(c.Synonyms))
	for key, values := range c.Synonyms {
		table[key] = append([]string(nil), values...)
	}
	return table
}

// IntentRules converts the configured intents, preserving file order,
// falling back to the defaults when the section is empty.
func (c *Config) IntentRules() []usecases.IntentRule {
	if c == nil || len(c.Intents) == 0 {
		return usecases.DefaultIntentRules()
	}
	rules := make([]usecases.IntentRule, len(c.Intents))
	for i, in := range c.Intents {
		rules[i] = usecases.IntentRule{
			Name:           in.Name,
			Keywords:       append([]string(nil), in.Keywords...),
			NoContextReply: in.NoContextReply,
			ContextReply:   in.ContextReply,
			NextStep:       in.NextStep,
		}
	}
	return rules
}
