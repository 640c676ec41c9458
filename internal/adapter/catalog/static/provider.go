package staticcatalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"emberwild/internal/domain/discovery"

	"gopkg.in/yaml.v3"
)

// Provider loads discovery templates from every .yaml file under Root.
// Files are read in lexical order so registration order is stable across
// runs.
type Provider struct {
	Root string
}

type templateFile struct {
	Templates []templateSpec `yaml:"templates"`
}

type templateSpec struct {
	ID                   string   `yaml:"id"`
	Description          string   `yaml:"description"`
	Tier                 string   `yaml:"tier"`
	ObservationThreshold float64  `yaml:"observation_threshold"`
	SparkHint            string   `yaml:"spark_hint"`
	ExperimentSeconds    float64  `yaml:"experiment_seconds"`
	FailureChance        float64  `yaml:"failure_chance"`
	RequiredActivity     string   `yaml:"required_activity"`
	Prerequisites        []string `yaml:"prerequisites"`
	BonusEnvironment     string   `yaml:"bonus_environment"`
	BonusMultiplier      float64  `yaml:"bonus_multiplier"`
	Unlocks              struct {
		Capabilities []string `yaml:"capabilities"`
		Structures   []string `yaml:"structures"`
		Resources    []string `yaml:"resources"`
	} `yaml:"unlocks"`
}

func (p Provider) Templates(_ context.Context) ([]discovery.Template, error) {
	entries, err := os.ReadDir(p.Root)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	seen := map[string]string{}
	var out []discovery.Template
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(p.Root, name))
		if err != nil {
			return nil, fmt.Errorf("read catalog file %s: %w", name, err)
		}
		var file templateFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse catalog file %s: %w", name, err)
		}
		for _, spec := range file.Templates {
			tpl, err := spec.toDomain()
			if err != nil {
				return nil, fmt.Errorf("catalog file %s: %w", name, err)
			}
			if prev, dup := seen[tpl.ID]; dup {
				return nil, fmt.Errorf("catalog file %s: template %q already defined in %s", name, tpl.ID, prev)
			}
			seen[tpl.ID] = name
			out = append(out, tpl)
		}
	}
	return out, nil
}

func (s templateSpec) toDomain() (discovery.Template, error) {
	id := strings.TrimSpace(s.ID)
	if id == "" {
		return discovery.Template{}, fmt.Errorf("template with empty id")
	}
	tier := discovery.Tier(strings.ToLower(strings.TrimSpace(s.Tier)))
	switch tier {
	case discovery.TierBasic, discovery.TierStandard, discovery.TierMajor:
	default:
		return discovery.Template{}, fmt.Errorf("template %q: unknown tier %q", id, s.Tier)
	}
	if s.ObservationThreshold <= 0 {
		return discovery.Template{}, fmt.Errorf("template %q: observation_threshold must be positive", id)
	}
	if tier != discovery.TierBasic && s.ExperimentSeconds <= 0 {
		return discovery.Template{}, fmt.Errorf("template %q: experiment_seconds must be positive for tier %s", id, tier)
	}
	if strings.TrimSpace(s.RequiredActivity) == "" {
		return discovery.Template{}, fmt.Errorf("template %q: required_activity is required", id)
	}

	// Authoring slips in the chance are tolerated, same as at run time.
	chance := s.FailureChance
	if chance < 0 {
		chance = 0
	}
	if chance > 1 {
		chance = 1
	}

	return discovery.Template{
		ID:                   id,
		Description:          strings.TrimSpace(s.Description),
		Tier:                 tier,
		ObservationThreshold: s.ObservationThreshold,
		SparkHint:            s.SparkHint,
		ExperimentSeconds:    s.ExperimentSeconds,
		FailureChance:        chance,
		RequiredActivity:     discovery.ActivityTag(strings.TrimSpace(s.RequiredActivity)),
		Prerequisites:        s.Prerequisites,
		BonusEnvironment:     discovery.EnvironmentTag(strings.TrimSpace(s.BonusEnvironment)),
		BonusMultiplier:      s.BonusMultiplier,
		UnlockCapabilities:   s.Unlocks.Capabilities,
		UnlockStructures:     s.Unlocks.Structures,
		UnlockResources:      s.Unlocks.Resources,
	}, nil
}
