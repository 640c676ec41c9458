package staticpopulation

import (
	"context"
	"fmt"
	"os"
	"strings"

	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"

	"gopkg.in/yaml.v3"
)

// ResolveNear matches the closest agent within this Chebyshev distance.
const nearRadius = 8

// Directory is a fixed agent roster loaded from a YAML file; it stands in
// for the live population system this service reads agents from.
type Directory struct {
	agents    []discovery.AgentRef
	positions map[string]discovery.Position
}

type rosterFile struct {
	Agents []agentSpec `yaml:"agents"`
}

type agentSpec struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Traits []string `yaml:"traits"`
	X      int      `yaml:"x"`
	Y      int      `yaml:"y"`
}

func Load(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read population file: %w", err)
	}
	var file rosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse population file: %w", err)
	}
	d := &Directory{positions: map[string]discovery.Position{}}
	for _, spec := range file.Agents {
		id := strings.TrimSpace(spec.ID)
		if id == "" {
			return nil, fmt.Errorf("population file %s: agent with empty id", path)
		}
		traits := make([]discovery.Trait, 0, len(spec.Traits))
		for _, t := range spec.Traits {
			traits = append(traits, discovery.Trait(strings.ToLower(strings.TrimSpace(t))))
		}
		d.agents = append(d.agents, discovery.AgentRef{ID: id, Name: strings.TrimSpace(spec.Name), Traits: traits})
		d.positions[id] = discovery.Position{X: spec.X, Y: spec.Y}
	}
	return d, nil
}

func (d *Directory) ResolveByID(_ context.Context, id string) (discovery.AgentRef, error) {
	for _, a := range d.agents {
		if a.ID == id {
			return a, nil
		}
	}
	return discovery.AgentRef{}, ports.ErrNotFound
}

func (d *Directory) ResolveByName(_ context.Context, name string) (discovery.AgentRef, error) {
	for _, a := range d.agents {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return discovery.AgentRef{}, ports.ErrNotFound
}

func (d *Directory) ResolveNear(_ context.Context, pos discovery.Position) (discovery.AgentRef, error) {
	best := discovery.AgentRef{}
	bestDist := nearRadius + 1
	for _, a := range d.agents {
		p := d.positions[a.ID]
		dist := chebyshev(p, pos)
		if dist < bestDist {
			best = a
			bestDist = dist
		}
	}
	if best.IsZero() {
		return discovery.AgentRef{}, ports.ErrNotFound
	}
	return best, nil
}

func chebyshev(a, b discovery.Position) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
