package main

import (
	"fmt"
	"os"
	"strings"

	staticcatalog "emberwild/internal/adapter/catalog/static"
	staticpopulation "emberwild/internal/adapter/population/static"
	memrepo "emberwild/internal/adapter/repo/memory"
	worldruntime "emberwild/internal/adapter/world/runtime"
	"emberwild/internal/app/activity"
	"emberwild/internal/app/ports"
	"emberwild/internal/app/progress"
	"emberwild/internal/app/sim"
	"emberwild/internal/app/tick"
	"emberwild/internal/domain/discovery"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type runOptions struct {
	CatalogDir     string
	PopulationFile string
	ScriptFile     string
	Seed           int64
}

type scenarioFile struct {
	Steps []scenarioStep `yaml:"steps"`
}

// scenarioStep is a tagged union: exactly one of activity, tick, or day
// should be set. Repeat applies the step that many times (default 1).
type scenarioStep struct {
	Activity *activityStep `yaml:"activity"`
	Tick     *tickStep     `yaml:"tick"`
	Day      int           `yaml:"day"`
	Repeat   int           `yaml:"repeat"`
}

type activityStep struct {
	Tag   string `yaml:"tag"`
	Agent string `yaml:"agent"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}

type tickStep struct {
	Seconds float64 `yaml:"seconds"`
}

func loadScenario(path string) (scenarioFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return scenarioFile{}, fmt.Errorf("read scenario: %w", err)
	}
	var sc scenarioFile
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return scenarioFile{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if len(sc.Steps) == 0 {
		return scenarioFile{}, fmt.Errorf("scenario %s has no steps", path)
	}
	for i, step := range sc.Steps {
		set := 0
		if step.Activity != nil {
			set++
		}
		if step.Tick != nil {
			set++
		}
		if step.Day > 0 {
			set++
		}
		if set != 1 {
			return scenarioFile{}, fmt.Errorf("scenario step %d: want exactly one of activity, tick, day", i+1)
		}
	}
	return sc, nil
}

func runScenario(cmd *cobra.Command, opts runOptions) error {
	ctx := cmd.Context()

	sc, err := loadScenario(opts.ScriptFile)
	if err != nil {
		return err
	}

	roster, err := staticpopulation.Load(opts.PopulationFile)
	if err != nil {
		return err
	}
	catalog := staticcatalog.Provider{Root: opts.CatalogDir}
	templates, err := catalog.Templates(ctx)
	if err != nil {
		return err
	}

	store := memrepo.NewStore()
	coordinator := sim.New(sim.Config{
		Seed:           opts.Seed,
		Agents:         roster,
		ProgressRepo:   memrepo.NewProgressRepo(store),
		CompletionRepo: memrepo.NewCompletionRepo(store),
		NotifRepo:      memrepo.NewNotificationRepo(store),
		Tx:             memrepo.NewTxManager(store),
	})
	if _, err := coordinator.RegisterTemplates(ctx, templates); err != nil {
		return err
	}

	activityUC := activity.UseCase{
		Sim:    coordinator,
		Agents: roster,
		World:  worldruntime.NewProvider(worldruntime.DefaultConfig()),
	}
	tickUC := tick.UseCase{Sim: coordinator}
	progressUC := progress.UseCase{Sim: coordinator}

	for i, step := range sc.Steps {
		repeat := step.Repeat
		if repeat < 1 {
			repeat = 1
		}
		for n := 0; n < repeat; n++ {
			records, err := applyStep(cmd, activityUC, tickUC, step)
			if err != nil {
				return fmt.Errorf("scenario step %d: %w", i+1, err)
			}
			for _, rec := range records {
				cmd.Println(formatRecord(rec))
			}
		}
	}

	summary := progressUC.Summary(ctx)
	cmd.Printf("day %d, %d discoveries: %s\n",
		summary.Day, summary.CompletedCount, strings.Join(summary.CompletedIDs, ", "))
	if len(summary.Capabilities) > 0 {
		cmd.Printf("capabilities: %s\n", strings.Join(summary.Capabilities, ", "))
	}
	if len(summary.Structures) > 0 {
		cmd.Printf("structures: %s\n", strings.Join(summary.Structures, ", "))
	}
	return nil
}

func applyStep(cmd *cobra.Command, activityUC activity.UseCase, tickUC tick.UseCase, step scenarioStep) ([]ports.NotificationRecord, error) {
	ctx := cmd.Context()
	switch {
	case step.Activity != nil:
		resp, err := activityUC.Execute(ctx, activity.Request{
			ActivityTag: step.Activity.Tag,
			AgentID:     step.Activity.Agent,
			Position:    discovery.Position{X: step.Activity.X, Y: step.Activity.Y},
		})
		if err != nil {
			return nil, err
		}
		return resp.Notifications, nil
	case step.Tick != nil:
		resp, err := tickUC.Execute(ctx, tick.Request{DeltaSeconds: step.Tick.Seconds})
		if err != nil {
			return nil, err
		}
		return resp.Notifications, nil
	default:
		if err := tickUC.AdvanceDay(ctx, tick.DayRequest{Day: step.Day}); err != nil {
			return nil, err
		}
		cmd.Printf("-- day %d --\n", step.Day)
		return nil, nil
	}
}

func formatRecord(rec ports.NotificationRecord) string {
	switch body := rec.Body.(type) {
	case discovery.PhaseActivated:
		return fmt.Sprintf("[activated] %s", body.TemplateID)
	case discovery.ObservationProgress:
		return fmt.Sprintf("[observing] %s %.1f/%.1f", body.TemplateID, body.Current, body.Threshold)
	case discovery.SparkTriggered:
		return fmt.Sprintf("[spark] %s: %s", body.TemplateID, body.Hint)
	case discovery.ExperimentProgress:
		if body.Failed {
			return fmt.Sprintf("[experiment] %s failed: %s", body.TemplateID, body.FailureMessage)
		}
		return fmt.Sprintf("[experiment] %s %.0f%%", body.TemplateID, body.Progress*100)
	case discovery.DiscoveryCompleted:
		return fmt.Sprintf("[discovered] %s (%s): %s", body.TemplateID, body.Reason, body.UnlocksSummary)
	default:
		return fmt.Sprintf("[%s] %s", rec.Kind, rec.TemplateID)
	}
}
