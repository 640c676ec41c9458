package discovery

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestObservationMultiplierComposition(t *testing.T) {
	tpl := Template{BonusEnvironment: "forest", BonusMultiplier: 1.3}

	cases := []struct {
		name  string
		env   EnvironmentTag
		agent AgentRef
		want  float64
	}{
		{"baseline", "plain", AgentRef{}, 1.0},
		{"bonus environment", "forest", AgentRef{}, 1.3},
		{"curious only", "plain", AgentRef{ID: "a", Traits: []Trait{TraitCurious}}, 1.25},
		{"bonus and curious compose multiplicatively", "forest", AgentRef{ID: "a", Traits: []Trait{TraitCurious}}, 1.625},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ObservationMultiplier(tpl, tc.env, tc.agent); !almostEqual(got, tc.want) {
				t.Fatalf("multiplier = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestObservationMultiplierIgnoresZeroBonus(t *testing.T) {
	tpl := Template{BonusEnvironment: "forest"}
	if got := ObservationMultiplier(tpl, "forest", AgentRef{}); !almostEqual(got, 1.0) {
		t.Fatalf("unset bonus multiplier should stay at 1.0, got %v", got)
	}
}

func TestExperimentDurationMultiplier(t *testing.T) {
	if got := ExperimentDurationMultiplier(AgentRef{}); !almostEqual(got, 1.0) {
		t.Fatalf("baseline duration multiplier = %v", got)
	}
	skilled := AgentRef{ID: "a", Traits: []Trait{TraitSkilled}}
	if got := ExperimentDurationMultiplier(skilled); !almostEqual(got, 0.8) {
		t.Fatalf("skilled duration multiplier = %v", got)
	}
}

func TestEffectiveFailureChanceClamps(t *testing.T) {
	cautious := AgentRef{ID: "a", Traits: []Trait{TraitCautious}}

	if got := EffectiveFailureChance(0.4, cautious); !almostEqual(got, 0.3) {
		t.Fatalf("discounted chance = %v, want 0.3", got)
	}
	if got := EffectiveFailureChance(0.05, cautious); got != 0 {
		t.Fatalf("chance below zero must clamp to 0, got %v", got)
	}
	if got := EffectiveFailureChance(1.7, AgentRef{}); got != 1 {
		t.Fatalf("chance above one must clamp to 1, got %v", got)
	}
}
