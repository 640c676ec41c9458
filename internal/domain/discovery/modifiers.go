package discovery

// Modifier resolution is stateless: every function derives its result from
// the template, the environment tag at the activity position, and the acting
// agent's traits. Multipliers compose multiplicatively.

func ObservationMultiplier(tpl Template, env EnvironmentTag, agent AgentRef) float64 {
	mult := BaseObservationIncrement
	if tpl.BonusEnvironment != "" && tpl.BonusEnvironment == env && tpl.BonusMultiplier > 0 {
		mult *= tpl.BonusMultiplier
	}
	if agent.HasTrait(TraitCurious) {
		mult *= CuriousObservationBonus
	}
	return mult
}

func ExperimentDurationMultiplier(agent AgentRef) float64 {
	if agent.HasTrait(TraitSkilled) {
		return SkilledDurationFactor
	}
	return 1.0
}

// EffectiveFailureChance applies the cautious-trait discount and clamps into
// [0,1]; a template authored with an out-of-range chance is tolerated rather
// than rejected.
func EffectiveFailureChance(base float64, agent AgentRef) float64 {
	chance := base
	if agent.HasTrait(TraitCautious) {
		chance -= CautiousFailureDiscount
	}
	return clamp01(chance)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
