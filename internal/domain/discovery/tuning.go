package discovery

const (
	BaseObservationIncrement = 1.0

	CuriousObservationBonus = 1.25
	SkilledDurationFactor   = 0.8
	CautiousFailureDiscount = 0.1

	// After a failed experiment the accumulator is floored at
	// threshold * FailureFloorFactor * failureCount.
	FailureFloorFactor = 0.5

	// Forced success once an item has failed this many times.
	BadLuckProtectionThreshold = 3

	// Label used whenever no agent can be resolved for a notification.
	FallbackAgentName = "a colonist"
)
