package ports

import "emberwild/internal/domain/discovery"

type DiscoveryMetrics interface {
	RecordActivation()
	RecordSpark()
	RecordFailure()
	RecordCompletion(tier discovery.Tier)
}
