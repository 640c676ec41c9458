package discovery

import (
	"sort"
	"strings"
	"unicode"
)

// CompletionRegistry dedupes completion and accumulates the unlock tag sets
// for the running session. Tags are stored lowercased so membership checks
// are case-insensitive.
type CompletionRegistry struct {
	completed    map[string]struct{}
	capabilities map[string]struct{}
	structures   map[string]struct{}
}

func NewCompletionRegistry() *CompletionRegistry {
	r := &CompletionRegistry{}
	r.ResetAll()
	return r
}

// Complete marks the template done and returns the single completion
// notification. The second return is false when the id was already
// completed; nothing is accumulated or emitted in that case.
func (r *CompletionRegistry) Complete(tpl Template, reason string) (DiscoveryCompleted, bool) {
	if _, done := r.completed[tpl.ID]; done {
		return DiscoveryCompleted{}, false
	}
	r.completed[tpl.ID] = struct{}{}
	for _, tag := range tpl.UnlockCapabilities {
		r.capabilities[strings.ToLower(tag)] = struct{}{}
	}
	for _, tag := range tpl.UnlockStructures {
		r.structures[strings.ToLower(tag)] = struct{}{}
	}
	return DiscoveryCompleted{
		TemplateID:     tpl.ID,
		Description:    tpl.Description,
		Reason:         reason,
		UnlocksSummary: UnlockSummary(tpl),
		Major:          tpl.Tier == TierMajor,
	}, true
}

func (r *CompletionRegistry) IsCompleted(templateID string) bool {
	_, ok := r.completed[templateID]
	return ok
}

func (r *CompletionRegistry) HasCapability(tag string) bool {
	_, ok := r.capabilities[strings.ToLower(tag)]
	return ok
}

func (r *CompletionRegistry) IsStructureUnlocked(tag string) bool {
	_, ok := r.structures[strings.ToLower(tag)]
	return ok
}

func (r *CompletionRegistry) CompletedCount() int {
	return len(r.completed)
}

func (r *CompletionRegistry) CompletedIDs() []string {
	out := make([]string, 0, len(r.completed))
	for id := range r.completed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (r *CompletionRegistry) CapabilityTags() []string {
	return sortedKeys(r.capabilities)
}

func (r *CompletionRegistry) StructureTags() []string {
	return sortedKeys(r.structures)
}

// ResetAll clears every set. Session-boundary operation: no notification.
func (r *CompletionRegistry) ResetAll() {
	r.completed = map[string]struct{}{}
	r.capabilities = map[string]struct{}{}
	r.structures = map[string]struct{}{}
}

// UnlockSummary renders everything the template unlocks as one
// human-readable list: capability, structure and resource tags formatted to
// Title Case and deduplicated case-insensitively across the three sets.
func UnlockSummary(tpl Template) string {
	seen := map[string]struct{}{}
	parts := make([]string, 0, len(tpl.UnlockCapabilities)+len(tpl.UnlockStructures)+len(tpl.UnlockResources))
	for _, group := range [][]string{tpl.UnlockCapabilities, tpl.UnlockResources, tpl.UnlockStructures} {
		for _, tag := range group {
			pretty := FormatTag(tag)
			if pretty == "" {
				continue
			}
			key := strings.ToLower(pretty)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			parts = append(parts, pretty)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatTag turns an internal tag into display text: underscores become
// spaces, camel-case boundaries get a space, each word is capitalized.
// "CookingFire" and "cooking_fire" both come out as "Cooking Fire".
func FormatTag(tag string) string {
	tag = strings.ReplaceAll(tag, "_", " ")
	var b strings.Builder
	prev := rune(0)
	for i, r := range tag {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
