package discovery

// ScanActivations is the once-per-tick lazy pass over dormant items: an item
// wakes into Observing when it is not already completed and every
// prerequisite id is in the completed set. Prerequisite satisfaction is
// re-checked each tick rather than tracked as a dependency graph, so a
// cyclic or unsatisfiable prerequisite set just leaves its item Inactive
// forever, observable through the query surface but never an error.
func (e *Engine) ScanActivations() []Notification {
	var out []Notification
	for _, id := range e.order {
		p := e.progress[id]
		if p.Phase != PhaseInactive {
			continue
		}
		if e.registry.IsCompleted(id) {
			continue
		}
		if !e.prerequisitesMet(e.templates[id]) {
			continue
		}
		p.Phase = PhaseObserving
		p.Version++
		out = append(out, PhaseActivated{TemplateID: id})
	}
	return out
}

func (e *Engine) prerequisitesMet(tpl Template) bool {
	for _, prereq := range tpl.Prerequisites {
		if !e.registry.IsCompleted(prereq) {
			return false
		}
	}
	return true
}
