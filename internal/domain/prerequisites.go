package domain

import "fmt"

// PrunePrerequisites drops self references and references to courses that
// are not in the working set. Courses themselves are never added or removed,
// and surviving prerequisites keep their relative order.
//
// Line numbers are no longer known at this point, so the diagnostics carry none.
func PrunePrerequisites(ws *WorkingSet, summary *LoadSummary) {
	for _, id := range ws.IDs() {
		c, _ := ws.Get(id)

		var keep []Identifier
		for _, p := range c.Prerequisites {
			if p == c.ID {
				summary.SelfPrereqs++
				summary.Add(0, KindSelfPrerequisite, fmt.Sprintf("Self prerequisite removed: %s", c.ID))
				continue
			}
			if !ws.Contains(p) {
				summary.UnknownPrereqs++
				summary.Add(0, KindUnknownPrerequisite, fmt.Sprintf("Unknown prereq '%s' for %s", p, c.ID))
				continue
			}
			keep = append(keep, p)
		}
		c.Prerequisites = keep
	}
}
