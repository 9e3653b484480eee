package domain

import "strings"

type visitColor int

const (
	white visitColor = iota // not yet visited
	gray                    // on the current traversal stack
	black                   // finished, or already reported as part of a cycle
)

// frame is one entry of the explicit traversal stack: the node and the index
// of the next prerequisite edge to follow.
type frame struct {
	id   Identifier
	next int
}

// cycleDetector walks the prerequisite graph (course -> prerequisite) with a
// three-color depth-first search driven by an explicit stack, so deep chains
// don't grow the goroutine stack.
type cycleDetector struct {
	ws     *WorkingSet
	color  map[Identifier]visitColor
	parent map[Identifier]Identifier
	stack  []frame
}

func newCycleDetector(ws *WorkingSet) *cycleDetector {
	d := &cycleDetector{
		ws:     ws,
		color:  make(map[Identifier]visitColor, ws.Len()),
		parent: make(map[Identifier]Identifier, ws.Len()),
	}
	for _, id := range ws.IDs() {
		d.color[id] = white
	}
	return d
}

// DetectCycles returns every course found on a prerequisite cycle and records
// one Cycle diagnostic per cycle, e.g. "Cycle detected: A -> B -> A".
//
// A traversal stops at the first cycle it meets. The cycle's members are
// finished; every other node on the abandoned path goes back to white so a
// later traversal (possibly from the same root) can still reach cycles that
// were hidden behind it. Finished members hide cycles that only pass through
// them, so a second pass checks every strongly connected component and
// reports one more cycle for each node still missing.
func DetectCycles(ws *WorkingSet, summary *LoadSummary) map[Identifier]struct{} {
	d := newCycleDetector(ws)
	members := make(map[Identifier]struct{})

	report := func(path []Identifier) {
		summary.Cycles++
		for _, id := range path {
			members[id] = struct{}{}
		}
		summary.Add(0, KindCycle, "Cycle detected: "+formatPath(path))
	}

	for _, root := range ws.IDs() {
		for d.color[root] == white {
			path := d.explore(root)
			if path == nil {
				break
			}
			report(path)
			d.release(path)
		}
	}

	comp := stronglyConnected(ws)
	for _, id := range ws.IDs() {
		if _, done := members[id]; done || !comp.cyclic(id) {
			continue
		}
		report(comp.cycleThrough(id))
	}

	return members
}

// explore runs a traversal from root. It returns the closed cycle path when
// it reaches a gray node, or nil once root is finished.
func (d *cycleDetector) explore(root Identifier) []Identifier {
	d.color[root] = gray
	d.stack = append(d.stack[:0], frame{id: root})

	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		c, _ := d.ws.Get(top.id)

		if top.next >= len(c.Prerequisites) {
			d.color[top.id] = black
			d.stack = d.stack[:len(d.stack)-1]
			continue
		}

		u := top.id
		v := c.Prerequisites[top.next]
		top.next++

		if !d.ws.Contains(v) {
			continue
		}

		switch d.color[v] {
		case white:
			d.parent[v] = u
			d.color[v] = gray
			d.stack = append(d.stack, frame{id: v})
		case gray:
			return d.cyclePath(u, v)
		}
	}

	return nil
}

// cyclePath rebuilds v -> ... -> u -> v by walking parent links from u.
// v is gray, so it is an ancestor of u on the current stack.
func (d *cycleDetector) cyclePath(u, v Identifier) []Identifier {
	path := []Identifier{v}
	for x := u; x != v; x = d.parent[x] {
		path = append(path, x)
	}
	path = append(path, v)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// release finishes the cycle members and returns the rest of the abandoned
// stack to white.
func (d *cycleDetector) release(path []Identifier) {
	for _, id := range path {
		d.color[id] = black
	}
	for _, f := range d.stack {
		if d.color[f.id] == gray {
			d.color[f.id] = white
			delete(d.parent, f.id)
		}
	}
	d.stack = d.stack[:0]
}

func formatPath(path []Identifier) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = string(id)
	}
	return strings.Join(parts, " -> ")
}
