package domain

// components labels every course with its strongly connected component in
// the prerequisite graph.
type components struct {
	ws    *WorkingSet
	pos   map[Identifier]int // first-seen position
	label map[Identifier]int
	size  []int
}

// stronglyConnected runs Tarjan's algorithm with an explicit stack
func stronglyConnected(ws *WorkingSet) *components {
	ids := ws.IDs()
	c := &components{
		ws:    ws,
		pos:   make(map[Identifier]int, len(ids)),
		label: make(map[Identifier]int, len(ids)),
	}
	for i, id := range ids {
		c.pos[id] = i
	}

	index := make(map[Identifier]int, len(ids))
	low := make(map[Identifier]int, len(ids))
	onStack := make(map[Identifier]bool, len(ids))
	var pending []Identifier
	var calls []frame
	next := 0

	visit := func(id Identifier) {
		index[id] = next
		low[id] = next
		next++
		pending = append(pending, id)
		onStack[id] = true
		calls = append(calls, frame{id: id})
	}

	for _, root := range ids {
		if _, seen := index[root]; seen {
			continue
		}
		visit(root)

		for len(calls) > 0 {
			top := &calls[len(calls)-1]
			u := top.id
			course, _ := ws.Get(u)

			if top.next < len(course.Prerequisites) {
				v := course.Prerequisites[top.next]
				top.next++
				if !ws.Contains(v) {
					continue
				}
				if _, seen := index[v]; !seen {
					visit(v)
				} else if onStack[v] {
					low[u] = min(low[u], index[v])
				}
				continue
			}

			calls = calls[:len(calls)-1]
			if len(calls) > 0 {
				p := calls[len(calls)-1].id
				low[p] = min(low[p], low[u])
			}
			if low[u] != index[u] {
				continue
			}

			label := len(c.size)
			size := 0
			for {
				w := pending[len(pending)-1]
				pending = pending[:len(pending)-1]
				onStack[w] = false
				c.label[w] = label
				size++
				if w == u {
					break
				}
			}
			c.size = append(c.size, size)
		}
	}

	return c
}

// cyclic reports whether id lies on at least one cycle
func (c *components) cyclic(id Identifier) bool {
	if c.size[c.label[id]] > 1 {
		return true
	}
	course, _ := c.ws.Get(id)
	for _, p := range course.Prerequisites {
		if p == id {
			return true
		}
	}
	return false
}

// cycleThrough returns a shortest cycle through id, staying inside its
// component, rotated to start at its earliest-seen course. id must be cyclic.
func (c *components) cycleThrough(id Identifier) []Identifier {
	label := c.label[id]
	prev := map[Identifier]Identifier{}
	queue := []Identifier{id}
	var last Identifier

search:
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		course, _ := c.ws.Get(u)
		for _, v := range course.Prerequisites {
			if !c.ws.Contains(v) || c.label[v] != label {
				continue
			}
			if v == id {
				last = u
				break search
			}
			if _, seen := prev[v]; !seen {
				prev[v] = u
				queue = append(queue, v)
			}
		}
	}

	// walk back from last to id, then reverse into id -> ... -> last
	var nodes []Identifier
	for x := last; x != id; x = prev[x] {
		nodes = append(nodes, x)
	}
	nodes = append(nodes, id)
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	start := 0
	for i, n := range nodes {
		if c.pos[n] < c.pos[nodes[start]] {
			start = i
		}
	}
	path := append(append([]Identifier{}, nodes[start:]...), nodes[:start]...)
	return append(path, path[0])
}
