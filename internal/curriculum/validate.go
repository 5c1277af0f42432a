package curriculum

import "fmt"

// validate performs all structural checks on a graph pack before the
// Graph is built. It collects every problem found so a bad pack is
// reported in one pass, then fails as a single ValidationError.
func validate(nodes []Node, edges []Edge, cascades []Cascade, screening []ScreeningList) error {
	var problems []string

	codes := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.Code == "" {
			problems = append(problems, "node with empty code")
			continue
		}
		if codes[n.Code] {
			problems = append(problems, fmt.Sprintf("duplicate node code: %q", n.Code))
		}
		codes[n.Code] = true
		if n.Severity < 0 || n.Severity > 1 {
			problems = append(problems, fmt.Sprintf("node %q: severity must be in [0, 1], got %g", n.Code, n.Severity))
		}
		if n.Grade < 0 {
			problems = append(problems, fmt.Sprintf("node %q: grade must be >= 0, got %d", n.Code, n.Grade))
		}
	}

	// Dangling edge references.
	for _, e := range edges {
		if !codes[e.Source] {
			problems = append(problems, fmt.Sprintf("edge %q -> %q references unknown source node", e.Source, e.Target))
		}
		if !codes[e.Target] {
			problems = append(problems, fmt.Sprintf("edge %q -> %q references unknown target node", e.Source, e.Target))
		}
		if e.Source == e.Target {
			problems = append(problems, fmt.Sprintf("self-edge on node %q", e.Source))
		}
	}

	// Cycle detection via Kahn's algorithm: if the sort can't consume
	// every node, whatever remains sits on a cycle.
	inDegree := make(map[string]int, len(nodes))
	adj := make(map[string][]string)
	for _, n := range nodes {
		inDegree[n.Code] = 0
	}
	for _, e := range edges {
		if !codes[e.Source] || !codes[e.Target] {
			continue
		}
		inDegree[e.Target]++
		adj[e.Source] = append(adj[e.Source], e.Target)
	}

	var queue []string
	for _, n := range nodes {
		if inDegree[n.Code] == 0 {
			queue = append(queue, n.Code)
		}
	}
	visited := 0
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[code] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(nodes) {
		var cycleNodes []string
		for _, n := range nodes {
			if inDegree[n.Code] > 0 {
				cycleNodes = append(cycleNodes, n.Code)
			}
		}
		problems = append(problems, fmt.Sprintf("cycle detected involving nodes: %v", cycleNodes))
	}

	// Cascades must reference existing nodes and be long enough to ever match.
	cascadeLabels := make(map[string]bool, len(cascades))
	for _, c := range cascades {
		if c.Label == "" {
			problems = append(problems, "cascade with empty label")
		}
		if cascadeLabels[c.Label] {
			problems = append(problems, fmt.Sprintf("duplicate cascade label: %q", c.Label))
		}
		cascadeLabels[c.Label] = true
		if len(c.Nodes) < MinCascadeOverlap {
			problems = append(problems, fmt.Sprintf("cascade %q: needs at least %d nodes, got %d", c.Label, MinCascadeOverlap, len(c.Nodes)))
		}
		for _, code := range c.Nodes {
			if !codes[code] {
				problems = append(problems, fmt.Sprintf("cascade %q references unknown node %q", c.Label, code))
			}
		}
	}

	// Screening lists must reference existing nodes, one list per grade.
	grades := make(map[int]bool, len(screening))
	for _, s := range screening {
		if grades[s.Grade] {
			problems = append(problems, fmt.Sprintf("duplicate screening list for grade %d", s.Grade))
		}
		grades[s.Grade] = true
		if len(s.Nodes) == 0 {
			problems = append(problems, fmt.Sprintf("screening list for grade %d is empty", s.Grade))
		}
		for _, code := range s.Nodes {
			if !codes[code] {
				problems = append(problems, fmt.Sprintf("screening list for grade %d references unknown node %q", s.Grade, code))
			}
		}
	}
	if len(screening) == 0 {
		problems = append(problems, "no screening lists declared")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
