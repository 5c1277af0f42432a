package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// DefaultTraceDepth is the backward-trace hop limit used when callers
// don't override it.
const DefaultTraceDepth = 4

// MinCascadeOverlap is the minimum number of shared nodes for a cascade
// to count as a match.
const MinCascadeOverlap = 2

// Graph holds the immutable prerequisite DAG with precomputed indices.
// It is built once by New (or Load) and is safe for unsynchronized
// concurrent reads.
type Graph struct {
	nodes      []Node
	byCode     map[string]*Node
	prereqs    map[string][]string // target -> prerequisite sources, edge order
	dependents map[string][]string
	cascades   []Cascade
	screening  map[int][]string
	topoIndex  map[string]int
}

// New builds a Graph from the given data. It validates everything on
// ingestion and fails fast without partial state: dangling edge or
// cascade references, duplicate codes, and cycles (detected via Kahn's
// topological sort) all abort construction.
func New(nodes []Node, edges []Edge, cascades []Cascade, screening []ScreeningList) (*Graph, error) {
	if err := validate(nodes, edges, cascades, screening); err != nil {
		return nil, err
	}

	g := &Graph{
		nodes:      slices.Clone(nodes),
		byCode:     make(map[string]*Node, len(nodes)),
		prereqs:    make(map[string][]string),
		dependents: make(map[string][]string),
		cascades:   slices.Clone(cascades),
		screening:  make(map[int][]string, len(screening)),
		topoIndex:  make(map[string]int, len(nodes)),
	}

	for i := range g.nodes {
		g.byCode[g.nodes[i].Code] = &g.nodes[i]
	}
	for _, e := range edges {
		g.prereqs[e.Target] = append(g.prereqs[e.Target], e.Source)
		g.dependents[e.Source] = append(g.dependents[e.Source], e.Target)
	}
	for _, s := range screening {
		g.screening[s.Grade] = slices.Clone(s.Nodes)
	}

	// Topological index (Kahn), deterministic via sorted queues.
	inDegree := make(map[string]int, len(nodes))
	for _, n := range g.nodes {
		inDegree[n.Code] = len(g.prereqs[n.Code])
	}
	var queue []string
	for code, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, code)
		}
	}
	sort.Strings(queue)

	idx := 0
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		g.topoIndex[code] = idx
		idx++

		deps := slices.Clone(g.dependents[code])
		sort.Strings(deps)
		for _, dep := range deps {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	return g, nil
}

// Node returns the node with the given code.
func (g *Graph) Node(code string) (Node, error) {
	n, ok := g.byCode[code]
	if !ok {
		return Node{}, &NodeNotFoundError{Code: code}
	}
	return *n, nil
}

// Nodes returns all nodes in declaration order.
func (g *Graph) Nodes() []Node {
	return slices.Clone(g.nodes)
}

// Cascades returns all declared cascade paths in declaration order.
func (g *Graph) Cascades() []Cascade {
	return slices.Clone(g.cascades)
}

// Prerequisites returns the direct prerequisite codes of a node, in edge
// declaration order.
func (g *Graph) Prerequisites(code string) []string {
	return slices.Clone(g.prereqs[code])
}

// Dependents returns the codes that directly depend on the given node.
func (g *Graph) Dependents(code string) []string {
	return slices.Clone(g.dependents[code])
}

// BackwardTrace follows prerequisite edges backward from the given node,
// visiting each ancestor at most once. It stops after maxDepth hops or
// when no prerequisite edges remain, whichever comes first. The returned
// path runs from the deepest ancestor reached to the starting node.
//
// When a node has several prerequisites the trace descends into the one
// with the highest severity, ties broken by lowest code, so identical
// graphs always yield identical traces. A maxDepth <= 0 means
// DefaultTraceDepth.
func (g *Graph) BackwardTrace(code string, maxDepth int) ([]string, error) {
	if _, ok := g.byCode[code]; !ok {
		return nil, &NodeNotFoundError{Code: code}
	}
	if maxDepth <= 0 {
		maxDepth = DefaultTraceDepth
	}

	// The visited set guards against revisiting shared ancestors; cycles
	// are already excluded at load time.
	visited := map[string]bool{code: true}
	path := []string{code}
	cur := code

	for hops := 0; hops < maxDepth; hops++ {
		next, ok := g.pickPrerequisite(cur, visited)
		if !ok {
			break
		}
		visited[next] = true
		path = append(path, next)
		cur = next
	}

	slices.Reverse(path)
	return path, nil
}

// pickPrerequisite selects the unvisited prerequisite to descend into:
// highest severity first, then lowest code.
func (g *Graph) pickPrerequisite(code string, visited map[string]bool) (string, bool) {
	var best string
	found := false
	for _, p := range g.prereqs[code] {
		if visited[p] {
			continue
		}
		if !found {
			best, found = p, true
			continue
		}
		bp, cp := g.byCode[best], g.byCode[p]
		if cp.Severity > bp.Severity || (cp.Severity == bp.Severity && p < best) {
			best = p
		}
	}
	return best, found
}

// AncestryDepth returns the number of hops from the node to the deepest
// ancestor reachable within DefaultTraceDepth. Foundational nodes score
// low; nodes far up the prerequisite chain score high.
func (g *Graph) AncestryDepth(code string) (int, error) {
	path, err := g.BackwardTrace(code, DefaultTraceDepth)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// FindCascadePath returns the cascade whose node set best overlaps the
// supplied gap set, or ok=false if no cascade shares at least
// MinCascadeOverlap nodes. Ties are broken by cascade declaration order,
// so identical gap sets always produce identical results.
func (g *Graph) FindCascadePath(gapSet map[string]bool) (CascadeMatch, bool) {
	best := CascadeMatch{}
	for _, c := range g.cascades {
		overlap := 0
		for _, code := range c.Nodes {
			if gapSet[code] {
				overlap++
			}
		}
		if overlap >= MinCascadeOverlap && overlap > best.Overlap {
			best = CascadeMatch{Label: c.Label, Overlap: overlap}
		}
	}
	return best, best.Overlap >= MinCascadeOverlap
}

// PlausibleCascades returns the labels of all cascades meeting the
// minimum overlap against the gap set, in declaration order.
func (g *Graph) PlausibleCascades(gapSet map[string]bool) []CascadeMatch {
	var out []CascadeMatch
	for _, c := range g.cascades {
		overlap := 0
		for _, code := range c.Nodes {
			if gapSet[code] {
				overlap++
			}
		}
		if overlap >= MinCascadeOverlap {
			out = append(out, CascadeMatch{Label: c.Label, Overlap: overlap})
		}
	}
	return out
}

// CascadeNodes returns the ordered node codes of the named cascade.
func (g *Graph) CascadeNodes(label string) []string {
	for _, c := range g.cascades {
		if c.Label == label {
			return slices.Clone(c.Nodes)
		}
	}
	return nil
}

// PriorityScreeningOrder returns the fixed ordered list of high-severity
// nodes to probe first for a learner entering at the given grade. This is
// a static lookup, independent of learner state. When the exact grade has
// no declared list, the nearest lower grade's list is used.
func (g *Graph) PriorityScreeningOrder(entryGrade int) ([]string, error) {
	if list, ok := g.screening[entryGrade]; ok {
		return slices.Clone(list), nil
	}
	for grade := entryGrade - 1; grade >= 0; grade-- {
		if list, ok := g.screening[grade]; ok {
			return slices.Clone(list), nil
		}
	}
	return nil, fmt.Errorf("no screening list declared at or below grade %d", entryGrade)
}

// TopoIndex returns the topological position of a node, with prerequisites
// always ordered before their dependents.
func (g *Graph) TopoIndex(code string) (int, error) {
	idx, ok := g.topoIndex[code]
	if !ok {
		return 0, &NodeNotFoundError{Code: code}
	}
	return idx, nil
}
