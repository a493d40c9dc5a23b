// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package ptnet

// ReachGraph is the plain (non-omega-abstracting) reachability graph of a
// net, built by breadth-first search from an initial Config. It is only
// safe to use on nets known to be bounded: an unbounded net makes this BFS
// run forever, which is exactly why the transys package exists for the
// general case (spec.md section 4.B: "finite nets, no omega handling").
type ReachGraph struct {
	Configs []Config
	Edges   [][]int // Edges[i] lists the successor state indices of state i
	index   map[Handle]int
}

// ReachabilityGraph builds the finite reachability graph of net starting
// from initial, deduplicating Configs by value. Intended for small or known
// -bounded nets and for tests; the CTL pipeline always goes through the
// transys package instead (SPEC_FULL.md section 4).
func (net *Net) ReachabilityGraph(initial Config) *ReachGraph {
	g := &ReachGraph{index: map[Handle]int{}}
	seed := initial.Handle()
	g.index[seed] = 0
	g.Configs = append(g.Configs, initial)
	g.Edges = append(g.Edges, nil)

	worklist := []int{0}
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		cfg := g.Configs[s]
		for _, t := range net.AllEnabled(cfg) {
			next, err := net.Fire(cfg, t)
			if err != nil {
				// AllEnabled only returns enabled transitions, so Fire
				// cannot fail here.
				panic("ptnet: ReachabilityGraph: " + err.Error())
			}
			h := next.Handle()
			ns, ok := g.index[h]
			if !ok {
				ns = len(g.Configs)
				g.index[h] = ns
				g.Configs = append(g.Configs, next)
				g.Edges = append(g.Edges, nil)
				worklist = append(worklist, ns)
			}
			g.Edges[s] = append(g.Edges[s], ns)
		}
	}
	return g
}
