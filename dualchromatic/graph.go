package dualchromatic

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

func buildGraph(adjacency [][]int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	n := len(adjacency)
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacency[i][j] != 0 {
				g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
			}
		}
	}
	return g
}

func cloneGraph(g graph.Undirected) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for _, n := range graph.NodesOf(g.Nodes()) {
		out.AddNode(simple.Node(n.ID()))
	}
	for _, e := range graph.EdgesOf(g.Edges()) {
		out.SetEdge(simple.Edge{F: simple.Node(e.From().ID()), T: simple.Node(e.To().ID())})
	}
	return out
}

func deleteEdge(g graph.Undirected, e graph.Edge) *simple.UndirectedGraph {
	out := cloneGraph(g)
	out.RemoveEdge(e.From().ID(), e.To().ID())
	return out
}

// contractEdge merges e's two endpoints into one node (keeping the
// lower ID), dropping the contracted edge itself and collapsing any
// parallel edges or self-loops that result.
func contractEdge(g graph.Undirected, e graph.Edge) *simple.UndirectedGraph {
	keep, drop := e.From().ID(), e.To().ID()
	if drop < keep {
		keep, drop = drop, keep
	}

	out := simple.NewUndirectedGraph()
	for _, n := range graph.NodesOf(g.Nodes()) {
		if n.ID() == drop {
			continue
		}
		out.AddNode(simple.Node(n.ID()))
	}
	for _, edge := range graph.EdgesOf(g.Edges()) {
		a, b := edge.From().ID(), edge.To().ID()
		if (a == keep && b == drop) || (a == drop && b == keep) {
			continue
		}
		if a == drop {
			a = keep
		}
		if b == drop {
			b = keep
		}
		if a == b {
			continue
		}
		out.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
	}
	return out
}

func countNodes(g graph.Undirected) int {
	return len(graph.NodesOf(g.Nodes()))
}

// signature is a canonical string key for memoizing chromaticCount
// across recursion branches that happen to reach the same (nodes,
// edges) shape by a different deletion/contraction order.
func signature(g graph.Undirected) string {
	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	edges := graph.EdgesOf(g.Edges())
	type pair struct{ a, b int64 }
	pairs := make([]pair, len(edges))
	for i, e := range edges {
		a, b := e.From().ID(), e.To().ID()
		if a > b {
			a, b = b, a
		}
		pairs[i] = pair{a, b}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	buf := make([]byte, 0, 16*(len(ids)+len(pairs)))
	for _, id := range ids {
		buf = strconv.AppendInt(buf, id, 10)
		buf = append(buf, ',')
	}
	buf = append(buf, '|')
	for _, p := range pairs {
		buf = strconv.AppendInt(buf, p.a, 10)
		buf = append(buf, '-')
		buf = strconv.AppendInt(buf, p.b, 10)
		buf = append(buf, ',')
	}
	return string(buf)
}
