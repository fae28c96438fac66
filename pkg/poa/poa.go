// 8 Apr 2025

// Package poa aligns sequences against a partial order graph instead
// of a single reference. The graph starts as the chain of one seed
// sequence. Each further reference is aligned against the graph and
// merged in: a match re-uses the node it hit, anything else gets a
// new node, so the graph stays a DAG holding every variant seen so
// far. A final query can then be aligned against the whole graph.
//
// The work per sequence is O(nodes * length), so the cost across N
// sequences of length L approaches O(N^2 * L^2). That is fine for a
// handful of variants and hopeless for hundreds, which is why the
// node count is capped; see SetMaxNodes.
package poa

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/seq_mut/pkg/align"
)

// ErrGraphTooBig is returned before a graph grows past its node cap.
var ErrGraphTooBig = errors.New("partial order graph over its node limit")

// DefaultMaxNodes caps graph growth unless SetMaxNodes says otherwise.
const DefaultMaxNodes = 20000

// Graph is a partial order alignment graph. Nodes live in a dense
// arena; edges are index lists into it. A Graph belongs to a single
// goroutine while it is being built.
type Graph struct {
	syms     []byte
	preds    [][]int32
	succs    [][]int32
	support  []int32 // how many sequences pass through each node
	maxNodes int

	scr   align.Scorer
	pnlty align.Pnlty

	// working storage, re-used across alignments
	mm, dd, ii *matrix.FMatrix2d
	sm, sd, si *matrix.BMatrix2d // traceback states
	pm, pd     [][]int32         // and predecessor columns
}

// Traceback states, one byte each.
const (
	stNone byte = iota
	stM
	stD
	stI
)

const bigf float32 = -1e+38

// New seeds a graph with one sequence, which becomes a single path.
func New(scr align.Scorer, p align.Pnlty, seed []byte) *Graph {
	g := &Graph{
		scr: scr, pnlty: p, maxNodes: DefaultMaxNodes,
		mm: matrix.NewFMatrix2d(1, 1), dd: matrix.NewFMatrix2d(1, 1),
		ii: matrix.NewFMatrix2d(1, 1),
		sm: matrix.NewBMatrix2d(1, 1), sd: matrix.NewBMatrix2d(1, 1),
		si: matrix.NewBMatrix2d(1, 1),
	}
	var prev int32 = -1
	for _, c := range seed {
		cur := g.addNode(c)
		if prev >= 0 {
			g.addEdge(prev, cur)
		}
		prev = cur
	}
	return g
}

// SetMaxNodes changes the node cap. Values below 1 are ignored.
func (g *Graph) SetMaxNodes(n int) {
	if n > 0 {
		g.maxNodes = n
	}
}

// NNodes is the current node count.
func (g *Graph) NNodes() int { return len(g.syms) }

func (g *Graph) addNode(sym byte) int32 {
	g.syms = append(g.syms, sym)
	g.preds = append(g.preds, nil)
	g.succs = append(g.succs, nil)
	g.support = append(g.support, 1)
	return int32(len(g.syms) - 1)
}

func (g *Graph) addEdge(a, b int32) {
	for _, s := range g.succs[a] {
		if s == b {
			return
		}
	}
	g.succs[a] = append(g.succs[a], b)
	g.preds[b] = append(g.preds[b], a)
}

// topo returns the node ids in a topological order. Merging can add
// edges that point at older nodes, so arena order is not enough.
func (g *Graph) topo() []int32 {
	indeg := make([]int32, len(g.syms))
	for v := range g.preds {
		indeg[v] = int32(len(g.preds[v]))
	}
	queue := make([]int32, 0, len(g.syms))
	for v := range indeg {
		if indeg[v] == 0 {
			queue = append(queue, int32(v))
		}
	}
	order := make([]int32, 0, len(g.syms))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, s := range g.succs[v] {
			if indeg[s]--; indeg[s] == 0 {
				queue = append(queue, s)
			}
		}
	}
	return order
}

// Add aligns seq against the graph and merges the trace in, so the
// graph afterwards contains seq as one of its paths.
func (g *Graph) Add(seq []byte) error {
	if len(g.syms)+len(seq) > g.maxNodes {
		return fmt.Errorf("%d nodes plus %d new: %w", len(g.syms), len(seq), ErrGraphTooBig)
	}
	_, ops, path := g.galign(seq)
	var prev int32 = -1
	qi := 0
	for k, op := range ops {
		var cur int32 = -1
		switch op {
		case align.Match:
			cur = path[k]
			g.support[cur]++
			qi++
		case align.Subst, align.Ins:
			cur = g.addNode(seq[qi])
			qi++
		case align.Del: // node not on this sequence's path
			continue
		}
		if prev >= 0 {
			g.addEdge(prev, cur)
		}
		prev = cur
	}
	return nil
}

// AlignQuery aligns q globally against the graph. The returned bytes
// are the graph path the query was aligned along, playing the
// reference role in the Result; render or reduce against them.
func (g *Graph) AlignQuery(q []byte) (*align.Result, []byte, error) {
	if len(g.syms) > g.maxNodes {
		return nil, nil, fmt.Errorf("%d nodes: %w", len(g.syms), ErrGraphTooBig)
	}
	sc, ops, path := g.galign(q)
	ref := make([]byte, 0, len(path))
	for k, op := range ops {
		switch op {
		case align.Match, align.Subst, align.Del:
			ref = append(ref, g.syms[path[k]])
		}
	}
	res := &align.Result{
		Score:  int(sc),
		XStart: 0, XEnd: len(ref),
		YStart: 0, YEnd: len(q),
		Ops: ops,
	}
	return res, ref, nil
}

// Consensus returns the heaviest path through the graph, weighting
// each node by the number of sequences supporting it.
func (g *Graph) Consensus() []byte {
	order := g.topo()
	if len(order) == 0 {
		return nil
	}
	wt := make([]int32, len(g.syms))
	from := make([]int32, len(g.syms))
	for _, v := range order {
		wt[v], from[v] = g.support[v], -1
		for _, p := range g.preds[v] {
			if wt[p]+g.support[v] > wt[v] {
				wt[v], from[v] = wt[p]+g.support[v], p
			}
		}
	}
	best := int32(-1)
	for _, v := range order {
		if len(g.succs[v]) > 0 {
			continue
		}
		if best < 0 || wt[v] > wt[best] {
			best = v
		}
	}
	var rev []byte
	for v := best; v >= 0; v = from[v] {
		rev = append(rev, g.syms[v])
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// galign is the affine-gap recurrence of pkg/align generalised to a
// DAG: the cell to the left of a node is the best cell of any of its
// predecessors, not a single fixed column. Returned path holds the
// node id consumed by each Match/Subst/Del op, -1 for Ins.
func (g *Graph) galign(q []byte) (float32, []align.Op, []int32) {
	order := g.topo()
	nV := len(order)
	n := len(q)
	if nV == 0 { // no graph at all: the query is one long insertion
		if n == 0 {
			return 0, nil, nil
		}
		ops := make([]align.Op, n)
		path := make([]int32, n)
		for i := range ops {
			ops[i], path[i] = align.Ins, -1
		}
		return float32(g.pnlty.Open()) + float32(g.pnlty.Ext()*n), ops, path
	}

	col := make([]int32, len(g.syms)) // node id -> DP column
	for c, v := range order {
		col[v] = int32(c + 1)
	}
	open, ext := float32(g.pnlty.Open()), float32(g.pnlty.Ext())
	oe := open + ext

	g.mm.Resize(n+1, nV+1)
	g.dd.Resize(n+1, nV+1)
	g.ii.Resize(n+1, nV+1)
	g.sm.Resize(n+1, nV+1)
	g.sd.Resize(n+1, nV+1)
	g.si.Resize(n+1, nV+1)
	g.pm = resizeI32(g.pm, n+1, nV+1)
	g.pd = resizeI32(g.pd, n+1, nV+1)

	for i := 0; i <= n; i++ {
		for c := 0; c <= nV; c++ {
			g.mm.Mat[i][c], g.dd.Mat[i][c], g.ii.Mat[i][c] = bigf, bigf, bigf
			g.sm.Mat[i][c], g.sd.Mat[i][c], g.si.Mat[i][c] = stNone, stNone, stNone
		}
	}
	g.mm.Mat[0][0] = 0
	for i := 1; i <= n; i++ {
		g.ii.Mat[i][0] = open + ext*float32(i)
		if i > 1 {
			g.si.Mat[i][0] = stI
		} else {
			g.si.Mat[i][0] = stM
		}
	}

	best3 := func(i, c int) (float32, byte) {
		b, st := g.mm.Mat[i][c], stM
		if g.dd.Mat[i][c] > b {
			b, st = g.dd.Mat[i][c], stD
		}
		if g.ii.Mat[i][c] > b {
			b, st = g.ii.Mat[i][c], stI
		}
		return b, st
	}

	for c0, v := range order {
		c := c0 + 1
		pc := predCols(g.preds[v], col)

		// row 0: a chain of deletions along the graph
		bd, sd, pd := bigf, stNone, int32(0)
		for _, p := range pc {
			if x := g.dd.Mat[0][p] + ext; x >= bd {
				bd, sd, pd = x, stD, p
			}
			if b, st := best3(0, int(p)); b+oe > bd {
				bd, sd, pd = b+oe, st, p
			}
		}
		g.dd.Mat[0][c], g.sd.Mat[0][c], g.pd[0][c] = bd, sd, pd

		for i := 1; i <= n; i++ {
			s := g.scr.Score(q[i-1], g.syms[v])

			bm, sm, pm := bigf, stNone, int32(0)
			bd, sd, pd := bigf, stNone, int32(0)
			for _, p := range pc {
				if b, st := best3(i-1, int(p)); b > bm {
					bm, sm, pm = b, st, p
				}
				if x := g.dd.Mat[i][p] + ext; x > bd {
					bd, sd, pd = x, stD, p
				}
				if b, st := best3(i, int(p)); b+oe > bd {
					bd, sd, pd = b+oe, st, p
				}
			}
			g.mm.Mat[i][c], g.sm.Mat[i][c], g.pm[i][c] = s+bm, sm, pm
			g.dd.Mat[i][c], g.sd.Mat[i][c], g.pd[i][c] = bd, sd, pd

			bi, si := g.ii.Mat[i-1][c]+ext, stI
			if b, st := best3(i-1, c); b+oe > bi {
				bi, si = b+oe, st
			}
			g.ii.Mat[i][c], g.si.Mat[i][c] = bi, si
		}
	}

	// global end point: all of q consumed, at some node with no
	// successors
	sc, state, ec := bigf, stNone, 0
	for _, v := range order {
		if len(g.succs[v]) > 0 {
			continue
		}
		if b, st := best3(n, int(col[v])); b > sc {
			sc, state, ec = b, st, int(col[v])
		}
	}

	node := make([]int32, nV+1) // DP column -> node id
	for c0, v := range order {
		node[c0+1] = v
	}
	var rops []align.Op
	var rpath []int32
	i, c := n, ec
	for !(i == 0 && c == 0) {
		switch state {
		case stM:
			v := node[c]
			if q[i-1] == g.syms[v] {
				rops = append(rops, align.Match)
			} else {
				rops = append(rops, align.Subst)
			}
			rpath = append(rpath, v)
			state, c, i = g.sm.Mat[i][c], int(g.pm[i][c]), i-1
		case stD:
			rops = append(rops, align.Del)
			rpath = append(rpath, node[c])
			state, c = g.sd.Mat[i][c], int(g.pd[i][c])
		case stI:
			rops = append(rops, align.Ins)
			rpath = append(rpath, -1)
			state, i = g.si.Mat[i][c], i-1
		default:
			i, c = 0, 0 // unreachable cell, stop
		}
	}
	for a, b := 0, len(rops)-1; a < b; a, b = a+1, b-1 {
		rops[a], rops[b] = rops[b], rops[a]
		rpath[a], rpath[b] = rpath[b], rpath[a]
	}
	return sc, rops, rpath
}

func predCols(preds []int32, col []int32) []int32 {
	if len(preds) == 0 {
		return []int32{0} // virtual start column
	}
	out := make([]int32, len(preds))
	for i, p := range preds {
		out[i] = col[p]
	}
	return out
}

func resizeI32(m [][]int32, nr, nc int) [][]int32 {
	if len(m) >= nr && len(m) > 0 && len(m[0]) >= nc {
		return m
	}
	out := make([][]int32, nr)
	for i := range out {
		out[i] = make([]int32, nc)
	}
	return out
}
