package searcher

import (
	"math"

	"gambit/game"
)

type nodeID = int32

const noNode nodeID = -1

// node is one arena entry. parent and children index into the owning
// tree's slice, so the whole tree is a handful of allocations that grow at
// the tail and never move a node.
type node struct {
	move     game.Move // move that led here, nil at the root
	parent   nodeID
	children []nodeID // in creation order
	untried  []game.Move
	visits   int
	score    float64
}

// tree is a single-decision search tree. It only grows: untried moves shrink
// as children are added, and no node is ever removed.
type tree struct {
	nodes []node
}

func newTree(root game.State) *tree {
	return &tree{nodes: []node{{
		parent:  noNode,
		untried: root.LegalMoves(),
	}}}
}

func (t *tree) root() *node { return &t.nodes[0] }

func (t *tree) at(id nodeID) *node { return &t.nodes[id] }

// expand plays untried[i] of the given node and appends a child for it.
// childState must be the position after that move.
func (t *tree) expand(id nodeID, i int, childState game.State) nodeID {
	parent := &t.nodes[id]
	move := parent.untried[i]
	parent.untried = append(parent.untried[:i], parent.untried[i+1:]...)

	child := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		move:    move,
		parent:  id,
		untried: childState.LegalMoves(),
	})
	// The append may have moved the arena, so index parent again.
	t.nodes[id].children = append(t.nodes[id].children, child)
	return child
}

// pickChild returns the best child of a fully expanded node by UCT.
// Later-created children win ties.
func (t *tree) pickChild(id nodeID) nodeID {
	n := &t.nodes[id]
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(CSquared, float64(n.visits))

	best := noNode
	bestScore := math.Inf(-1)
	for _, child := range n.children {
		c := &t.nodes[child]
		if score := policy.evaluate(c.score, float64(c.visits)); score >= bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// backup adds a finished playout's result to every node from id up to the
// root: one visit each, and the score delta for the result.
func (t *tree) backup(id nodeID, result game.Result) {
	delta := scoreDelta(result)
	for id != noNode {
		n := &t.nodes[id]
		n.visits++
		n.score += delta
		id = n.parent
	}
}

// bestMove returns the move of the most visited root child. Later-created
// children win ties, matching pickChild.
func (t *tree) bestMove() game.Move {
	root := t.root()
	if len(root.children) == 0 {
		panic("node has no children")
	}

	var best game.Move
	most := -1
	for _, child := range root.children {
		if c := &t.nodes[child]; c.visits >= most {
			most = c.visits
			best = c.move
		}
	}
	return best
}
