package searcher

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"tictactoe/game"
)

// Node is one game state of the search tree. A node owns its children; the
// parent pointer is only followed during backpropagation.
type Node struct {
	parent   *Node
	board    game.Board
	player   game.Player // To move from this state
	move     game.Move   // Move that produced this node, zero for the root
	outcome  game.Outcome
	children []*Node
	untried  []game.Move
	wins     float64
	visits   int
}

// ChildStat summarizes one child for diagnostics.
type ChildStat struct {
	Move    game.Move `json:"move"`
	Visits  int       `json:"visits"`
	Wins    float64   `json:"wins"`
	WinRate float64   `json:"winRate"`
}

// NewRoot returns a fresh root for the given position.
func NewRoot(board game.Board, player game.Player) *Node {
	return newNode(nil, game.Move{}, board, player)
}

func newNode(parent *Node, move game.Move, board game.Board, player game.Player) *Node {
	return &Node{
		parent:  parent,
		board:   board,
		player:  player,
		move:    move,
		outcome: game.CheckWinner(board),
		untried: game.LegalMoves(board),
	}
}

func (n *Node) Terminal() bool {
	return n.outcome.Decided()
}

// selectChildUCT must only be called on a fully expanded, non-terminal node.
func (n *Node) selectChildUCT(c float64) *Node {
	if len(n.children) == 0 {
		panic("node has no children to select from")
	}

	// Every child gets one simulation before scores are compared
	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
	}

	policy := newUCT(c, n.visits)
	var best *Node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := policy.score(child)
		if score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// expand consumes one untried move chosen uniformly at random and returns the
// new child.
func (n *Node) expand(rng Rand) *Node {
	if len(n.untried) == 0 {
		panic("node has no untried moves")
	}

	i := rng.Intn(len(n.untried))
	move := n.untried[i]
	n.untried = slices.Delete(n.untried, i, i+1)

	board := n.board
	board[move.Row][move.Col] = n.player
	child := newNode(n, move, board, n.player.Opponent())
	n.children = append(n.children, child)
	return child
}

// backup records one visit and returns the parent
func (n *Node) backup(rewarder func(mover game.Player) float64) *Node {
	n.wins += rewarder(n.player.Opponent())
	n.visits++
	return n.parent
}

// mostVisited returns the first child with the strictly greatest visit count.
func (n *Node) mostVisited() *Node {
	var best *Node
	maxVisits := -1
	for _, child := range n.children {
		if child.visits > maxVisits {
			maxVisits = child.visits
			best = child
		}
	}
	return best
}

func (n *Node) Parent() *Node         { return n.parent }
func (n *Node) Board() game.Board     { return n.board }
func (n *Node) Player() game.Player   { return n.player }
func (n *Node) Move() game.Move       { return n.move }
func (n *Node) Outcome() game.Outcome { return n.outcome }
func (n *Node) Visits() int           { return n.visits }
func (n *Node) Wins() float64         { return n.wins }
func (n *Node) Children() []*Node     { return slices.Clone(n.children) }
func (n *Node) Untried() []game.Move  { return slices.Clone(n.untried) }
func (n *Node) FullyExpanded() bool   { return len(n.untried) == 0 }
func (n *Node) IsRoot() bool          { return n.parent == nil }

func (n *Node) WinRate() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.wins / float64(n.visits)
}

// Stats lists the children in creation order.
func (n *Node) Stats() []ChildStat {
	return lo.Map(n.children, func(child *Node, _ int) ChildStat {
		return ChildStat{
			Move:    child.move,
			Visits:  child.visits,
			Wins:    child.wins,
			WinRate: child.WinRate(),
		}
	})
}

// Size counts the nodes of the subtree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, child := range n.children {
		size += child.Size()
	}
	return size
}
