// Package engine picks computer moves with a fixed-depth adversarial search.
package engine

import (
	"math/rand"

	"github.com/fianchetto/engine/internal/board"
)

// DefaultDepth is the search depth used when the caller does not choose one.
const DefaultDepth = 2

// Infinity bounds the alpha-beta window; no evaluation can reach it.
const Infinity = 1 << 20

// BestMove searches the position to the given depth and returns the chosen
// move. It maximizes the raw material score when white is to move at the
// root and minimizes when black is, threading an alpha-beta window through
// the recursion. Among root moves achieving the extreme value the first one
// generated wins. The bool result is false only when the position has no
// legal moves; the position itself is restored exactly before returning.
func BestMove(p *board.Position, depth int) (board.Move, bool) {
	if depth < 1 {
		depth = DefaultDepth
	}

	moves := p.LegalMoves()
	if len(moves) == 0 {
		return board.Move{}, false
	}

	maximizing := p.SideToMove == board.White
	alpha, beta := -Infinity, Infinity

	var best board.Move
	found := false

	for _, m := range moves {
		p.MakeMove(m)
		score := alphaBeta(p, depth-1, alpha, beta, !maximizing)
		p.UndoMove()

		if maximizing {
			if score > alpha {
				alpha = score
				best = m
				found = true
			}
		} else {
			if score < beta {
				beta = score
				best = m
				found = true
			}
		}
	}

	if !found {
		// Unreachable: the window opens at -Infinity/+Infinity, so the
		// first root score always narrows it. Kept so the contract of
		// returning a legal move holds even if the windowing changes.
		return moves[rand.Intn(len(moves))], true
	}
	return best, true
}

// alphaBeta is plain minimax with alpha-beta pruning over the make/undo
// interface. Leaves, terminal positions included, score as raw material with
// white counting positively. Every branch undoes its move before pruning can
// exit the loop, so the position can never be left mid-line.
func alphaBeta(p *board.Position, depth, alpha, beta int, maximizing bool) int {
	if depth == 0 {
		return p.Material()
	}

	moves := p.LegalMoves()
	if len(moves) == 0 {
		return p.Material()
	}

	if maximizing {
		best := -Infinity
		for _, m := range moves {
			p.MakeMove(m)
			score := alphaBeta(p, depth-1, alpha, beta, false)
			p.UndoMove()
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		p.MakeMove(m)
		score := alphaBeta(p, depth-1, alpha, beta, true)
		p.UndoMove()
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
