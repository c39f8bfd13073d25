// Package hanoi solves the Towers of Hanoi recursively.
package hanoi

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// MaxDisks caps the tower height; 20 disks already take 1048575 moves.
const MaxDisks = 20

// Move is one disk transfer. Seq counts moves from 1, Disk is the zero-based
// disk index with 0 the smallest.
type Move struct {
	Seq  int
	Disk int
	From string
	To   string
}

func (m Move) String() string {
	return fmt.Sprintf("%d: move disk %d from %s to %s", m.Seq, m.Disk, m.From, m.To)
}

// Solve moves a tower of the given height from one peg to another, calling
// visit for every move in order, and returns the number of moves made.
// Towers taller than MaxDisks are refused with a warning.
func Solve(disks int, from, via, to string, visit func(Move)) int {
	if disks > MaxDisks {
		logrus.Warnf("refusing to move %d disks, pick at most %d", disks, MaxDisks)
		return 0
	}
	return solve(disks, from, via, to, 0, visit)
}

// solve returns the sequence number of the last move it made, starting after seq.
func solve(disks int, from, via, to string, seq int, visit func(Move)) int {
	if disks <= 0 {
		return seq
	}
	seq = solve(disks-1, from, to, via, seq, visit)
	seq++
	visit(Move{Seq: seq, Disk: disks - 1, From: from, To: to})
	return solve(disks-1, via, from, to, seq, visit)
}

// Moves returns every move of a solution.
func Moves(disks int, from, via, to string) []Move {
	var moves []Move
	Solve(disks, from, via, to, func(m Move) {
		moves = append(moves, m)
	})
	return moves
}
