// internal/solver/distance.go
//
// Per-position letter ranking (distance lists).

package solver

import (
	"sort"

	"github.com/robalobadob/wordle/apps/go-helper/internal/words"
)

const (
	// Unselectable is the distance of entries rotation must never prefer:
	// the terminating sentinel and any letter with a zero count.
	Unselectable = 1000000

	// Terminator is the letter of the sentinel entry ending every list.
	Terminator = '.'
)

// Rank is one entry of a DistanceList.
type Rank struct {
	Letter   byte
	Count    int
	Distance int
}

// DistanceList ranks the letters of one position by descending count.
type DistanceList []Rank

// Lists holds one DistanceList per position.
type Lists [words.Length]DistanceList

// RankPosition builds the distance list for position i. Equal counts are
// ordered by letter so the ranking is reproducible. The distance of rank k is
// the gap between the top count and the count at rank k+1.
func RankPosition(t *Table, i int) DistanceList {
	list := make(DistanceList, 0, 27)
	for l := 0; l < 26; l++ {
		if t.Seen[l] {
			list = append(list, Rank{Letter: byte('a' + l), Count: t.Counts[i][l]})
		}
	}
	sort.SliceStable(list, func(a, b int) bool {
		if list[a].Count != list[b].Count {
			return list[a].Count > list[b].Count
		}
		return list[a].Letter < list[b].Letter
	})
	list = append(list, Rank{Letter: Terminator})

	top := list[0].Count
	last := len(list) - 1
	for k := range list {
		if k == last || list[k].Count == 0 {
			list[k].Distance = Unselectable
			continue
		}
		list[k].Distance = top - list[k+1].Count
	}
	return list
}

// RankAll builds the distance list of every position.
func RankAll(t *Table) Lists {
	var out Lists
	for i := range out {
		out[i] = RankPosition(t, i)
	}
	return out
}

// Letters returns the letters in rank order, without the terminator.
func (d DistanceList) Letters() string {
	b := make([]byte, 0, len(d))
	for _, r := range d {
		if r.Letter != Terminator {
			b = append(b, r.Letter)
		}
	}
	return string(b)
}

// DistanceOf returns the distance of letter l, or 0 when l is not listed.
func (d DistanceList) DistanceOf(l byte) int {
	for _, r := range d {
		if r.Letter == l {
			return r.Distance
		}
	}
	return 0
}
