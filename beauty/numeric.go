package beauty

import (
	"math"
	"sort"

	"toccer/model"
)

// Numeric scores how monotone and dense the candidate's chapter numbering
// is. Entries with no associated number are simply absent from the
// longest non-decreasing subsequence.
func Numeric(contents model.Contents) float64 {
	n := len(contents)
	if n < model.MinContents {
		return 0
	}

	seq := longestNonDecreasing(contents)
	if len(seq) == 0 {
		return 0
	}
	max := seq[len(seq)-1]
	if max <= 0 {
		return 0
	}
	min := seq[0]
	if min > 1 {
		min = 1
	}

	distinct := map[int64]bool{}
	for _, v := range seq {
		distinct[v] = true
	}
	holes := max - min + 1 - int64(len(distinct))

	f1 := clampUnit(math.Pow(1/float64(model.FactorNumberMax), 1/float64(max)))
	f2 := clampUnit(math.Pow(1/float64(model.FactorNumberInvalid), float64(n)/float64(len(seq))-1))

	f3 := 1.0
	if denom := max - holes; denom > 0 {
		f3 = clampUnit(math.Pow(1/float64(model.FactorNumberHoles), float64(max)/float64(denom)-1))
	}

	return f1 * f2 * f3
}

// longestNonDecreasing returns the values (not indices) of the longest
// non-decreasing subsequence of numbered entries, in document order,
// computed with the usual patience-sorting binary search in O(n log n).
func longestNonDecreasing(contents model.Contents) []int64 {
	var (
		values  []int64 // values[i]: value of the entry at position i in `numbered`
		tails   []int64 // tails[k]: smallest possible tail value of a length-(k+1) run
		tailIdx []int   // tailIdx[k]: index into `values` of that tail
		prev    []int   // prev[i]: predecessor of `values[i]` in its run, or -1
	)

	for _, e := range contents {
		if e.Number == nil {
			continue
		}
		x := *e.Number
		i := len(values)
		values = append(values, x)

		pos := sort.Search(len(tails), func(k int) bool { return tails[k] > x })
		p := -1
		if pos > 0 {
			p = tailIdx[pos-1]
		}
		prev = append(prev, p)

		if pos == len(tails) {
			tails = append(tails, x)
			tailIdx = append(tailIdx, i)
		} else {
			tails[pos] = x
			tailIdx[pos] = i
		}
	}

	if len(tails) == 0 {
		return nil
	}

	length := len(tails)
	seq := make([]int64, length)
	idx := tailIdx[length-1]
	for k := length - 1; k >= 0; k-- {
		seq[k] = values[idx]
		idx = prev[idx]
	}
	return seq
}
