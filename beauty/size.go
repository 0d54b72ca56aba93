// Package beauty implements three multiplicative scoring functions over a
// candidate table of contents: chapter-size regularity, title validity,
// and numeral monotonicity/coverage. Every exported function returns a
// value in [0, 1], 0 meaning "disqualified" rather than "bad but possible".
package beauty

import (
	"math"
	"sort"

	"toccer/model"
)

// Size scores how regular the gaps between headings are. chars is the
// article's total length (article.Context.Chars).
func Size(contents model.Contents, chars int) float64 {
	n := len(contents)
	if n > model.MaxContentsLength {
		return 0
	}
	if n == 0 {
		return 0
	}

	gaps := make([]float64, 0, n+1)
	gaps = append(gaps, float64(contents[0].Cursor))
	for i := 1; i < n; i++ {
		g := float64(contents[i].Cursor-contents[i-1].Cursor) - float64(len(contents[i-1].Title))
		if g < 0 {
			g = 0
		}
		gaps = append(gaps, g)
	}
	last := float64(chars-contents[n-1].Cursor) - float64(len(contents[n-1].Title))
	if last < 0 {
		last = 0
	}
	gaps = append(gaps, last)

	if len(gaps) >= 2 {
		prior := gaps[:len(gaps)-1]
		maxPrior := 0.0
		for _, g := range prior {
			if g > maxPrior {
				maxPrior = g
			}
		}
		if float64(model.OutlinerDistance)*maxPrior < gaps[len(gaps)-1] {
			gaps = gaps[:len(gaps)-1]
		}
	}

	// V excludes the preamble gap (gaps[0]).
	if len(gaps) < 2 {
		return 0
	}
	v := append([]float64(nil), gaps[1:]...)
	if len(v) < 3 {
		return 0
	}
	sort.Float64s(v)

	acc := make([]float64, len(v)+1)
	for i, g := range v {
		acc[i+1] = acc[i] + g
	}
	sum := func(i, j int) float64 {
		i, j = clampIdx(i, len(v)), clampIdx(j, len(v))
		if j < i {
			i, j = j, i
		}
		return acc[j] - acc[i]
	}
	at := func(pos float64) float64 {
		if pos <= 0 {
			return v[0]
		}
		if pos >= float64(len(v)-1) {
			return v[len(v)-1]
		}
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		if lo == hi {
			return v[lo]
		}
		frac := pos - float64(lo)
		return v[lo]*(1-frac) + v[hi]*frac
	}
	bound := func(target float64) int {
		idx := sort.Search(len(v), func(i int) bool { return v[i] >= target })
		return idx
	}

	vLeft := at(0.25 * float64(len(v)-1))
	vRight := at(0.75 * float64(len(v)-1))

	pow2 := math.Pow(2, float64(model.OutlinerDistance))
	low := math.Floor(vLeft/pow2) - 1
	if low < 1 {
		low = 1
	}
	high := math.Ceil(vRight*pow2) + 1

	leftIndex := bound(low)
	rightIndex := bound(high)
	if rightIndex < leftIndex {
		rightIndex = leftIndex
	}

	mid := math.Ceil((vLeft + vRight) / 2)
	centerIndex := clampIdx(bound(mid), len(v))
	centerIndex = clampBetween(centerIndex, leftIndex, rightIndex)

	for step := 0; step < 10; step++ {
		leftMean := mean(sum, leftIndex, centerIndex)
		rightMean := mean(sum, centerIndex, rightIndex)
		newMid := math.Ceil((leftMean+rightMean)/2) / 2
		newCenter := clampBetween(clampIdx(bound(newMid), len(v)), leftIndex, rightIndex)
		if newCenter == centerIndex || newCenter == leftIndex || newCenter == rightIndex {
			centerIndex = newCenter
			break
		}
		centerIndex = newCenter
	}

	rate := func(i, j int) float64 {
		s := sum(i, j)
		if s == 0 {
			return 0
		}
		m := s / float64(j-i)
		c := clampBetween(bound(m), i, j)
		left := float64(c-i)*m - sum(i, c)
		right := sum(c, j) - float64(j-c)*m
		r := (left + right) / s
		return r * r
	}

	f1 := clampUnit(math.Pow(1/float64(model.FactorContentsSize), 1/float64(n)))
	f2 := 1.0
	if d := rightIndex - leftIndex; d > 0 {
		f2 = clampUnit(math.Pow(1/float64(model.FactorOutliner), float64(n)/float64(d)-1))
	}
	f3 := 1.0
	if s := sum(leftIndex, rightIndex); s > 0 {
		f3 = clampUnit(math.Pow(1/float64(model.FactorOutliner), float64(chars)/s-1))
	}
	f4 := clampUnit(math.Pow(1/float64(model.FactorVarianceSize), rate(leftIndex, centerIndex)))
	f5 := clampUnit(math.Pow(1/float64(model.FactorVarianceSize), rate(centerIndex, rightIndex)))

	return f1 * f2 * f3 * f4 * f5
}

func mean(sum func(int, int) float64, i, j int) float64 {
	if j <= i {
		return 0
	}
	return sum(i, j) / float64(j-i)
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func clampBetween(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
