package beauty

import (
	"math"

	"toccer/model"
)

// Title scores how many of the candidate's titles are individually valid:
// short enough, and not repeated more than TOCDuplicateTolerate times.
func Title(contents model.Contents) float64 {
	n := len(contents)
	if n < model.MinContents || n > model.MaxContentsLength {
		return 0
	}

	seen := make(map[string]int, n)
	valid := 0
	for _, e := range contents {
		dup := seen[e.Title]
		seen[e.Title] = dup + 1
		if len(e.Title) <= model.MaxTitleLength && dup <= model.TOCDuplicateTolerate {
			valid++
		}
	}
	if valid == 0 {
		return 0
	}

	exp := math.Sqrt(float64(n)/float64(valid) - 1)
	return clampUnit(math.Pow(1/float64(model.FactorTitleInvalid), exp))
}
