package pattern

import (
	"toccer/article"
	"toccer/model"
	"toccer/numeral"
)

// Generate runs both candidate-generation paths over the article and
// returns every pattern either one produced, unsorted and undeduplicated;
// that is the selector's job.
func Generate(ctx *article.Context, parsers []*numeral.Parser) []model.Pattern {
	out := GenerateNumeric(ctx, parsers)
	out = append(out, GenerateLexical(ctx)...)
	return out
}
