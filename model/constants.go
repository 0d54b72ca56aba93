package model

// Algorithm constants. These are compile-time and are never exposed
// through the YAML configuration layer in package config.
const (
	MaxContentsLength    = 2000
	MinContents          = 3
	MaxTitleLength       = 200
	FactorContentsSize   = 4
	FactorOutliner       = 8
	FactorVarianceSize   = 5
	OutlinerDistance     = 3
	FactorTitleInvalid   = 8
	TOCDuplicateTolerate = 1
	FactorNumberMax      = 5
	FactorNumberHoles    = 5
	FactorNumberInvalid  = 5
	FactorTextPrefix     = 3
	KeywordUniqueFactor  = 4
	BeautyMin1           = 0.1
	BeautyMin2           = 0.1
	PrefixMinRatio       = 0.45
	TemplateCount1       = 10
)
