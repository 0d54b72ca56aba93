package toc

// The scoring constants live in package model (MaxContentsLength,
// MinContents, BeautyMin1, BeautyMin2, TemplateCount1 and the rest):
// beauty and pattern need them too, and model depends only on the
// import-free package common, so it is the natural single source of truth
// rather than a private copy duplicated into this package.
