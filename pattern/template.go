// Package pattern turns the raw output of the numeral parsers and the
// tokenizer into candidate heading templates, and compiles a template
// string back into a matcher that can be re-run against an article.
package pattern

import (
	"regexp"
	"strings"
)

// Matcher is the compiled form of a template string.
type Matcher interface {
	MatchString(s string) bool
}

type regexMatcher struct{ re *regexp.Regexp }

func (m regexMatcher) MatchString(s string) bool { return m.re.MatchString(s) }

// neverMatcher is returned for a template whose regex body fails to
// compile: the template degrades to a never-match sentinel instead of
// aborting the whole computation.
type neverMatcher struct{}

func (neverMatcher) MatchString(string) bool { return false }

var whitespaceRun = regexp.MustCompile(`\s+`)

// CompileTemplate parses a template string (glob-like, or a "/body/flags"
// regex literal) into a Matcher. ok is false only when a regex-literal
// template's body fails to compile; CompileTemplate never panics.
func CompileTemplate(template string) (Matcher, bool) {
	if body, flags, isLiteral := splitRegexLiteral(template); isLiteral {
		prefix := ""
		if strings.Contains(flags, "i") {
			prefix = "(?i)"
		}
		re, err := regexp.Compile(prefix + body)
		if err != nil {
			return neverMatcher{}, false
		}
		return regexMatcher{re}, true
	}

	var b strings.Builder
	for _, r := range template {
		switch r {
		case ' ':
			b.WriteString(`\s+`)
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			if isRegexMeta(r) {
				b.WriteString(regexp.QuoteMeta(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
	}
	re, err := regexp.Compile(`^\s*(?:` + b.String() + `)`)
	if err != nil {
		return neverMatcher{}, false
	}
	return regexMatcher{re}, true
}

// splitRegexLiteral recognizes the "/<body>/<flags>" form: a leading
// slash followed by a closing slash somewhere later in the string.
func splitRegexLiteral(s string) (body, flags string, ok bool) {
	if !strings.HasPrefix(s, "/") {
		return "", "", false
	}
	rest := s[1:]
	closing := strings.LastIndexByte(rest, '/')
	if closing < 0 {
		return "", "", false
	}
	return rest[:closing], rest[closing+1:], true
}

func isRegexMeta(r rune) bool {
	return strings.ContainsRune(`.*+?()[]{}|^$\`, r)
}

// collapseWhitespace squashes runs of whitespace into a single space, used
// when assembling glob templates so a run of several literal spaces in the
// source text does not turn into several redundant "\s+" groups.
func collapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

// asLiteralOrRegex emits either the glob template "{prefix}*{suffix}"
// or, when prefix/suffix contain characters that would be ambiguous in
// glob form ('/' or '*'), a regex-literal fallback that escapes them.
func asLiteralOrRegex(prefix, suffix string) string {
	prefix = collapseWhitespace(prefix)
	suffix = collapseWhitespace(suffix)
	if strings.ContainsAny(prefix+suffix, "/*") {
		return "/" + regexp.QuoteMeta(prefix) + ".*" + regexp.QuoteMeta(suffix) + "/u"
	}
	return prefix + "*" + suffix
}
