package query

import (
	"regexp"

	"golang.org/x/text/cases"
)

// fold performs locale-independent case folding, built once and reused
// (the SPARQL 1.1 grammar, and RSP-QL/JanusQL in practice, treat keywords
// as case-insensitive). Every regex below is matched against already-folded
// text, so none carries a redundant (?i) flag.
var fold = cases.Fold()

var (
	janusStreamClauseRe = regexp.MustCompile(`\bfrom\s+janus\s+stream\b`)
	namedWindowClauseRe = regexp.MustCompile(`\bfrom\s+named\s+window\b`)
	rangeKeywordRe      = regexp.MustCompile(`\brange\b`)
	stepKeywordRe       = regexp.MustCompile(`\bstep\b`)
	selectKeywordRe     = regexp.MustCompile(`\bselect\b`)
	whereKeywordRe      = regexp.MustCompile(`\bwhere\b`)
)

// DetectLanguage classifies text by the presence of distinguishing
// keywords, in priority order (spec §4.4): JanusQL, then RSP-QL, then
// SPARQL, then an error.
//
// Every keyword is matched word-bounded against case-folded text. RSP-QL is
// recognized by FROM NAMED WINDOW or by a RANGE keyword followed later by a
// STEP keyword. JanusQL's window-bound keywords (OFFSET/START/END) are only
// ever consulted through their introducing clause, FROM JANUS STREAM, never
// on their own: OFFSET is also a plain SPARQL solution modifier, and
// "start"/"end" occur inside ordinary variable and IRI tokens (`?friend`,
// `?sender`), so matching them on their own would misclassify plain SPARQL
// as JanusQL and break renaming invariance (spec §8 property 8).
func DetectLanguage(text string, opts ...Option) (Language, error) {
	_ = buildOptions(opts)
	folded := fold.String(text)

	if janusStreamClauseRe.MatchString(folded) {
		return JanusQL, nil
	}
	if namedWindowClauseRe.MatchString(folded) || hasRangeStep(folded) {
		return RSPQL, nil
	}
	if hasSelectWhere(folded) {
		return SPARQL, nil
	}
	return 0, ErrDetectLanguage
}

// hasRangeStep reports whether folded contains a word-bounded "range"
// keyword followed later by a word-bounded "step" keyword.
func hasRangeStep(folded string) bool {
	loc := rangeKeywordRe.FindStringIndex(folded)
	if loc == nil {
		return false
	}
	return stepKeywordRe.MatchString(folded[loc[1]:])
}

// hasSelectWhere reports whether folded contains a word-bounded "select"
// keyword followed later by a word-bounded "where" keyword.
func hasSelectWhere(folded string) bool {
	loc := selectKeywordRe.FindStringIndex(folded)
	if loc == nil {
		return false
	}
	return whereKeywordRe.MatchString(folded[loc[1]:])
}
