package query

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rdfkit/graphiso/internal/textlit"
	"github.com/rdfkit/graphiso/term"
	"github.com/rdfkit/graphiso/triple"
)

// Regex recognizers are compiled once at package init, not per call (spec
// §9 "Regex reuse").
var (
	// commentRe also matches IRIs and quoted literals so that a `#` inside
	// them (e.g. an XSD datatype IRI) is kept; only `#...` matches are removed.
	commentRe = regexp.MustCompile(`<[^>\s]*>|"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'|#[^\n]*`)

	selectProjRe = regexp.MustCompile(`(?is)SELECT\s+(\*\s*|(?:\?\w+\s*)+)(?:FROM|WHERE)`)

	namedWindowRe = regexp.MustCompile(`(?is)FROM\s+NAMED\s+WINDOW\s+<([^>]+)>\s+ON\s+<([^>]+)>(?:\s+RANGE\s+(\S+)\s+STEP\s+(\S+))?`)
	janusStreamRe = regexp.MustCompile(`(?is)FROM\s+JANUS\s+STREAM\s+<([^>]+)>(?:\s+OFFSET\s+(\S+))?(?:\s+START\s+(\S+))?(?:\s+END\s+(\S+))?`)

	variableTokenRe = regexp.MustCompile(`^\?(\w+)$`)
	blankTokenRe    = regexp.MustCompile(`^_:(\w+)$`)
	iriTokenRe      = regexp.MustCompile(`^<([^>]*)>$`)
	prefixedTokenRe = regexp.MustCompile(`^(\w+):(\w+)$`)
	literalTokenRe  = regexp.MustCompile(`^("(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*')(\^\^\S+|@[A-Za-z]+(?:-[A-Za-z0-9]+)*)?$`)
)

// Extract parses text into a Query (spec §4.3): language, projection, BGP,
// stream IRIs, and window bounds. It is not a full parser — it recovers
// only the surface conventions spec §4.3 names.
func Extract(text string, opts ...Option) (Query, error) {
	o := buildOptions(opts)
	stripped := commentRe.ReplaceAllStringFunc(text, func(m string) string {
		if strings.HasPrefix(m, "#") {
			return ""
		}
		return m
	})

	lang, err := DetectLanguage(stripped, WithLogger(o.Logger))
	if err != nil {
		return Query{}, err
	}

	projection, err := extractProjection(stripped)
	if err != nil {
		return Query{}, err
	}

	body, err := extractWhereBody(stripped)
	if err != nil {
		return Query{}, err
	}

	triples, err := parseTriplePatterns(body)
	if err != nil {
		return Query{}, err
	}
	if len(triples) == 0 {
		return Query{}, newParseError(CodeEmptyBGP, "WHERE clause contains no triple patterns")
	}

	windows, streams := extractWindows(stripped)
	if err := validateWindowClause(lang, stripped, windows); err != nil {
		return Query{}, err
	}

	return Query{
		Language:   lang,
		Projection: projection,
		BGP:        triple.NewGraph(triples),
		Streams:    streams,
		Windows:    windows,
	}, nil
}

func extractProjection(text string) ([]string, error) {
	m := selectProjRe.FindStringSubmatch(text)
	if m == nil {
		return nil, newParseError(CodeMalformedTriple, "no SELECT ... WHERE clause found")
	}
	raw := strings.TrimSpace(m[1])
	if raw == "*" {
		return []string{"*"}, nil
	}
	fields := strings.Fields(raw)
	projection := make([]string, len(fields))
	for i, f := range fields {
		projection[i] = strings.TrimPrefix(f, "?")
	}
	return projection, nil
}

// extractWhereBody locates the WHERE clause's brace-delimited body by
// matching braces directly (not by regex) so nested braces cannot confuse
// extraction. Braces are counted wherever they occur: a `{` or `}` inside a
// quoted literal or an IRI is counted like any other.
func extractWhereBody(text string) (string, error) {
	idx := findKeyword(text, "where")
	if idx < 0 {
		return "", newParseError(CodeUnbalancedBraces, "no WHERE clause found")
	}
	rest := text[idx:]
	open := strings.IndexByte(rest, '{')
	if open < 0 {
		return "", newParseError(CodeUnbalancedBraces, "WHERE clause has no opening brace")
	}

	depth := 0
	for i := open; i < len(rest); i++ {
		switch rest[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return rest[open+1 : i], nil
			}
		}
	}
	return "", newParseError(CodeUnbalancedBraces, "WHERE clause braces do not balance")
}

func findKeyword(text, keyword string) int {
	folded := fold.String(text)
	return strings.Index(folded, fold.String(keyword))
}

// parseTriplePatterns splits body into `.`-terminated patterns, respecting
// quoted literals (a `.` inside a quoted literal does not terminate a
// pattern), then tokenizes each into exactly three term.Nodes.
func parseTriplePatterns(body string) ([]triple.Triple, error) {
	segments, err := splitPatterns(body)
	if err != nil {
		return nil, err
	}

	triples := make([]triple.Triple, 0, len(segments))
	for _, seg := range segments {
		tokens, err := tokenize(seg)
		if err != nil {
			return nil, err
		}
		if len(tokens) != 3 {
			return nil, newParseError(CodeMalformedTriple,
				fmt.Sprintf("expected 3 tokens, got %d: %q", len(tokens), seg))
		}
		nodes := make([]term.Node, 3)
		for i, tok := range tokens {
			n, err := classifyToken(tok)
			if err != nil {
				return nil, err
			}
			nodes[i] = n
		}
		triples = append(triples, triple.New(nodes[0], nodes[1], nodes[2]))
	}
	return triples, nil
}

func splitPatterns(body string) ([]string, error) {
	var segments []string
	var current strings.Builder
	var quote byte
	inIRI := false
	escaped := false

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case quote != 0:
			current.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == quote {
				quote = 0
			}
		case inIRI:
			current.WriteByte(c)
			if c == '>' {
				inIRI = false
			}
		case c == '"' || c == '\'':
			quote = c
			current.WriteByte(c)
		case c == '<':
			inIRI = true
			current.WriteByte(c)
		case c == '.':
			segments = append(segments, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, newParseError(CodeMalformedTriple, "unterminated quoted literal")
	}
	if inIRI {
		return nil, newParseError(CodeMalformedTriple, "unterminated IRI")
	}
	if trailing := strings.TrimSpace(current.String()); trailing != "" {
		segments = append(segments, trailing)
	}

	nonEmpty := segments[:0]
	for _, s := range segments {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return nonEmpty, nil
}

// tokenize splits one triple pattern into its three whitespace-separated
// tokens, keeping quoted literals (and their trailing `^^iri`/`@tag`) intact.
func tokenize(seg string) ([]string, error) {
	var tokens []string
	i := 0
	for i < len(seg) {
		for i < len(seg) && isSpace(seg[i]) {
			i++
		}
		if i >= len(seg) {
			break
		}
		start := i
		if seg[i] == '"' || seg[i] == '\'' {
			quote := seg[i]
			i++
			for i < len(seg) {
				if seg[i] == '\\' && i+1 < len(seg) {
					i += 2
					continue
				}
				if seg[i] == quote {
					i++
					break
				}
				i++
			}
			// consume an optional trailing ^^iri or @tag with no intervening space
			for i < len(seg) && !isSpace(seg[i]) {
				i++
			}
		} else {
			for i < len(seg) && !isSpace(seg[i]) {
				i++
			}
		}
		tokens = append(tokens, seg[start:i])
	}
	return tokens, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func classifyToken(tok string) (term.Node, error) {
	if m := variableTokenRe.FindStringSubmatch(tok); m != nil {
		return term.NewVariable(m[1]), nil
	}
	if m := blankTokenRe.FindStringSubmatch(tok); m != nil {
		return term.NewBlankNode(m[1]), nil
	}
	if m := iriTokenRe.FindStringSubmatch(tok); m != nil {
		return term.NewIRI(m[1]), nil
	}
	if m := literalTokenRe.FindStringSubmatch(tok); m != nil {
		lexical, err := textlit.ConvertString(m[1])
		if err != nil {
			return term.Node{}, newParseError(CodeMalformedTriple, fmt.Sprintf("invalid literal %q: %v", tok, err))
		}
		return term.NewLiteral(lexical, m[2]), nil
	}
	if m := prefixedTokenRe.FindStringSubmatch(tok); m != nil {
		// Prefix/IRI resolution is an external collaborator (spec §1): the
		// prefixed token is kept verbatim as the IRI's string.
		return term.NewIRI(tok), nil
	}
	return term.Node{}, newParseError(CodeMalformedTriple, fmt.Sprintf("unrecognized token %q", tok))
}

// extractWindows recovers RSP-QL and JanusQL window descriptors (spec
// §4.3). Returns the windows found and the distinct stream IRIs they
// reference.
func extractWindows(text string) ([]Window, []string) {
	var windows []Window
	seenStreams := make(map[string]struct{})
	var streams []string

	addStream := func(s string) {
		if _, ok := seenStreams[s]; ok {
			return
		}
		seenStreams[s] = struct{}{}
		streams = append(streams, s)
	}

	for _, m := range namedWindowRe.FindAllStringSubmatch(text, -1) {
		stream := m[2]
		windows = append(windows, Window{Stream: stream, Range: m[3], Step: m[4]})
		addStream(stream)
	}
	for _, m := range janusStreamRe.FindAllStringSubmatch(text, -1) {
		stream := m[1]
		windows = append(windows, Window{Stream: stream, Offset: m[2], Start: m[3], End: m[4]})
		addStream(stream)
	}
	return windows, streams
}

// validateWindowClause catches the case where a query's detected language
// implies a window clause (spec §4.4 priority order) but the clause itself
// did not match the recognized grammar closely enough to be extracted.
func validateWindowClause(lang Language, text string, windows []Window) error {
	switch lang {
	case RSPQL:
		if len(windows) == 0 && findKeyword(text, "from named window") < 0 && findKeyword(text, "range") < 0 {
			return nil
		}
		if len(windows) == 0 {
			return newParseError(CodeUnknownWindowClause, "RSP-QL window clause did not match FROM NAMED WINDOW <w> ON <stream> [RANGE ... STEP ...]")
		}
	case JanusQL:
		if len(windows) == 0 && findKeyword(text, "from janus stream") < 0 {
			return nil
		}
		if len(windows) == 0 {
			return newParseError(CodeUnknownWindowClause, "JanusQL window clause did not match FROM JANUS STREAM <stream> [OFFSET ...] [START ...] [END ...]")
		}
	}
	return nil
}
