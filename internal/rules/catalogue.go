package rules

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogue holds the compiled pattern sets used for structural
// recognition (clause markers, preamble, boilerplate) and for risk
// escalation (danger/warning triggers). It is immutable after
// construction; all methods are safe for concurrent use.
type Catalogue struct {
	clauseMarker *regexp.Regexp
	leadingDigit *regexp.Regexp
	parenDigit   *regexp.Regexp

	preamble    []*regexp.Regexp
	boilerplate []*regexp.Regexp
	danger      []*regexp.Regexp
	warning     []*regexp.Regexp
}

// Escalation patterns match normalized text: lowercased with all
// whitespace removed, so they must not contain literal spaces.
var (
	defaultDanger = []string{
		`immediate(ly)?(dismiss|terminat)`,
		`(dismiss|terminat)[a-z]*without(any)?(advance|prior|written)?notice`,
		`without(any)?(advance|prior|written)?notice[a-z]*(dismiss|terminat)`,
		`no(advance|prior|written)notice(obligation|required)`,
		`overtime(pay|allowance|work)?[a-z]*not[a-z]*paid`,
		`no(t)?(entitledto)?overtime(pay|allowance)`,
		`(all|any)(losses|damages)[a-z]*(solely|fully|entirely)borne`,
		`(solely|fully|entirely)(bear|liable|responsible)for(all|any)[a-z]*(damage|loss)`,
		`full(y)?liab(le|ility)for(all|any)`,
		`rest[a-z\-]*notcounted[a-z]*working`,
		`notcountedasworking(time|hours)`,
	}
	defaultWarning = []string{
		`non-?compet(e|ition)`,
		`shallnot[a-z]*engage[a-z]*competing`,
		`competingbusiness`,
		`for\d+years?after[a-z]*(termination|resignation|leaving)`,
		`prohibited[a-z]*for\d+years?`,
	}
	defaultPreamble = []string{
		`(?i)employment\s+(agreement|contract)`,
		`(?i)labou?r\s+contract`,
		`(?i)the\s+parties\s+(hereto\s+)?agree`,
		`(?i)this\s+(agreement|contract)\s+is\s+(made|entered|concluded)`,
		`(?i)hereinafter\s+referred\s+to\s+as`,
		`(?i)enter\s+into\s+(this|the\s+following)\s+(employment\s+)?(agreement|contract)`,
	}
	defaultBoilerplate = []string{
		`(?i)^\s*signatures?\b`,
		`(?i)^\s*signed\s*[:.]?`,
		`(?i)^\s*dated?\s*[:.]`,
		`(?i)^\s*(employer|employee|representative|company)\s*[:.]`,
		`(?i)^\s*address\s*[:.]`,
		`(?i)\(\s*seal\s*\)`,
		`(?i)^\s*party\s+[ab]\b`,
	}
)

// NewCatalogue compiles the built-in pattern sets
func NewCatalogue() *Catalogue {
	return &Catalogue{
		// "Article N" with arbitrary whitespace around the number and an
		// optional parenthetical heading.
		clauseMarker: regexp.MustCompile(`(?i)\barticle\s*(\d+)\s*(?:\(\s*([^)]+?)\s*\))?`),
		leadingDigit: regexp.MustCompile(`^\s*\d\s+`),
		parenDigit:   regexp.MustCompile(`^\s*\d+\s*`),
		preamble:     compileAll(defaultPreamble),
		boilerplate:  compileAll(defaultBoilerplate),
		danger:       compileAll(defaultDanger),
		warning:      compileAll(defaultWarning),
	}
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// ClauseMarker is a matched "Article N" token inside a sentence
type ClauseMarker struct {
	Number  int
	Heading string // parenthetical heading, "" if absent

	start, end int // match bounds in the original text
}

// Title synthesizes the article title: "Article N" or "Article N (heading)"
func (m ClauseMarker) Title() string {
	if m.Heading != "" {
		return fmt.Sprintf("Article %d (%s)", m.Number, m.Heading)
	}
	return fmt.Sprintf("Article %d", m.Number)
}

// MatchClauseMarker searches text for a clause marker
func (c *Catalogue) MatchClauseMarker(text string) (ClauseMarker, bool) {
	loc := c.clauseMarker.FindStringSubmatchIndex(text)
	if loc == nil {
		return ClauseMarker{}, false
	}
	number, err := strconv.Atoi(text[loc[2]:loc[3]])
	if err != nil {
		return ClauseMarker{}, false
	}
	heading := ""
	if loc[4] >= 0 {
		heading = text[loc[4]:loc[5]]
	}
	return ClauseMarker{Number: number, Heading: heading, start: loc[0], end: loc[1]}, true
}

// StripMarker removes the matched marker substring from text, plus any
// immediately following stray digit run (an OCR/formatting artifact
// where the clause number bleeds into the body).
func (c *Catalogue) StripMarker(text string, m ClauseMarker) string {
	rest := text[m.end:]
	rest = c.parenDigit.ReplaceAllString(rest, "")
	return strings.TrimSpace(text[:m.start] + rest)
}

// CleanArtifacts removes a stray leading digit from a continuation
// sentence. Only a single digit followed by whitespace is treated as an
// artifact so that meaningful numbers are left alone.
func (c *Catalogue) CleanArtifacts(text string) string {
	return strings.TrimSpace(c.leadingDigit.ReplaceAllString(text, ""))
}

// IsPreamble reports whether text matches a preamble pattern
func (c *Catalogue) IsPreamble(text string) bool {
	return matchAny(c.preamble, text)
}

// IsBoilerplate reports whether text matches a non-article boilerplate
// pattern (signature blocks, dated footers, party-name labels)
func (c *Catalogue) IsBoilerplate(text string) bool {
	return matchAny(c.boilerplate, text)
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// extraPatterns is the shape of an optional rules YAML file
type extraPatterns struct {
	Danger      []string `yaml:"danger"`
	Warning     []string `yaml:"warning"`
	Preamble    []string `yaml:"preamble"`
	Boilerplate []string `yaml:"boilerplate"`
}

// LoadExtra appends patterns from a YAML file to the built-in sets.
// Danger/warning entries follow the normalized-text convention.
func (c *Catalogue) LoadExtra(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rules file: %w", err)
	}

	var extra extraPatterns
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("parse rules file: %w", err)
	}

	for _, group := range []struct {
		patterns []string
		target   *[]*regexp.Regexp
	}{
		{extra.Danger, &c.danger},
		{extra.Warning, &c.warning},
		{extra.Preamble, &c.preamble},
		{extra.Boilerplate, &c.boilerplate},
	} {
		for _, p := range group.patterns {
			compiled, err := regexp.Compile(p)
			if err != nil {
				return fmt.Errorf("compile pattern %q: %w", p, err)
			}
			*group.target = append(*group.target, compiled)
		}
	}

	return nil
}
