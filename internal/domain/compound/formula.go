package compound

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/turtacn/periodic-combinator/pkg/errors"
)

// maxFormulaAtoms bounds the expansion of a formula.
const maxFormulaAtoms = 1000

// ParseFormula expands a chemical formula such as "Ca3(PO4)2" into its
// multiset of element symbols in formula order.  Element tokens are a
// capital letter followed by lowercase letters; counts follow a token or a
// parenthesised group and must be at least 1.
func ParseFormula(formula string) ([]string, error) {
	p := &formulaParser{src: formula}
	if strings.TrimSpace(formula) == "" {
		return nil, p.fail("formula is empty")
	}
	out, err := p.sequence(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.fail("unexpected character %q", p.src[p.pos])
	}
	return out, nil
}

type formulaParser struct {
	src string
	pos int
}

func (p *formulaParser) fail(format string, args ...interface{}) error {
	return errors.New(errors.CodeInvalidFormula, fmt.Sprintf(format, args...)).
		WithDetailf("formula=%q offset=%d", p.src, p.pos)
}

// sequence parses groups until end of input or a closing parenthesis.
func (p *formulaParser) sequence(depth int) ([]string, error) {
	var out []string
	for p.pos < len(p.src) {
		ch := p.src[p.pos]
		var group []string
		switch {
		case ch == '(':
			p.pos++
			inner, err := p.sequence(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.src) || p.src[p.pos] != ')' {
				return nil, p.fail("unbalanced parenthesis")
			}
			p.pos++
			if len(inner) == 0 {
				return nil, p.fail("empty group")
			}
			group = inner
		case ch == ')':
			if depth == 0 {
				return nil, p.fail("unbalanced parenthesis")
			}
			return out, nil
		case ch >= 'A' && ch <= 'Z':
			start := p.pos
			p.pos++
			for p.pos < len(p.src) && p.src[p.pos] >= 'a' && p.src[p.pos] <= 'z' {
				p.pos++
			}
			group = []string{p.src[start:p.pos]}
		default:
			return nil, p.fail("unexpected character %q", ch)
		}

		n, err := p.count()
		if err != nil {
			return nil, err
		}
		if len(out)+n*len(group) > maxFormulaAtoms {
			return nil, p.fail("formula expands beyond %d atoms", maxFormulaAtoms)
		}
		for i := 0; i < n; i++ {
			out = append(out, group...)
		}
	}
	return out, nil
}

// count parses an optional multiplier, defaulting to 1.
func (p *formulaParser) count() (int, error) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 1, nil
	}
	digits := p.src[start:p.pos]
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > maxFormulaAtoms {
		p.pos = start
		return 0, p.fail("invalid count %q", digits)
	}
	return n, nil
}

// HillFormula renders a multiset in Hill order: carbon first, hydrogen
// second, then the rest alphabetically.  Without carbon every symbol,
// hydrogen included, is alphabetical.  A count of one is omitted.
func HillFormula(symbols []string) string {
	counts := make(map[string]int, len(symbols))
	for _, s := range symbols {
		counts[s]++
	}
	if len(counts) == 0 {
		return ""
	}

	keys := make([]string, 0, len(counts))
	for s := range counts {
		keys = append(keys, s)
	}
	_, hasCarbon := counts["C"]
	rank := func(s string) int {
		if !hasCarbon {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})

	var sb strings.Builder
	for _, s := range keys {
		sb.WriteString(s)
		if n := counts[s]; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}
