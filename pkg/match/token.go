package match

import "strings"

// Kind identifies what a template token matches.
type Kind int

const (
	// KindLiteral matches one input token by exact string equality.
	KindLiteral Kind = iota
	// KindSingle matches exactly one input token and captures it.
	KindSingle
	// KindMulti matches one or more contiguous input tokens and captures
	// their space-joined concatenation.
	KindMulti
)

// Token is a single element of a Template.
type Token struct {
	Kind Kind
	// Lit is the literal word. Empty for wildcard kinds.
	Lit string
}

// Template is an immutable ordered sequence of tokens describing one
// recognized question shape. Build one with ParseTemplate or from token
// literals directly.
type Template []Token

// Literal returns a literal token for the given word.
func Literal(word string) Token { return Token{Kind: KindLiteral, Lit: word} }

// Single returns a single-token wildcard.
func Single() Token { return Token{Kind: KindSingle} }

// Multi returns a multi-token wildcard.
func Multi() Token { return Token{Kind: KindMulti} }

// In template text, a bare underscore is a single wildcard and a bare
// percent sign is a multi wildcard. Any other word is a literal.
const (
	singleMarker = "_"
	multiMarker  = "%"
)

// ParseTemplate converts the whitespace-separated text form into a Template.
// The text form is what pattern cards and the builtin table use, e.g.
// "who directed %".
func ParseTemplate(text string) Template {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	tpl := make(Template, 0, len(words))
	for _, w := range words {
		switch w {
		case singleMarker:
			tpl = append(tpl, Single())
		case multiMarker:
			tpl = append(tpl, Multi())
		default:
			tpl = append(tpl, Literal(w))
		}
	}
	return tpl
}

// String renders the template back into its text form.
func (t Template) String() string {
	var b strings.Builder
	for i, tok := range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch tok.Kind {
		case KindSingle:
			b.WriteString(singleMarker)
		case KindMulti:
			b.WriteString(multiMarker)
		default:
			b.WriteString(tok.Lit)
		}
	}
	return b.String()
}

// Wildcards reports how many bindings a successful match will produce.
func (t Template) Wildcards() int {
	n := 0
	for _, tok := range t {
		if tok.Kind != KindLiteral {
			n++
		}
	}
	return n
}
