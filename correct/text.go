package correct

import "strings"

const tokenPunct = ".,!?;:'\"-()[]{}"

// token is one whitespace-delimited word with its surrounding punctuation
// split off, so correction rules see only the core and reassembly restores
// the original punctuation.
type token struct {
	prefix string
	core   string
	suffix string
}

func (t token) String() string {
	return t.prefix + t.core + t.suffix
}

// tokenize splits text into tokens, peeling leading and trailing punctuation
// off each word.
func tokenize(text string) []token {
	words := strings.Fields(text)
	tokens := make([]token, 0, len(words))

	for _, word := range words {
		core := strings.TrimLeft(word, tokenPunct)
		prefix := word[:len(word)-len(core)]
		trimmed := strings.TrimRight(core, tokenPunct)
		suffix := core[len(trimmed):]

		tokens = append(tokens, token{
			prefix: prefix,
			core:   trimmed,
			suffix: suffix,
		})
	}

	return tokens
}

// joinTokens reassembles tokens into a single string in original order.
func joinTokens(tokens []token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
