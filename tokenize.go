package datadiff

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token is a segment of text. Value is the text as written, NormalizedValue
// is the key tokens are matched on after case & punctuation normalization
type Token struct {
	Value           string
	NormalizedValue string
	Index           int
}

// Tokenize splits text into tokens according to OptionSeparation, defaulting
// to words. Segmentation follows the Unicode text segmentation rules (UAX #29)
// so scripts without spaces, combining marks & emoji sequences are handled.
// Blank text produces no tokens
func Tokenize(text string, opts ...Option) []Token {
	cfg := newConfig(opts)
	return tokenize(text, cfg)
}

func tokenize(text string, cfg *Config) []Token {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var values []string
	switch cfg.Separation {
	case SeparationCharacter:
		values = splitCharacters(text)
	case SeparationSentence:
		values = splitSentences(text)
	default:
		values = splitWords(text)
	}

	norm := newNormalizer(cfg)
	tokens := make([]Token, len(values))
	for i, v := range values {
		tokens[i] = Token{Value: v, NormalizedValue: norm.normalize(v), Index: i}
	}
	return tokens
}

// splitCharacters yields every grapheme cluster that isn't whitespace
func splitCharacters(text string) []string {
	var (
		chars   []string
		cluster string
		state   = -1
	)
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		if isBlank(cluster) {
			continue
		}
		chars = append(chars, cluster)
	}
	return chars
}

func splitSentences(text string) []string {
	var (
		sentences []string
		sentence  string
		state     = -1
	)
	for len(text) > 0 {
		sentence, text, state = uniseg.FirstSentenceInString(text, state)
		if s := strings.TrimSpace(sentence); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

type segmentClass uint8

const (
	segSpace segmentClass = iota
	segWord
	segPunct
	segSymbol
)

func classifySegment(seg string) segmentClass {
	if isBlank(seg) {
		return segSpace
	}
	for _, r := range seg {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), unicode.IsMark(r), r == '_':
			return segWord
		case unicode.In(r, unicode.So, unicode.Sm, unicode.Sc, unicode.Sk):
			return segSymbol
		case unicode.IsPunct(r):
			return segPunct
		}
		// control & format characters (ZWJ, variation selectors) defer to the
		// next rune
	}
	return segSymbol
}

func isDash(seg string) bool {
	for _, r := range seg {
		if !unicode.Is(unicode.Pd, r) {
			return false
		}
	}
	return seg != ""
}

// splitWords merges word-boundary segments into word tokens:
//   - whitespace ends a token
//   - punctuation sticks to the word before it, or to the word after it when
//     nothing precedes it ("(see", "@user", "end.")
//   - words joined only by a dash form one token ("well-known")
//   - emoji & symbols always stand alone
func splitWords(text string) []string {
	var (
		words   []string
		seg     string
		state   = -1
		current strings.Builder
		// current holds at least one word segment
		hasWord bool
		// the last segment written was a dash directly after a word
		joinNext bool
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
		hasWord, joinNext = false, false
	}

	for len(text) > 0 {
		seg, text, state = uniseg.FirstWordInString(text, state)
		switch classifySegment(seg) {
		case segSpace:
			flush()
		case segSymbol:
			flush()
			words = append(words, seg)
		case segPunct:
			joinNext = hasWord && isDash(seg) && !joinNext
			current.WriteString(seg)
		case segWord:
			if hasWord && !joinNext {
				flush()
			}
			current.WriteString(seg)
			hasWord, joinNext = true, false
		}
	}
	flush()
	return words
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

type normalizer struct {
	ignorePunctuation bool
	caser             *cases.Caser
}

// newNormalizer builds the case mapper for cfg.Locale. unknown locales fall
// back to the root locale
func newNormalizer(cfg *Config) *normalizer {
	n := &normalizer{ignorePunctuation: cfg.IgnorePunctuation}
	if cfg.IgnoreCase {
		tag := language.Und
		if cfg.Locale != "" {
			if t, err := language.Parse(cfg.Locale); err == nil {
				tag = t
			}
		}
		caser := cases.Lower(tag)
		n.caser = &caser
	}
	return n
}

func (n *normalizer) normalize(s string) string {
	if n.ignorePunctuation {
		s = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return -1
			}
			return r
		}, s)
	}
	if n.caser != nil {
		s = n.caser.String(s)
	}
	return s
}
