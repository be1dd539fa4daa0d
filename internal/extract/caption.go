package extract

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// WordMarker precedes the word in a caption.
	WordMarker = "<strong>"

	// AuthorMarker precedes the author name in a caption.
	AuthorMarker = "Kuva:</em>"

	// WordChars is the character class of a word: letters, digits,
	// underscore, space and hyphen in any script.
	WordChars = `[\p{L}\p{N}_ -]+`

	// AuthorChars is the character class of an author name: letters,
	// digits, underscore and space in any script.
	AuthorChars = `[\p{L}\p{N}_ ]+`
)

var (
	wordPattern   = regexp.MustCompile(regexp.QuoteMeta(WordMarker) + "(" + WordChars + ")")
	authorPattern = regexp.MustCompile(regexp.QuoteMeta(AuthorMarker) + "(" + AuthorChars + ")")
)

// Word returns the sign word from a caption: the first run of WordChars
// right after WordMarker, with surrounding whitespace trimmed.
func Word(caption string) (string, error) {
	return match(wordPattern, WordMarker, caption)
}

// Author returns the author name from a caption: the first run of
// AuthorChars right after AuthorMarker, with surrounding whitespace trimmed.
func Author(caption string) (string, error) {
	return match(authorPattern, AuthorMarker, caption)
}

func match(re *regexp.Regexp, marker, caption string) (string, error) {
	m := re.FindStringSubmatch(norm.NFC.String(caption))
	if m == nil {
		return "", fmt.Errorf("%w: no %q in %q", ErrPatternMiss, marker, caption)
	}
	return strings.TrimSpace(m[1]), nil
}
