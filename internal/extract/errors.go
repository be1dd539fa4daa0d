package extract

import "errors"

var (
	// ErrStructure is returned when a page lacks an element the layout
	// guarantees, such as the topic menu or an item's anchor.
	ErrStructure = errors.New("unexpected page structure")

	// ErrPatternMiss is returned when a caption does not match the expected
	// template. A sign is never stored with a guessed label.
	ErrPatternMiss = errors.New("caption does not match pattern")
)
