package model

// Result is the crawl result: topic names mapped to their images in
// encounter order. Titles records the keys in the order they were first
// added so that every consumer iterates the same way.
//
// The zero value is ready to use. Result is encoded as-is by the cache, so
// its exported fields are its on-disk shape.
type Result struct {
	// Titles lists every topic name once, in first-encounter order.
	Titles []string

	// ByTopic maps a topic name to its images.
	ByTopic map[string][]Image
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{
		Titles:  make([]string, 0),
		ByTopic: make(map[string][]Image),
	}
}

// Add appends images under title, inserting the title if it is new.
// Adding no images is a no-op, so topics without images never appear.
// Merged reports whether the title already existed.
func (r *Result) Add(title string, images []Image) (merged bool) {
	if len(images) == 0 {
		return false
	}
	if r.ByTopic == nil {
		r.ByTopic = make(map[string][]Image)
	}

	existing, ok := r.ByTopic[title]
	if !ok {
		r.Titles = append(r.Titles, title)
	}
	r.ByTopic[title] = append(existing, images...)

	return ok
}

// Images returns the images recorded for title.
func (r *Result) Images(title string) []Image {
	return r.ByTopic[title]
}

// Has reports whether title is in the result.
func (r *Result) Has(title string) bool {
	_, ok := r.ByTopic[title]
	return ok
}

// Len returns the number of topics.
func (r *Result) Len() int {
	return len(r.Titles)
}

// ImageCount returns the total number of images across all topics.
func (r *Result) ImageCount() int {
	total := 0
	for _, images := range r.ByTopic {
		total += len(images)
	}
	return total
}

// AuthorCount returns the number of distinct authors under title.
func (r *Result) AuthorCount(title string) int {
	seen := make(map[string]struct{})
	for _, img := range r.ByTopic[title] {
		seen[img.Author] = struct{}{}
	}
	return len(seen)
}
