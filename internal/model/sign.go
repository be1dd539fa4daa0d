package model

// TopicLink is one leaf entry of the topic navigation menu.
type TopicLink struct {
	// Title is the topic name the images are filed under. For entries nested
	// under an expanded branch this is the branch title.
	Title string

	// URL is the absolute listing URL, already filtered to sign images.
	URL string
}

// Image is the metadata extracted for one sign image on a listing page.
type Image struct {
	// Word is the label of the sign.
	Word string

	// Author is the credited creator of the image.
	Author string

	// URL links to the full-size image.
	URL string
}
