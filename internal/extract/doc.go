// Package extract pulls topic links and image metadata out of image bank
// pages.
//
// The site has no API, so everything here depends on its markup:
//   - the topic menu is the element with id MenuContainerID, and only list
//     items carrying LeafClass are real topics;
//   - a listing page holds its images in the first ul.image-list, and a
//     page without one marks the end of pagination;
//   - word and author names live in the rel attribute of each image anchor,
//     in a caption such as
//     "<strong>A</strong><br><em>Kuva:</em> Kalevi Puistolinna<br>...".
//
// The caption matching is kept in pure functions (Word and Author) so it can
// be tested without any HTML. All markup markers are exported constants.
package extract
