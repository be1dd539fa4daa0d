package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nao1215/signbank/internal/model"
)

const (
	// MenuContainerID is the id of the element holding the topic menu.
	MenuContainerID = "block-menu-menu-kuvapankin-luokat"

	// LeafClass marks a menu item that links to an image listing.
	LeafClass = "leaf"

	// ExpandedClass marks a menu branch whose leaves report the branch title.
	ExpandedClass = "expanded"

	// SignFilterQuery restricts a listing to sign images.
	SignFilterQuery = "?field_stockimage_type_tid[181]=181"
)

// Topics returns the leaf topics of the menu in document order.
// origin is prefixed to each relative href.
func Topics(doc *html.Node, origin string) ([]model.TopicLink, error) {
	root := goquery.NewDocumentFromNode(doc)

	container := root.Find("div#" + MenuContainerID).First()
	if container.Length() == 0 {
		return nil, fmt.Errorf("%w: no menu container #%s", ErrStructure, MenuContainerID)
	}
	menu := container.Find("div").First().Find("ul").First()
	if menu.Length() == 0 {
		return nil, fmt.Errorf("%w: menu container #%s has no list", ErrStructure, MenuContainerID)
	}

	var (
		links []model.TopicLink
		err   error
	)
	menu.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if !li.HasClass(LeafClass) {
			return true
		}

		var link model.TopicLink
		link, err = topicLink(li, origin)
		if err != nil {
			return false
		}
		links = append(links, link)
		return true
	})
	if err != nil {
		return nil, err
	}

	return links, nil
}

func topicLink(li *goquery.Selection, origin string) (model.TopicLink, error) {
	href, err := anchorAttr(li, "href")
	if err != nil {
		return model.TopicLink{}, err
	}

	titleItem := li
	if grandparent := li.Parent().Parent(); grandparent.HasClass(ExpandedClass) {
		titleItem = grandparent
	}
	title, err := anchorAttr(titleItem, "title")
	if err != nil {
		return model.TopicLink{}, err
	}

	return model.TopicLink{
		Title: title,
		URL:   origin + href + SignFilterQuery,
	}, nil
}

// anchorAttr returns attribute name of the first anchor under s.
func anchorAttr(s *goquery.Selection, name string) (string, error) {
	a := s.Find("a").First()
	if a.Length() == 0 {
		return "", fmt.Errorf("%w: menu item without anchor", ErrStructure)
	}
	v, ok := a.Attr(name)
	if !ok {
		return "", fmt.Errorf("%w: anchor without %s attribute", ErrStructure, name)
	}
	return v, nil
}
