package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nao1215/signbank/internal/model"
)

// ImageListClass is the class of the list holding a page's images.
const ImageListClass = "image-list"

// Images returns the images listed on one page in document order.
// ok is false when the page has no image list, which ends pagination.
func Images(doc *html.Node) (images []model.Image, ok bool, err error) {
	list := goquery.NewDocumentFromNode(doc).Find("ul." + ImageListClass).First()
	if list.Length() == 0 {
		return nil, false, nil
	}

	images = make([]model.Image, 0)
	list.Find("li").EachWithBreak(func(i int, li *goquery.Selection) bool {
		var img model.Image
		img, err = image(li)
		if err != nil {
			err = fmt.Errorf("image %d: %w", i, err)
			return false
		}
		images = append(images, img)
		return true
	})
	if err != nil {
		return nil, true, err
	}

	return images, true, nil
}

func image(li *goquery.Selection) (model.Image, error) {
	a := li.Find("a").First()
	if a.Length() == 0 {
		return model.Image{}, fmt.Errorf("%w: image item without anchor", ErrStructure)
	}
	href, ok := a.Attr("href")
	if !ok {
		return model.Image{}, fmt.Errorf("%w: image anchor without href", ErrStructure)
	}
	caption, ok := a.Attr("rel")
	if !ok {
		return model.Image{}, fmt.Errorf("%w: image anchor without caption", ErrStructure)
	}

	word, err := Word(caption)
	if err != nil {
		return model.Image{}, err
	}
	author, err := Author(caption)
	if err != nil {
		return model.Image{}, err
	}

	return model.Image{Word: word, Author: author, URL: href}, nil
}
