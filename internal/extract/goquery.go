// Package extract derives book descriptions from fetched page HTML.
package extract

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// descriptionSelector matches the detail-page region that carries the book
// description.
const descriptionSelector = "div.DetailsLayoutRightParagraph"

// DescriptionExtractor implements scraper.Extractor using goquery.
type DescriptionExtractor struct {
	selector string
}

// NewDescriptionExtractor returns an extractor bound to the default
// description selector.
func NewDescriptionExtractor() *DescriptionExtractor {
	return &DescriptionExtractor{selector: descriptionSelector}
}

// Extract returns the trimmed text of the first description region in body.
// A missing region, or HTML goquery cannot parse, reports found=false; that
// is a "no description" outcome, not a failure.
func (e *DescriptionExtractor) Extract(body []byte) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", false
	}
	region := doc.Find(e.selector).First()
	if region.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(region.Text()), true
}
