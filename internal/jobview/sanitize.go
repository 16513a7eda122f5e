package jobview

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from a job description. Posters occasionally
// paste straight from job sites, so descriptions can arrive with HTML in
// them; cards render plain text only. Descriptions without angle brackets
// pass through untouched, and any parse failure falls back to the input.
func PlainText(desc string) string {
	if !strings.ContainsAny(desc, "<>") {
		return desc
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	if err != nil {
		return desc
	}
	return cleanText(doc.Text())
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
