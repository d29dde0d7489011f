package serializer

import (
	"time"

	"github.com/harmonia-media/catalog-serializer/formatter"
)

// RSSFeed wraps caller-supplied keyed records as RSS <item> elements
// under a channel carrying title, the site link and an optional publish
// date. The RSS envelope is always used, whatever mode is active.
func (s *Serializer) RSSFeed(items []formatter.Record, title string, pubDate int64) string {
	w := formatter.NewXMLWriter()
	w.Element("title", title)
	w.Element("link", s.env.Site.WebPath)
	if pubDate > 0 {
		w.Element("pubDate", rfc1123(pubDate))
	}
	for _, item := range items {
		formatter.WriteRecord(w, "item", item)
	}
	return s.env.Document(formatter.ModeRSS, "", w.String())
}

func rfc1123(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC1123Z)
}
