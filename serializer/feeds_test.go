package serializer

import (
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"

	"github.com/harmonia-media/catalog-serializer/formatter"
)

func TestRSSFeedParses(t *testing.T) {
	s := testSerializer()
	doc := s.RSSFeed([]formatter.Record{
		{
			{Name: "title", Value: "Rain Dogs"},
			{Name: "link", Value: "https://music.example.com/album/101"},
		},
		{
			{Name: "title", Value: "Stay Awake"},
			{Name: "link", Value: "https://music.example.com/album/102"},
		},
	}, "Newest Albums", 1500000000)

	feed, err := gofeed.NewParser().ParseString(doc)
	if err != nil {
		t.Fatalf("rss output should parse as a feed: %v", err)
	}
	if feed.Title != "Newest Albums" {
		t.Errorf("expected channel title 'Newest Albums', got %q", feed.Title)
	}
	if feed.Link != "https://music.example.com" {
		t.Errorf("expected site link, got %q", feed.Link)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(feed.Items))
	}
	if feed.Items[0].Title != "Rain Dogs" || feed.Items[1].Title != "Stay Awake" {
		t.Errorf("item order should be preserved: %q, %q", feed.Items[0].Title, feed.Items[1].Title)
	}
	if feed.Published == "" {
		t.Error("channel pubDate should be set")
	}
}

func TestRSSFeedIgnoresActiveMode(t *testing.T) {
	s := testSerializer()
	s.SetMode("xspf")

	doc := s.RSSFeed(nil, "Empty Feed", 0)
	if !strings.Contains(doc, "<rss version=\"2.0\">") {
		t.Errorf("rss envelope expected regardless of mode, got %q", doc)
	}
	if strings.Contains(doc, "pubDate") {
		t.Error("zero publish date should render no pubDate")
	}
}

func TestPodcastDocument(t *testing.T) {
	s := testSerializer()
	s.SetToken("sess-9")
	doc := s.Podcast(5)

	if !strings.HasPrefix(doc, "<?xml version=\"1.0\" encoding=\"utf-8\"?>") {
		t.Fatalf("expected xml declaration, got %q", doc[:50])
	}

	feed, err := gofeed.NewParser().ParseString(doc)
	if err != nil {
		t.Fatalf("podcast output should parse as a feed: %v", err)
	}
	if feed.Title != "Deep Cuts Podcast" {
		t.Errorf("expected channel title 'Deep Cuts Podcast', got %q", feed.Title)
	}
	if feed.Description != "B-sides and rarities" {
		t.Errorf("unexpected description: %q", feed.Description)
	}
	if feed.Generator != "Harmonia" {
		t.Errorf("unexpected generator: %q", feed.Generator)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("expected 2 episodes, got %d", len(feed.Items))
	}

	first := feed.Items[0]
	if first.Title != "Episode One" {
		t.Errorf("unexpected first episode title: %q", first.Title)
	}
	if first.GUID != "https://music.example.com/podcast/5/301" {
		t.Errorf("guid should equal the link, got %q", first.GUID)
	}
	if len(first.Enclosures) != 1 {
		t.Fatalf("expected 1 enclosure, got %d", len(first.Enclosures))
	}
	if first.Enclosures[0].Type != "audio/mpeg" || first.Enclosures[0].Length != "60481024" {
		t.Errorf("unexpected enclosure: %+v", first.Enclosures[0])
	}
	if !strings.Contains(first.Enclosures[0].URL, "oid=301") {
		t.Errorf("enclosure url should reference the episode, got %q", first.Enclosures[0].URL)
	}

	// Episode without a mime type carries no enclosure.
	if len(feed.Items[1].Enclosures) != 0 {
		t.Errorf("mimeless episode should have no enclosure, got %+v", feed.Items[1].Enclosures)
	}

	if it := first.ITunesExt; it == nil || it.Author != "Ada Admin" || it.Duration != "42:10" {
		t.Errorf("unexpected itunes item extension: %+v", it)
	}
	if it := feed.ITunesExt; it == nil || it.Owner == nil || it.Owner.Name != "Ada Admin" {
		t.Errorf("unexpected itunes owner: %+v", feed.ITunesExt)
	}
}

func TestPodcastUnknownFeed(t *testing.T) {
	s := testSerializer()
	if doc := s.Podcast(404); doc != "" {
		t.Errorf("unknown feed should render empty, got %q", doc)
	}
}
