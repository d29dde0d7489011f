package serializer

import (
	"strconv"

	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

// Podcast builds a standalone pretty-printed RSS 2.0 document with atom
// and itunes extensions for one feed-owning entity and its episodes. It
// does not consult the envelope state machine. An unknown feed id
// renders an empty string.
func (s *Serializer) Podcast(id int) string {
	feed, ok := s.store.Podcast(id)
	if !ok {
		return ""
	}

	w := formatter.NewIndentWriter("  ")
	w.Open("rss",
		formatter.Attr{Name: "xmlns:atom", Value: "http://www.w3.org/2005/Atom"},
		formatter.Attr{Name: "xmlns:itunes", Value: "http://www.itunes.com/dtds/podcast-1.0.dtd"},
		formatter.Attr{Name: "version", Value: "2.0"},
	)
	w.Open("channel")
	w.Element("title", feed.Name+" Podcast")
	w.Element("atom:link", feed.Link)
	if feed.HasArt {
		w.Empty("itunes:image", formatter.Attr{Name: "href", Value: s.urls.ArtURL(feed.ID, catalog.KindPodcast, s.token)})
	}
	if feed.Description != "" {
		w.Element("description", feed.Description)
		w.Element("itunes:summary", feed.Description)
	}
	w.Element("generator", s.env.Site.Title)
	w.Element("itunes:category", "Music")
	if owner, ok := s.store.User(feed.OwnerID); ok {
		w.Open("itunes:owner")
		w.Element("itunes:name", displayName(owner))
		w.Close()
	}

	for _, eid := range feed.Episodes {
		episode, ok := s.store.Episode(eid)
		if !ok {
			continue
		}
		w.Open("item")
		w.Element("title", episode.Title)
		if episode.Author != "" {
			w.Element("itunes:author", episode.Author)
		}
		w.Element("link", episode.Link)
		w.Element("guid", episode.Link)
		if episode.PubDate > 0 {
			w.Element("pubDate", rfc1123(episode.PubDate))
		}
		if episode.Description != "" {
			w.Element("description", episode.Description)
		}
		w.Element("itunes:duration", episode.Duration)
		if episode.Mime != "" {
			w.Empty("enclosure",
				formatter.Attr{Name: "type", Value: episode.Mime},
				formatter.Attr{Name: "length", Value: strconv.FormatInt(episode.Size, 10)},
				formatter.Attr{Name: "url", Value: s.urls.StreamURL(episode.ID, catalog.KindEpisode, s.token)},
			)
		}
		w.Close()
	}

	return "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" + w.String() + "\n"
}

func displayName(user *catalog.User) string {
	if user.FullNamePublic && user.FullName != "" {
		return user.FullName
	}
	return user.Username
}
