package serializer

import (
	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

type tagRecord struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Albums    int    `json:"albums"`
	Artists   int    `json:"artists"`
	Songs     int    `json:"songs"`
	Videos    int    `json:"videos"`
	Playlists int    `json:"playlists"`
	Stream    int    `json:"stream"`
}

type tagEntry struct {
	Tag tagRecord `json:"tag"`
}

// Tags renders a pretty JSON array of tag wrapper objects with per-
// category usage counts. An empty window renders as [].
func (s *Serializer) Tags(ids []int) string {
	ids = s.window(ids)
	s.store.Preload(catalog.KindTag, ids)

	entries := make([]tagEntry, 0, len(ids))
	for _, id := range ids {
		tag, ok := s.store.Tag(id)
		if !ok {
			continue
		}
		entries = append(entries, tagEntry{Tag: tagRecord{
			ID:        tag.ID,
			Name:      tag.Name,
			Albums:    tag.Counts.Albums,
			Artists:   tag.Counts.Artists,
			Songs:     tag.Counts.Songs,
			Videos:    tag.Counts.Videos,
			Playlists: tag.Counts.Playlists,
			Stream:    tag.Counts.Streams,
		}})
	}
	return formatter.PrettyJSON(entries)
}
