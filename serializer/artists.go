package serializer

import (
	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

// Artists renders artist fragments inside the active envelope. Ratings
// are warmed once for the whole window before per-item reads.
func (s *Serializer) Artists(ids []int) string {
	ids = s.window(ids)
	s.store.Preload(catalog.KindArtist, ids)
	s.ratings.WarmCache(catalog.KindArtist, ids)

	w := formatter.NewXMLWriter()
	for _, id := range ids {
		artist, ok := s.store.Artist(id)
		if !ok {
			continue
		}
		w.Open("artist", formatter.IntAttr("id", artist.ID))
		w.CDATA("name", artist.Name)
		writeTagAggregates(w, artist.Tags)
		w.Int("albums", artist.AlbumCount)
		w.Int("songs", artist.SongCount)
		w.Float("preciserating", s.ratings.UserRating(id, catalog.KindArtist))
		w.Float("rating", s.ratings.UserRating(id, catalog.KindArtist))
		w.Float("averagerating", s.ratings.AverageRating(id, catalog.KindArtist))
		w.Element("mbid", artist.MBID)
		w.CDATA("summary", artist.Summary)
		w.Int("yearformed", artist.YearFormed)
		w.CDATA("placeformed", artist.PlaceFormed)
		w.Close()
	}
	return s.document(w.String())
}
