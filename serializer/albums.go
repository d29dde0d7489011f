package serializer

import (
	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

// Albums renders album fragments inside the active envelope. An album
// credited to anything other than exactly one artist renders the
// placeholder artist id 0 named "Various".
func (s *Serializer) Albums(ids []int) string {
	ids = s.window(ids)
	s.store.Preload(catalog.KindAlbum, ids)
	s.ratings.WarmCache(catalog.KindAlbum, ids)

	w := formatter.NewXMLWriter()
	for _, id := range ids {
		album, ok := s.store.Album(id)
		if !ok {
			continue
		}
		w.Open("album", formatter.IntAttr("id", album.ID))
		w.CDATA("name", album.Name)
		if album.ArtistCount != 1 {
			w.CDATA("artist", "Various", formatter.IntAttr("id", 0))
		} else {
			w.CDATA("artist", album.ArtistName, formatter.IntAttr("id", album.ArtistID))
		}
		w.Int("year", album.Year)
		w.Int("tracks", album.SongCount)
		w.Int("disk", album.Disk)
		writeTagAggregates(w, album.Tags)
		w.CDATA("art", s.urls.ArtURL(album.ID, catalog.KindAlbum, s.token))
		w.Float("preciserating", s.ratings.UserRating(id, catalog.KindAlbum))
		w.Float("rating", s.ratings.UserRating(id, catalog.KindAlbum))
		w.Float("averagerating", s.ratings.AverageRating(id, catalog.KindAlbum))
		w.Element("mbid", album.MBID)
		w.Close()
	}
	return s.document(w.String())
}
