package serializer

import (
	"github.com/sirupsen/logrus"

	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

// Democratic renders the democratic play queue inside the active
// envelope. Rows are dispatched on their closed entity kind; kinds
// without a formatter are skipped. The genre element carries the song's
// first tag, which is the position consumers read today.
func (s *Serializer) Democratic(entries []catalog.DemocraticEntry) string {
	w := formatter.NewXMLWriter()
	for _, e := range entries {
		switch e.Kind {
		case catalog.KindSong:
			s.writeDemocraticSong(w, e)
		default:
			log.WithFields(logrus.Fields{"kind": e.Kind, "row": e.RowID}).Warn("unsupported democratic media kind")
		}
	}
	return s.document(w.String())
}

func (s *Serializer) writeDemocraticSong(w *formatter.XMLWriter, e catalog.DemocraticEntry) {
	song, ok := s.store.Song(e.ObjectID)
	if !ok || song.ID == 0 {
		return
	}
	genre := primaryGenre(song.Tags)

	w.Open("song", formatter.IntAttr("id", song.ID))
	w.CDATA("title", song.Title)
	w.CDATA("artist", song.ArtistName, formatter.IntAttr("id", song.ArtistID))
	w.CDATA("album", song.AlbumName, formatter.IntAttr("id", song.AlbumID))
	w.CDATA("genre", genre.Name, formatter.IntAttr("id", genre.ID))
	writeTagAggregates(w, song.Tags)
	w.Int("track", song.Track)
	w.Int("time", song.Time)
	w.Element("mime", song.Mime)
	w.CDATA("url", s.urls.StreamURL(song.ID, catalog.KindSong, s.token))
	w.Int64("size", song.Size)
	w.CDATA("art", s.urls.ArtURL(song.AlbumID, catalog.KindAlbum, s.token))
	w.Float("preciserating", s.ratings.UserRating(song.ID, catalog.KindSong))
	w.Float("rating", s.ratings.UserRating(song.ID, catalog.KindSong))
	w.Float("averagerating", s.ratings.AverageRating(song.ID, catalog.KindSong))
	w.Int("vote", s.votes.VoteCount(e.RowID))
	w.Close()
}

// primaryGenre is the first tag in the entity's tag list, zero when the
// list is empty.
func primaryGenre(assocs []catalog.TagAssoc) catalog.TagAssoc {
	if len(assocs) == 0 {
		return catalog.TagAssoc{}
	}
	return assocs[0]
}
