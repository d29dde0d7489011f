package serializer

import (
	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

// Playlists renders playlist fragments inside the active envelope. The
// item count covers song-type media only.
func (s *Serializer) Playlists(ids []int) string {
	ids = s.window(ids)
	s.store.Preload(catalog.KindPlaylist, ids)

	w := formatter.NewXMLWriter()
	for _, id := range ids {
		playlist, ok := s.store.Playlist(id)
		if !ok {
			continue
		}
		w.Open("playlist", formatter.IntAttr("id", playlist.ID))
		w.CDATA("name", playlist.Name)
		w.CDATA("owner", playlist.Owner)
		w.Int("items", playlist.SongCount)
		w.Element("type", playlist.Type)
		w.Close()
	}
	return s.document(w.String())
}
