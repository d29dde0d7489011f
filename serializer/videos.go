package serializer

import (
	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

// Videos renders video fragments inside the active envelope.
func (s *Serializer) Videos(ids []int) string {
	ids = s.window(ids)
	s.store.Preload(catalog.KindVideo, ids)

	w := formatter.NewXMLWriter()
	for _, id := range ids {
		video, ok := s.store.Video(id)
		if !ok {
			continue
		}
		w.Open("video", formatter.IntAttr("id", video.ID))
		w.CDATA("title", video.Title)
		w.CDATA("mime", video.Mime)
		w.Element("resolution", video.Resolution)
		w.Int64("size", video.Size)
		writeTagAggregates(w, video.Tags)
		w.CDATA("url", s.urls.StreamURL(video.ID, catalog.KindVideo, s.token))
		w.Close()
	}
	return s.document(w.String())
}
