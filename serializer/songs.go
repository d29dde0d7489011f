package serializer

import (
	"github.com/sirupsen/logrus"

	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

type nameRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// songRecord is the JSON wire shape of one song. Field order is the
// contract consumers parse.
type songRecord struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Artist          nameRef  `json:"artist"`
	Album           nameRef  `json:"album"`
	AlbumArtist     *nameRef `json:"albumartist,omitempty"`
	Filename        string   `json:"filename"`
	Track           int      `json:"track"`
	Time            int      `json:"time"`
	Year            int      `json:"year"`
	Bitrate         int      `json:"bitrate"`
	Rate            int      `json:"rate"`
	Mode            string   `json:"mode"`
	Mime            string   `json:"mime"`
	URL             string   `json:"url"`
	Size            int64    `json:"size"`
	MBID            string   `json:"mbid"`
	AlbumMBID       string   `json:"album_mbid"`
	ArtistMBID      string   `json:"artist_mbid"`
	AlbumArtistMBID string   `json:"albumartist_mbid"`
	Art             string   `json:"art"`
	PreciseRating   float64  `json:"preciserating"`
	Rating          float64  `json:"rating"`
	AverageRating   float64  `json:"averagerating"`
	Composer        string   `json:"composer"`
	Channels        int      `json:"channels"`
	Comment         string   `json:"comment"`
	Publisher       string   `json:"publisher"`
	Language        string   `json:"language"`

	ReplayGainAlbumGain float64 `json:"replaygain_album_gain"`
	ReplayGainAlbumPeak float64 `json:"replaygain_album_peak"`
	ReplayGainTrackGain float64 `json:"replaygain_track_gain"`
	ReplayGainTrackPeak float64 `json:"replaygain_track_peak"`

	Tags          []string `json:"tags"`
	PlaylistTrack int      `json:"playlisttrack,omitempty"`
}

type songEntry struct {
	Song songRecord `json:"song"`
}

// Songs renders a pretty JSON array of song wrapper objects. Ids that
// fail to load are skipped; the batch still succeeds. playlistCtx, when
// non-empty, adds each song's track position within that playlist.
func (s *Serializer) Songs(ids []int, playlistCtx []catalog.PlaylistEntry) string {
	ids = s.window(ids)
	s.store.Preload(catalog.KindSong, ids)
	s.ratings.WarmCache(catalog.KindSong, ids)

	entries := make([]songEntry, 0, len(ids))
	for _, id := range ids {
		song, ok := s.store.Song(id)
		if !ok || song.ID == 0 {
			log.WithFields(logrus.Fields{"id": id}).Debug("skipping unresolvable song")
			continue
		}
		rec := songRecord{
			ID:              song.ID,
			Title:           song.Title,
			Artist:          nameRef{ID: song.ArtistID, Name: song.ArtistName},
			Album:           nameRef{ID: song.AlbumID, Name: song.AlbumName},
			Filename:        song.File,
			Track:           song.Track,
			Time:            song.Time,
			Year:            song.Year,
			Bitrate:         song.Bitrate,
			Rate:            song.Rate,
			Mode:            song.Mode,
			Mime:            song.Mime,
			URL:             s.urls.StreamURL(song.ID, catalog.KindSong, s.token),
			Size:            song.Size,
			MBID:            song.MBID,
			AlbumMBID:       song.AlbumMBID,
			ArtistMBID:      song.ArtistMBID,
			AlbumArtistMBID: song.AlbumArtistMBID,
			Art:             s.urls.ArtURL(song.AlbumID, catalog.KindAlbum, s.token),
			PreciseRating:   s.ratings.UserRating(song.ID, catalog.KindSong),
			Rating:          s.ratings.UserRating(song.ID, catalog.KindSong),
			AverageRating:   s.ratings.AverageRating(song.ID, catalog.KindSong),
			Composer:        song.Composer,
			Channels:        song.Channels,
			Comment:         song.Comment,
			Publisher:       song.Label,
			Language:        song.Language,

			ReplayGainAlbumGain: song.ReplayGainAlbumGain,
			ReplayGainAlbumPeak: song.ReplayGainAlbumPeak,
			ReplayGainTrackGain: song.ReplayGainTrackGain,
			ReplayGainTrackPeak: song.ReplayGainTrackPeak,

			Tags: tagNames(song.Tags),
		}
		if song.AlbumArtistID != 0 {
			rec.AlbumArtist = &nameRef{ID: song.AlbumArtistID, Name: song.AlbumArtistName}
		}
		if len(playlistCtx) > 0 {
			rec.PlaylistTrack = playlistTrack(song.ID, playlistCtx)
		}
		entries = append(entries, songEntry{Song: rec})
	}
	return formatter.PrettyJSON(entries)
}

func tagNames(assocs []catalog.TagAssoc) []string {
	names := make([]string, 0, len(assocs))
	for _, t := range assocs {
		names = append(names, t.Name)
	}
	return names
}

// playlistTrack reports the song's position within the supplied playlist,
// 0 when the song is not part of it.
func playlistTrack(songID int, ctx []catalog.PlaylistEntry) int {
	for _, e := range ctx {
		if e.ObjectID == songID {
			return e.Track
		}
	}
	return 0
}
