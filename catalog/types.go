package catalog

// Kind identifies a catalog entity type. It is a closed set: code that
// dispatches on Kind must reject values it does not know rather than
// attempt dynamic construction.
type Kind string

const (
	KindArtist   Kind = "artist"
	KindAlbum    Kind = "album"
	KindSong     Kind = "song"
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
	KindTag      Kind = "tag"
	KindUser     Kind = "user"
	KindPodcast  Kind = "podcast"
	KindEpisode  Kind = "podcast_episode"
)

// TagAssoc is one raw tag association on an entity. An entity's tag list
// may contain duplicate ids; AggregateTags collapses them.
type TagAssoc struct {
	ID   int
	Name string
}

// TagCounts holds per-category usage counts for one tag.
type TagCounts struct {
	Albums    int
	Artists   int
	Songs     int
	Videos    int
	Playlists int
	Streams   int
}

// Tag is a catalog tag with its usage counts.
type Tag struct {
	ID     int
	Name   string
	Counts TagCounts
}

// Artist is the projection record for one artist.
type Artist struct {
	ID          int
	Name        string
	Tags        []TagAssoc
	AlbumCount  int
	SongCount   int
	MBID        string
	Summary     string
	YearFormed  int
	PlaceFormed string
}

// Album is the projection record for one album. ArtistCount counts the
// distinct artists appearing on the album; anything other than 1 renders
// as the "Various" placeholder artist.
type Album struct {
	ID          int
	Name        string
	ArtistID    int
	ArtistName  string
	ArtistCount int
	Year        int
	SongCount   int
	Disk        int
	Tags        []TagAssoc
	MBID        string
}

// Song is the projection record for one song. AlbumArtistID is zero when
// the album artist is not distinct from the primary artist.
type Song struct {
	ID              int
	Title           string
	ArtistID        int
	ArtistName      string
	AlbumID         int
	AlbumName       string
	AlbumArtistID   int
	AlbumArtistName string
	File            string
	Track           int
	Time            int
	Year            int
	Bitrate         int
	Rate            int
	Mode            string
	Mime            string
	Size            int64
	MBID            string
	AlbumMBID       string
	ArtistMBID      string
	AlbumArtistMBID string
	Composer        string
	Channels        int
	Comment         string
	Label           string
	Language        string

	ReplayGainAlbumGain float64
	ReplayGainAlbumPeak float64
	ReplayGainTrackGain float64
	ReplayGainTrackPeak float64

	Tags []TagAssoc
}

// Video is the projection record for one video.
type Video struct {
	ID         int
	Title      string
	Mime       string
	Resolution string
	Size       int64
	Tags       []TagAssoc
}

// Playlist is the projection record for one playlist. SongCount counts
// song-type media only.
type Playlist struct {
	ID        int
	Name      string
	Owner     string
	SongCount int
	Type      string
}

// PlaylistEntry ties a song to its position within one playlist. A slice
// of these is the optional playlist context for song serialization.
type PlaylistEntry struct {
	ObjectID int
	Track    int
}

// User is the projection record for one user. FullName is only rendered
// when FullNamePublic is set.
type User struct {
	ID             int
	Username       string
	CreateDate     int64
	LastSeen       int64
	Website        string
	State          string
	City           string
	FullName       string
	FullNamePublic bool
}

// Shout is one shoutbox comment. UserID may reference a deleted user.
type Shout struct {
	ID     int
	Date   int64
	Text   string
	UserID int
}

// Activity is one user timeline event.
type Activity struct {
	ID         int
	Date       int64
	ObjectType string
	ObjectID   int
	Action     string
	UserID     int
}

// DemocraticEntry is one row of the democratic play queue. Kind selects
// the media type; only KindSong rows are renderable today.
type DemocraticEntry struct {
	RowID    int
	Kind     Kind
	ObjectID int
}

// Podcast is the feed-owning entity for podcast rendering.
type Podcast struct {
	ID          int
	Name        string
	Link        string
	Description string
	OwnerID     int
	HasArt      bool
	Episodes    []int
}

// PodcastEpisode is one feed item. Duration is a preformatted label
// (e.g. "12:34"); Mime empty means no playable enclosure.
type PodcastEpisode struct {
	ID          int
	Title       string
	Author      string
	Link        string
	PubDate     int64
	Description string
	Duration    string
	Mime        string
	Size        int64
}
