package catalog

// Store supplies already-loaded, already-authorized projection records.
// Lookups report presence with the second return value; a false means the
// id is unknown or no longer resolvable and the caller skips or degrades.
type Store interface {
	Artist(id int) (*Artist, bool)
	Album(id int) (*Album, bool)
	Song(id int) (*Song, bool)
	Video(id int) (*Video, bool)
	Playlist(id int) (*Playlist, bool)
	Tag(id int) (*Tag, bool)
	User(id int) (*User, bool)
	Shout(id int) (*Shout, bool)
	Activity(id int) (*Activity, bool)
	Podcast(id int) (*Podcast, bool)
	Episode(id int) (*PodcastEpisode, bool)

	// Preload is a batch cache-warm hint for a windowed id set.
	// Implementations may ignore it.
	Preload(kind Kind, ids []int)
}

// RatingService supplies rating decorations. A missing rating is 0, never
// an error.
type RatingService interface {
	UserRating(id int, kind Kind) float64
	AverageRating(id int, kind Kind) float64

	// WarmCache requests ratings for a whole batch ahead of per-item reads.
	WarmCache(kind Kind, ids []int)
}

// URLResolver builds playable and art URLs. The token is the caller's
// context/session token and is passed through opaquely.
type URLResolver interface {
	StreamURL(id int, kind Kind, token string) string
	ArtURL(id int, kind Kind, token string) string
}

// VoteService supplies vote counts for democratic queue rows.
type VoteService interface {
	VoteCount(rowID int) int
}
