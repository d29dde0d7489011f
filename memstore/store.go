package memstore

import (
	"github.com/harmonia-media/catalog-serializer/catalog"
)

// Store is a map-backed catalog.Store.
type Store struct {
	artists    map[int]catalog.Artist
	albums     map[int]catalog.Album
	songs      map[int]catalog.Song
	videos     map[int]catalog.Video
	playlists  map[int]catalog.Playlist
	tags       map[int]catalog.Tag
	users      map[int]catalog.User
	shouts     map[int]catalog.Shout
	activities map[int]catalog.Activity
	podcasts   map[int]catalog.Podcast
	episodes   map[int]catalog.PodcastEpisode
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		artists:    map[int]catalog.Artist{},
		albums:     map[int]catalog.Album{},
		songs:      map[int]catalog.Song{},
		videos:     map[int]catalog.Video{},
		playlists:  map[int]catalog.Playlist{},
		tags:       map[int]catalog.Tag{},
		users:      map[int]catalog.User{},
		shouts:     map[int]catalog.Shout{},
		activities: map[int]catalog.Activity{},
		podcasts:   map[int]catalog.Podcast{},
		episodes:   map[int]catalog.PodcastEpisode{},
	}
}

func (s *Store) AddArtist(a catalog.Artist)          { s.artists[a.ID] = a }
func (s *Store) AddAlbum(a catalog.Album)            { s.albums[a.ID] = a }
func (s *Store) AddSong(sg catalog.Song)             { s.songs[sg.ID] = sg }
func (s *Store) AddVideo(v catalog.Video)            { s.videos[v.ID] = v }
func (s *Store) AddPlaylist(p catalog.Playlist)      { s.playlists[p.ID] = p }
func (s *Store) AddTag(t catalog.Tag)                { s.tags[t.ID] = t }
func (s *Store) AddUser(u catalog.User)              { s.users[u.ID] = u }
func (s *Store) AddShout(sh catalog.Shout)           { s.shouts[sh.ID] = sh }
func (s *Store) AddActivity(a catalog.Activity)      { s.activities[a.ID] = a }
func (s *Store) AddPodcast(p catalog.Podcast)        { s.podcasts[p.ID] = p }
func (s *Store) AddEpisode(e catalog.PodcastEpisode) { s.episodes[e.ID] = e }

func (s *Store) Artist(id int) (*catalog.Artist, bool) {
	a, ok := s.artists[id]
	return &a, ok
}

func (s *Store) Album(id int) (*catalog.Album, bool) {
	a, ok := s.albums[id]
	return &a, ok
}

func (s *Store) Song(id int) (*catalog.Song, bool) {
	sg, ok := s.songs[id]
	return &sg, ok
}

func (s *Store) Video(id int) (*catalog.Video, bool) {
	v, ok := s.videos[id]
	return &v, ok
}

func (s *Store) Playlist(id int) (*catalog.Playlist, bool) {
	p, ok := s.playlists[id]
	return &p, ok
}

func (s *Store) Tag(id int) (*catalog.Tag, bool) {
	t, ok := s.tags[id]
	return &t, ok
}

func (s *Store) User(id int) (*catalog.User, bool) {
	u, ok := s.users[id]
	return &u, ok
}

func (s *Store) Shout(id int) (*catalog.Shout, bool) {
	sh, ok := s.shouts[id]
	return &sh, ok
}

func (s *Store) Activity(id int) (*catalog.Activity, bool) {
	a, ok := s.activities[id]
	return &a, ok
}

func (s *Store) Podcast(id int) (*catalog.Podcast, bool) {
	p, ok := s.podcasts[id]
	return &p, ok
}

func (s *Store) Episode(id int) (*catalog.PodcastEpisode, bool) {
	e, ok := s.episodes[id]
	return &e, ok
}

// Preload is a no-op: every record is already resident.
func (s *Store) Preload(kind catalog.Kind, ids []int) {}
