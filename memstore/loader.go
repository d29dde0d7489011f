package memstore

import (
	"encoding/json"
	"os"

	"github.com/harmonia-media/catalog-serializer/catalog"
)

// Library bundles a loaded store with its decoration services.
type Library struct {
	Store   *Store
	Ratings *Ratings
	Votes   Votes
}

type ratingRecord struct {
	ID      int
	Kind    catalog.Kind
	User    float64
	Average float64
}

type libraryFile struct {
	Artists    []catalog.Artist
	Albums     []catalog.Album
	Songs      []catalog.Song
	Videos     []catalog.Video
	Playlists  []catalog.Playlist
	Tags       []catalog.Tag
	Users      []catalog.User
	Shouts     []catalog.Shout
	Activities []catalog.Activity
	Podcasts   []catalog.Podcast
	Episodes   []catalog.PodcastEpisode
	Ratings    []ratingRecord
	Votes      map[int]int
}

// LoadLibrary reads a JSON library file into an in-memory store with its
// rating and vote services.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file libraryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	lib := &Library{Store: NewStore(), Ratings: NewRatings(), Votes: Votes{}}
	for _, a := range file.Artists {
		lib.Store.AddArtist(a)
	}
	for _, a := range file.Albums {
		lib.Store.AddAlbum(a)
	}
	for _, s := range file.Songs {
		lib.Store.AddSong(s)
	}
	for _, v := range file.Videos {
		lib.Store.AddVideo(v)
	}
	for _, p := range file.Playlists {
		lib.Store.AddPlaylist(p)
	}
	for _, t := range file.Tags {
		lib.Store.AddTag(t)
	}
	for _, u := range file.Users {
		lib.Store.AddUser(u)
	}
	for _, sh := range file.Shouts {
		lib.Store.AddShout(sh)
	}
	for _, a := range file.Activities {
		lib.Store.AddActivity(a)
	}
	for _, p := range file.Podcasts {
		lib.Store.AddPodcast(p)
	}
	for _, e := range file.Episodes {
		lib.Store.AddEpisode(e)
	}
	for _, r := range file.Ratings {
		lib.Ratings.Set(r.ID, r.Kind, r.User, r.Average)
	}
	for row, count := range file.Votes {
		lib.Votes[row] = count
	}
	return lib, nil
}
