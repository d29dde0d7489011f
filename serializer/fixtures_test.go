package serializer

import (
	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/config"
	"github.com/harmonia-media/catalog-serializer/memstore"
)

func testConfig() config.AppConfig {
	return config.AppConfig{
		Site: config.SiteConfig{
			Title:   "Harmonia",
			WebPath: "https://music.example.com",
			Charset: "UTF-8",
			Version: "1.0.0",
		},
	}
}

func testLibrary() (*memstore.Store, *memstore.Ratings, memstore.Votes) {
	store := memstore.NewStore()

	store.AddArtist(catalog.Artist{
		ID: 32, Name: "Tom Waits",
		Tags:       []catalog.TagAssoc{{ID: 4, Name: "Rock"}, {ID: 4, Name: "Rock"}, {ID: 7, Name: "Blues"}},
		AlbumCount: 17, SongCount: 212, MBID: "c3aeb863-7b26-4388-94e8-5a240f2be21b",
		Summary: "Gravel-voiced songwriter", YearFormed: 1973, PlaceFormed: "Pomona",
	})
	store.AddAlbum(catalog.Album{
		ID: 101, Name: "Rain Dogs", ArtistID: 32, ArtistName: "Tom Waits", ArtistCount: 1,
		Year: 1985, SongCount: 19, Disk: 1,
		Tags: []catalog.TagAssoc{{ID: 4, Name: "Rock"}},
		MBID: "9f2d4f3e-2b63-3e91-a8f8-68f63fdcbe64",
	})
	store.AddAlbum(catalog.Album{
		ID: 102, Name: "Stay Awake", ArtistCount: 3, Year: 1988, SongCount: 20, Disk: 1,
	})
	store.AddSong(catalog.Song{
		ID: 10, Title: "Test Song", ArtistID: 32, ArtistName: "Tom Waits",
		AlbumID: 101, AlbumName: "Rain Dogs",
		File:    "/music/rain_dogs/01.mp3",
		Track:   3, Time: 247, Year: 1985, Bitrate: 320000, Rate: 44100,
		Mode: "cbr", Mime: "audio/mpeg", Size: 9841204,
		Composer: "Tom Waits", Channels: 2, Label: "Island", Language: "en",
		Tags: []catalog.TagAssoc{{ID: 4, Name: "Rock"}, {ID: 7, Name: "Blues"}},
	})
	store.AddSong(catalog.Song{
		ID: 12, Title: "Second Song", ArtistID: 32, ArtistName: "Tom Waits",
		AlbumID: 101, AlbumName: "Rain Dogs",
		AlbumArtistID: 40, AlbumArtistName: "Various Artists",
		Track:         4, Time: 180, Mime: "audio/mpeg",
	})
	store.AddVideo(catalog.Video{
		ID: 55, Title: "Live in Dublin", Mime: "video/mp4", Resolution: "1920x1080",
		Size: 734003200, Tags: []catalog.TagAssoc{{ID: 9, Name: "Concert"}},
	})
	store.AddPlaylist(catalog.Playlist{
		ID: 21, Name: "Late Night", Owner: "admin", SongCount: 42, Type: "public",
	})
	store.AddTag(catalog.Tag{
		ID: 4, Name: "Rock",
		Counts: catalog.TagCounts{Albums: 12, Artists: 5, Songs: 148, Videos: 2, Playlists: 1},
	})
	store.AddUser(catalog.User{
		ID: 1, Username: "admin", CreateDate: 1400000000, LastSeen: 1500000000,
		Website: "https://example.com", State: "CA", City: "Oakland",
		FullName: "Ada Admin", FullNamePublic: true,
	})
	store.AddUser(catalog.User{
		ID: 2, Username: "listener", CreateDate: 1450000000, LastSeen: 1510000000,
		FullName: "Hidden Name",
	})
	store.AddShout(catalog.Shout{ID: 70, Date: 1490000000, Text: "great record", UserID: 1})
	store.AddShout(catalog.Shout{ID: 71, Date: 1490001000, Text: "orphaned comment", UserID: 999})
	store.AddActivity(catalog.Activity{
		ID: 80, Date: 1495000000, ObjectType: "album", ObjectID: 101, Action: "play", UserID: 2,
	})
	store.AddPodcast(catalog.Podcast{
		ID: 5, Name: "Deep Cuts", Link: "https://music.example.com/podcast/5",
		Description: "B-sides and rarities", OwnerID: 1, HasArt: true,
		Episodes: []int{301, 302},
	})
	store.AddEpisode(catalog.PodcastEpisode{
		ID: 301, Title: "Episode One", Author: "Ada Admin",
		Link: "https://music.example.com/podcast/5/301", PubDate: 1500000000,
		Description: "The first dig", Duration: "42:10", Mime: "audio/mpeg", Size: 60481024,
	})
	store.AddEpisode(catalog.PodcastEpisode{
		ID: 302, Title: "Episode Two (no media)",
		Link: "https://music.example.com/podcast/5/302", Duration: "00:00",
	})

	ratings := memstore.NewRatings()
	ratings.Set(32, catalog.KindArtist, 4, 3.5)
	ratings.Set(101, catalog.KindAlbum, 5, 4.2)
	ratings.Set(10, catalog.KindSong, 3, 2.8)

	votes := memstore.Votes{1: 7, 2: 1}

	return store, ratings, votes
}

func testSerializer() *Serializer {
	store, ratings, votes := testLibrary()
	return New(store, Deps{
		Ratings: ratings,
		URLs:    memstore.URLs{WebPath: "https://music.example.com"},
		Votes:   votes,
	}, testConfig())
}
