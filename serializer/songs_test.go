package serializer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harmonia-media/catalog-serializer/catalog"
)

func parseSongs(t *testing.T, doc string) []map[string]any {
	t.Helper()
	var entries []struct {
		Song map[string]any `json:"song"`
	}
	if err := json.Unmarshal([]byte(doc), &entries); err != nil {
		t.Fatalf("songs output is not valid JSON: %v", err)
	}
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Song)
	}
	return out
}

func TestSongsRoundTrip(t *testing.T) {
	s := testSerializer()
	songs := parseSongs(t, s.Songs([]int{10}, nil))
	if len(songs) != 1 {
		t.Fatalf("expected 1 song, got %d", len(songs))
	}

	song := songs[0]
	if song["title"] != "Test Song" {
		t.Errorf("expected title 'Test Song', got %v", song["title"])
	}
	if song["track"] != float64(3) {
		t.Errorf("expected track 3, got %v", song["track"])
	}
	if song["bitrate"] != float64(320000) {
		t.Errorf("expected bitrate 320000, got %v", song["bitrate"])
	}
	if song["publisher"] != "Island" {
		t.Errorf("expected publisher 'Island', got %v", song["publisher"])
	}
	if song["rating"] != float64(3) || song["averagerating"] != 2.8 {
		t.Errorf("unexpected ratings: %v / %v", song["rating"], song["averagerating"])
	}

	artist, ok := song["artist"].(map[string]any)
	if !ok || artist["id"] != float64(32) || artist["name"] != "Tom Waits" {
		t.Errorf("unexpected artist reference: %v", song["artist"])
	}

	tags, ok := song["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "Rock" || tags[1] != "Blues" {
		t.Errorf("unexpected tag list: %v", song["tags"])
	}

	if !strings.Contains(song["url"].(string), "oid=10") {
		t.Errorf("stream url should reference the song id, got %v", song["url"])
	}
}

func TestSongsSkipInvalidID(t *testing.T) {
	s := testSerializer()
	songs := parseSongs(t, s.Songs([]int{10, 0, 12}, nil))
	if len(songs) != 2 {
		t.Fatalf("expected 2 songs, got %d", len(songs))
	}
	if songs[0]["id"] != float64(10) || songs[1]["id"] != float64(12) {
		t.Errorf("relative order should be preserved, got %v then %v", songs[0]["id"], songs[1]["id"])
	}
}

func TestSongsAlbumArtistConditional(t *testing.T) {
	s := testSerializer()

	songs := parseSongs(t, s.Songs([]int{10}, nil))
	if _, present := songs[0]["albumartist"]; present {
		t.Error("albumartist should be omitted when not distinct")
	}

	songs = parseSongs(t, s.Songs([]int{12}, nil))
	aa, ok := songs[0]["albumartist"].(map[string]any)
	if !ok || aa["id"] != float64(40) || aa["name"] != "Various Artists" {
		t.Errorf("unexpected albumartist: %v", songs[0]["albumartist"])
	}
}

func TestSongsPlaylistContext(t *testing.T) {
	s := testSerializer()
	ctx := []catalog.PlaylistEntry{{ObjectID: 10, Track: 8}}

	songs := parseSongs(t, s.Songs([]int{10, 12}, ctx))
	if songs[0]["playlisttrack"] != float64(8) {
		t.Errorf("expected playlisttrack 8, got %v", songs[0]["playlisttrack"])
	}
	if _, present := songs[1]["playlisttrack"]; present {
		t.Error("song outside the playlist should carry no playlisttrack")
	}
}

func TestSongsWindowing(t *testing.T) {
	s := testSerializer()
	s.SetLimit(1)

	songs := parseSongs(t, s.Songs([]int{10, 12}, nil))
	if len(songs) != 1 || songs[0]["id"] != float64(10) {
		t.Fatalf("expected only song 10, got %v", songs)
	}
}

func TestSongsEmptyInput(t *testing.T) {
	s := testSerializer()
	if doc := s.Songs(nil, nil); doc != "[]" {
		t.Errorf("expected [], got %q", doc)
	}
}

func TestTagsJSON(t *testing.T) {
	s := testSerializer()

	var entries []struct {
		Tag map[string]any `json:"tag"`
	}
	if err := json.Unmarshal([]byte(s.Tags([]int{4})), &entries); err != nil {
		t.Fatalf("tags output is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(entries))
	}
	tag := entries[0].Tag
	if tag["name"] != "Rock" || tag["songs"] != float64(148) || tag["stream"] != float64(0) {
		t.Errorf("unexpected tag record: %v", tag)
	}
}

func TestTagsEmptyInput(t *testing.T) {
	s := testSerializer()
	if doc := s.Tags(nil); doc != "[]" {
		t.Errorf("expected [], got %q", doc)
	}
}
