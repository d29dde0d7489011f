package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/config"
	"github.com/harmonia-media/catalog-serializer/internal"
	"github.com/harmonia-media/catalog-serializer/memstore"
	"github.com/harmonia-media/catalog-serializer/serializer"
)

func main() {
	configPath := flag.String("config", "", "config file path (default: config.yml in cwd)")
	libraryPath := flag.String("library", "library.json", "catalog library JSON file")
	call := flag.String("call", "songs", "artists|albums|songs|videos|playlists|tags|users|user|shouts|timeline|democratic|podcast")
	idList := flag.String("ids", "", "comma-separated entity ids")
	mode := flag.String("mode", "", "generic|rss|xspf|itunes (overrides config)")
	offset := flag.Int("offset", -1, "pagination offset (overrides config)")
	limit := flag.Int("limit", 0, "pagination limit (overrides config)")
	token := flag.String("auth", "", "context token for stream/art URLs")
	flag.Parse()

	internal.InitLogging()

	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded .env")
	}

	var err error
	if *configPath != "" {
		err = config.LoadAppConfigFile(*configPath)
	} else {
		err = config.LoadAppConfig()
	}
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	lib, err := memstore.LoadLibrary(*libraryPath)
	if err != nil {
		logrus.Fatalf("library: %v", err)
	}

	s := serializer.New(lib.Store, serializer.Deps{
		Ratings: lib.Ratings,
		URLs:    memstore.URLs{WebPath: config.Config.Site.WebPath},
		Votes:   lib.Votes,
	}, config.Config)
	if *mode != "" && !s.SetMode(*mode) {
		logrus.Fatalf("unrecognized mode: %s", *mode)
	}
	if *offset >= 0 {
		s.SetOffset(*offset)
	}
	if *limit > 0 {
		s.SetLimit(*limit)
	}
	s.SetToken(*token)

	ids := parseIDs(*idList)

	var out string
	switch *call {
	case "artists":
		out = s.Artists(ids)
	case "albums":
		out = s.Albums(ids)
	case "songs":
		out = s.Songs(ids, nil)
	case "videos":
		out = s.Videos(ids)
	case "playlists":
		out = s.Playlists(ids)
	case "tags":
		out = s.Tags(ids)
	case "users":
		out = s.Users(ids)
	case "user":
		if len(ids) != 1 {
			logrus.Fatal("user call takes exactly one id")
		}
		out = s.User(ids[0])
	case "shouts":
		out = s.Shouts(ids)
	case "timeline":
		out = s.Timeline(ids)
	case "democratic":
		entries := make([]catalog.DemocraticEntry, 0, len(ids))
		for i, id := range ids {
			entries = append(entries, catalog.DemocraticEntry{RowID: i + 1, Kind: catalog.KindSong, ObjectID: id})
		}
		out = s.Democratic(entries)
	case "podcast":
		if len(ids) != 1 {
			logrus.Fatal("podcast call takes exactly one id")
		}
		out = s.Podcast(ids[0])
	default:
		logrus.Fatalf("unknown call: %s", *call)
	}

	fmt.Println(out)
}

func parseIDs(list string) []int {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			logrus.Fatalf("bad id %q", p)
		}
		ids = append(ids, v)
	}
	return ids
}
