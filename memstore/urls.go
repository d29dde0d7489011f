package memstore

import (
	"net/url"
	"strconv"

	"github.com/harmonia-media/catalog-serializer/catalog"
)

// URLs is a web-path based catalog.URLResolver.
type URLs struct {
	WebPath string
}

func (u URLs) StreamURL(id int, kind catalog.Kind, token string) string {
	return u.WebPath + "/play/index.php?type=" + string(kind) +
		"&oid=" + strconv.Itoa(id) + "&auth=" + url.QueryEscape(token)
}

func (u URLs) ArtURL(id int, kind catalog.Kind, token string) string {
	return u.WebPath + "/image.php?object_id=" + strconv.Itoa(id) +
		"&object_type=" + string(kind) + "&auth=" + url.QueryEscape(token)
}

// Votes is a map-backed catalog.VoteService keyed by queue row id.
type Votes map[int]int

func (v Votes) VoteCount(rowID int) int { return v[rowID] }
