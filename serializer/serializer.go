package serializer

import (
	"github.com/sirupsen/logrus"

	"github.com/harmonia-media/catalog-serializer/catalog"
	"github.com/harmonia-media/catalog-serializer/config"
	"github.com/harmonia-media/catalog-serializer/formatter"
)

var log = logrus.New()

// Deps bundles the decoration collaborators. Any nil member is replaced
// by a no-op implementation that yields zero values, per the degrade-to-
// defaults policy.
type Deps struct {
	Ratings catalog.RatingService
	URLs    catalog.URLResolver
	Votes   catalog.VoteService
}

// Serializer renders catalog collections. Construct one per logical
// request; it is not safe for concurrent use.
type Serializer struct {
	store   catalog.Store
	ratings catalog.RatingService
	urls    catalog.URLResolver
	votes   catalog.VoteService
	env     formatter.Envelope

	offset int
	limit  int
	mode   formatter.Mode
	token  string
}

// New builds a Serializer over store with cfg's site metadata and
// serializer defaults.
func New(store catalog.Store, deps Deps, cfg config.AppConfig) *Serializer {
	s := &Serializer{
		store:   store,
		ratings: deps.Ratings,
		urls:    deps.URLs,
		votes:   deps.Votes,
		env: formatter.Envelope{Site: formatter.SiteInfo{
			Title:   cfg.Site.Title,
			WebPath: cfg.Site.WebPath,
			Charset: cfg.Site.Charset,
			Version: cfg.Site.Version,
		}},
		offset: 0,
		limit:  config.DefaultLimit,
		mode:   formatter.ModeGeneric,
	}
	if s.ratings == nil {
		s.ratings = noRatings{}
	}
	if s.urls == nil {
		s.urls = noURLs{}
	}
	if s.votes == nil {
		s.votes = noVotes{}
	}
	if cfg.Serializer.Limit > 0 {
		s.limit = cfg.Serializer.Limit
	}
	if cfg.Serializer.Offset > 0 {
		s.offset = cfg.Serializer.Offset
	}
	if m, ok := formatter.ParseMode(cfg.Serializer.Mode); ok {
		s.mode = m
	}
	return s
}

// SetLimit changes the pagination limit. Zero and negative values are
// rejected and the prior limit retained; the return value reports
// acceptance.
func (s *Serializer) SetLimit(limit int) bool {
	if limit <= 0 {
		return false
	}
	s.limit = limit
	return true
}

// SetOffset changes the pagination offset. Negative values are rejected
// and the prior offset retained.
func (s *Serializer) SetOffset(offset int) bool {
	if offset < 0 {
		return false
	}
	s.offset = offset
	return true
}

// SetMode changes the output mode. Unrecognized literals are rejected and
// the prior mode retained.
func (s *Serializer) SetMode(mode string) bool {
	m, ok := formatter.ParseMode(mode)
	if !ok {
		log.WithFields(logrus.Fields{"mode": mode}).Warn("unrecognized output mode rejected")
		return false
	}
	s.mode = m
	return true
}

// Mode reports the active output mode.
func (s *Serializer) Mode() formatter.Mode {
	return s.mode
}

// SetToken sets the context token passed through to the URL resolver.
func (s *Serializer) SetToken(token string) {
	s.token = token
}

// window applies the offset/limit slice to ids. Input is returned
// unchanged when it already fits the window and no offset is set; an
// out-of-range offset yields an empty result.
func (s *Serializer) window(ids []int) []int {
	if len(ids) <= s.limit && s.offset == 0 {
		return ids
	}
	if s.offset >= len(ids) {
		return nil
	}
	end := s.offset + s.limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[s.offset:end]
}

// document wraps body in the active envelope.
func (s *Serializer) document(body string) string {
	return s.env.Document(s.mode, "", body)
}

// Header returns the active envelope header. title customizes the XSPF
// playlist title only.
func (s *Serializer) Header(title string) string {
	return s.env.Header(s.mode, title)
}

// Footer returns the active envelope footer.
func (s *Serializer) Footer() string {
	return s.env.Footer(s.mode)
}

// SingleString renders one envelope-wrapped element: CDATA when value is
// non-empty, self-closing otherwise.
func (s *Serializer) SingleString(key, value string) string {
	w := formatter.NewXMLWriter()
	if value != "" {
		w.CDATA(key, value)
	} else {
		w.Empty(key)
	}
	return s.document(w.String())
}

// Error renders the caller-facing JSON error envelope.
func (s *Serializer) Error(code int, message string) string {
	return formatter.ErrorJSON(code, message)
}

// writeTagAggregates emits the full tag aggregate list for one entity.
func writeTagAggregates(w *formatter.XMLWriter, assocs []catalog.TagAssoc) {
	for _, t := range catalog.AggregateTags(assocs) {
		w.CDATA("tag", t.Name, formatter.IntAttr("id", t.ID), formatter.IntAttr("count", t.Count))
	}
}

type noRatings struct{}

func (noRatings) UserRating(int, catalog.Kind) float64    { return 0 }
func (noRatings) AverageRating(int, catalog.Kind) float64 { return 0 }
func (noRatings) WarmCache(catalog.Kind, []int)           {}

type noURLs struct{}

func (noURLs) StreamURL(int, catalog.Kind, string) string { return "" }
func (noURLs) ArtURL(int, catalog.Kind, string) string    { return "" }

type noVotes struct{}

func (noVotes) VoteCount(int) int { return 0 }
