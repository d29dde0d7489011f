package memstore

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/harmonia-media/catalog-serializer/catalog"
)

type ratingPair struct {
	user float64
	avg  float64
}

// Ratings is a map-backed catalog.RatingService with a go-cache warm
// layer: WarmCache copies a whole batch into the cache so the per-item
// reads that follow never touch the source maps.
type Ratings struct {
	source map[string]ratingPair
	warm   *gocache.Cache
}

// NewRatings returns an empty rating service.
func NewRatings() *Ratings {
	return &Ratings{
		source: map[string]ratingPair{},
		warm:   gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func ratingKey(id int, kind catalog.Kind) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

// Set stores both rating values for one entity.
func (r *Ratings) Set(id int, kind catalog.Kind, user, avg float64) {
	r.source[ratingKey(id, kind)] = ratingPair{user: user, avg: avg}
}

// WarmCache copies the batch into the warm layer.
func (r *Ratings) WarmCache(kind catalog.Kind, ids []int) {
	for _, id := range ids {
		key := ratingKey(id, kind)
		if pair, ok := r.source[key]; ok {
			r.warm.Set(key, pair, gocache.DefaultExpiration)
		}
	}
}

func (r *Ratings) lookup(id int, kind catalog.Kind) ratingPair {
	key := ratingKey(id, kind)
	if v, ok := r.warm.Get(key); ok {
		return v.(ratingPair)
	}
	return r.source[key]
}

// UserRating reports the user rating, 0 when absent.
func (r *Ratings) UserRating(id int, kind catalog.Kind) float64 {
	return r.lookup(id, kind).user
}

// AverageRating reports the average rating, 0 when absent.
func (r *Ratings) AverageRating(id int, kind catalog.Kind) float64 {
	return r.lookup(id, kind).avg
}
