package serializer

import (
	"github.com/harmonia-media/catalog-serializer/formatter"
)

// Shouts renders the shoutbox comment list. The author username is only
// included while the author account still exists.
func (s *Serializer) Shouts(ids []int) string {
	w := formatter.NewXMLWriter()
	w.Open("shouts")
	for _, id := range ids {
		shout, ok := s.store.Shout(id)
		if !ok {
			continue
		}
		w.Open("shout", formatter.IntAttr("id", shout.ID))
		w.Int64("date", shout.Date)
		w.CDATA("text", shout.Text)
		if user, ok := s.store.User(shout.UserID); ok {
			w.CDATA("username", user.Username)
		}
		w.Close()
	}
	w.Close()
	return s.document(w.String())
}

// Timeline renders the user activity list.
func (s *Serializer) Timeline(ids []int) string {
	w := formatter.NewXMLWriter()
	w.Open("timeline")
	for _, id := range ids {
		activity, ok := s.store.Activity(id)
		if !ok {
			continue
		}
		w.Open("activity", formatter.IntAttr("id", activity.ID))
		w.Int64("date", activity.Date)
		w.CDATA("object_type", activity.ObjectType)
		w.Int("object_id", activity.ObjectID)
		w.CDATA("action", activity.Action)
		if user, ok := s.store.User(activity.UserID); ok {
			w.CDATA("username", user.Username)
		}
		w.Close()
	}
	w.Close()
	return s.document(w.String())
}
