package serializer

import (
	"github.com/harmonia-media/catalog-serializer/formatter"
)

// User renders a single user document. The full name is only included
// when the user has made it public.
func (s *Serializer) User(id int) string {
	w := formatter.NewXMLWriter()
	if user, ok := s.store.User(id); ok {
		w.Open("user", formatter.IntAttr("id", user.ID))
		w.CDATA("username", user.Username)
		w.Int64("create_date", user.CreateDate)
		w.Int64("last_seen", user.LastSeen)
		w.CDATA("website", user.Website)
		w.CDATA("state", user.State)
		w.CDATA("city", user.City)
		if user.FullNamePublic {
			w.CDATA("fullname", user.FullName)
		}
		w.Close()
	}
	return s.document(w.String())
}

// Users renders a username list for the given user ids.
func (s *Serializer) Users(ids []int) string {
	w := formatter.NewXMLWriter()
	w.Open("users")
	for _, id := range ids {
		user, ok := s.store.User(id)
		if !ok {
			continue
		}
		w.CDATA("username", user.Username)
	}
	w.Close()
	return s.document(w.String())
}
