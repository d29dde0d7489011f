// Package catalog defines the read-only projection records for media
// catalog entities and the collaborator contracts the serializer consumes.
//
// Records are flat snapshots built by the surrounding application; nothing
// in this package performs I/O. Loading, authentication and URL generation
// live behind the Store, RatingService, URLResolver and VoteService
// interfaces.
package catalog
