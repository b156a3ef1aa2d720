package lib

import "github.com/google/uuid"

// IsOwner reports whether the acting identity owns a resource authored by
// authorID. Content mutation (edit, delete) is gated on this; commenting and
// liking are not.
func IsOwner(authorID uuid.UUID, actorID uuid.UUID) bool {
	return authorID == actorID
}
