package service

import (
	"cms-backend/internal/dto"
	"cms-backend/internal/entity"
	"cms-backend/internal/repository"
)

// BuildContentQuery decides which content records a caller may see and
// expresses that as a query specification.
//
// Admins pick exactly one of the filters: an owner filter wins over a
// content-id filter, and with neither the whole table is visible.
// Non-admins are always pinned to their own content; a content-id
// filter narrows within that, so someone else's id yields an empty set
// rather than an error. A search term restricts whichever base set the
// role produced.
func BuildContentQuery(caller *entity.User, filter dto.ContentFilter) repository.ContentQuery {
	var q repository.ContentQuery

	if caller.IsAdmin {
		switch {
		case filter.UserID != nil:
			q.OwnerID = filter.UserID
		case filter.ContentID != nil:
			q.ContentID = filter.ContentID
		}
	} else {
		ownerID := caller.ID
		q.OwnerID = &ownerID
		if filter.ContentID != nil {
			q.ContentID = filter.ContentID
		}
	}

	q.Search = filter.Search

	return q
}

// CanMutateContent: only the author or an admin may edit or delete.
func CanMutateContent(caller *entity.User, content *entity.Content) bool {
	return caller.ID == content.UserID || caller.IsAdmin
}
