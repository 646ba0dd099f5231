package firestore

import (
	"sort"

	"placemark/internal/domain/entity"
)

// sortCommentsNewestFirst orders a comment snapshot descending by CreatedAt.
// The sort is stable so comments with equal or unresolved timestamps keep
// their relative order within a given snapshot.
func sortCommentsNewestFirst(comments []*entity.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
}
