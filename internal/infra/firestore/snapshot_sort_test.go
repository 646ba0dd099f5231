package firestore

import (
	"testing"
	"time"

	"placemark/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func commentAt(id string, millis int64) *entity.Comment {
	return &entity.Comment{ID: id, CreatedAt: time.UnixMilli(millis)}
}

func TestSortCommentsNewestFirst(t *testing.T) {
	comments := []*entity.Comment{
		commentAt("a", 10),
		commentAt("b", 30),
		commentAt("c", 20),
	}

	sortCommentsNewestFirst(comments)

	got := []string{comments[0].ID, comments[1].ID, comments[2].ID}
	assert.Equal(t, []string{"b", "c", "a"}, got)
}

func TestSortCommentsNewestFirst_StableOnTies(t *testing.T) {
	// Unresolved server timestamps decode as the zero time; their relative
	// order within a snapshot must not change.
	comments := []*entity.Comment{
		commentAt("first-pending", 0),
		commentAt("resolved", 50),
		commentAt("second-pending", 0),
	}

	sortCommentsNewestFirst(comments)

	got := []string{comments[0].ID, comments[1].ID, comments[2].ID}
	assert.Equal(t, []string{"resolved", "first-pending", "second-pending"}, got)
}

func TestSortCommentsNewestFirst_Empty(t *testing.T) {
	var comments []*entity.Comment
	sortCommentsNewestFirst(comments)
	assert.Empty(t, comments)
}
