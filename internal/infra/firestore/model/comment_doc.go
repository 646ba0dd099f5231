package model

import (
	"time"

	"placemark/internal/domain/entity"
)

// CommentDoc is the document shape of the "addresses/{id}/comments"
// subcollection.
type CommentDoc struct {
	UserID      string    `firestore:"userId"`
	AuthorEmail string    `firestore:"authorEmail"`
	Text        string    `firestore:"text"`
	PhotoURL    string    `firestore:"photoUrl"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}

// Valid reports whether the decoded document carries the required fields.
// Text is mandatory; a photo never substitutes for it.
func (d *CommentDoc) Valid() bool {
	return d.UserID != "" && d.Text != ""
}

// ToEntity maps the document to the domain entity. The address ID comes
// from the collection path, not the document body.
func (d *CommentDoc) ToEntity(id, addressID string) *entity.Comment {
	return &entity.Comment{
		ID:          id,
		AddressID:   addressID,
		UserID:      d.UserID,
		AuthorEmail: d.AuthorEmail,
		Text:        d.Text,
		PhotoURL:    d.PhotoURL,
		CreatedAt:   d.CreatedAt,
	}
}

// FromCommentEntity maps a domain entity to its document shape.
func FromCommentEntity(comment *entity.Comment) *CommentDoc {
	return &CommentDoc{
		UserID:      comment.UserID,
		AuthorEmail: comment.AuthorEmail,
		Text:        comment.Text,
		PhotoURL:    comment.PhotoURL,
	}
}
