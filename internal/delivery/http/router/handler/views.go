// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"placemark/internal/domain/entity"
	"placemark/internal/domain/service"
)

// AddressView is the wire representation of an address.
type AddressView struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	IsPublic    bool       `json:"is_public"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// CommentView is the wire representation of a comment.
type CommentView struct {
	ID          string     `json:"id"`
	AddressID   string     `json:"address_id"`
	UserID      string     `json:"user_id"`
	AuthorEmail string     `json:"author_email,omitempty"`
	Text        string     `json:"text"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// IdentityView is the wire representation of the signed-in principal.
type IdentityView struct {
	UID      string `json:"uid"`
	Email    string `json:"email,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

// SessionView is the response body of sign-in and sign-up. The ID token is
// what the client presents as the bearer token on authenticated routes.
type SessionView struct {
	User    IdentityView `json:"user"`
	IDToken string       `json:"id_token"`
}

func toAddressView(address *entity.Address) AddressView {
	view := AddressView{
		ID:          address.ID,
		UserID:      address.UserID,
		Name:        address.Name,
		Description: address.Description,
		IsPublic:    address.IsPublic,
		PhotoURL:    address.PhotoURL,
		Latitude:    address.Latitude,
		Longitude:   address.Longitude,
	}
	if !address.CreatedAt.IsZero() {
		createdAt := address.CreatedAt
		view.CreatedAt = &createdAt
	}

	return view
}

func toAddressViews(addresses []*entity.Address) []AddressView {
	views := make([]AddressView, 0, len(addresses))
	for _, address := range addresses {
		views = append(views, toAddressView(address))
	}

	return views
}

func toCommentView(comment *entity.Comment) CommentView {
	view := CommentView{
		ID:          comment.ID,
		AddressID:   comment.AddressID,
		UserID:      comment.UserID,
		AuthorEmail: comment.AuthorEmail,
		Text:        comment.Text,
		PhotoURL:    comment.PhotoURL,
	}
	if !comment.CreatedAt.IsZero() {
		createdAt := comment.CreatedAt
		view.CreatedAt = &createdAt
	}

	return view
}

func toCommentViews(comments []*entity.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, toCommentView(comment))
	}

	return views
}

func toIdentityView(identity *entity.Identity) IdentityView {
	return IdentityView{
		UID:      identity.UID,
		Email:    identity.Email,
		PhotoURL: identity.PhotoURL,
	}
}

func toSessionView(result *service.AuthResult) SessionView {
	return SessionView{
		User:    toIdentityView(result.Identity),
		IDToken: result.IDToken,
	}
}
