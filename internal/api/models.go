package api

import (
	"time"

	"github.com/placecards/placecards-api/internal/domain"
	"github.com/placecards/placecards-api/internal/store"
)

// Common request/response structures

// SignupRequest defines the payload for the user registration endpoint.
// Profile fields are optional; the domain substitutes defaults.
type SignupRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=2,max=30"`
	About    string `json:"about"    validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar"   validate:"omitempty,cardurl"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// SigninRequest defines the payload for the login endpoint.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UpdateProfileRequest defines the payload for the self-profile update endpoint.
type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// UpdateAvatarRequest defines the payload for the self-avatar update endpoint.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,cardurl"`
}

// CreateCardRequest defines the payload for the card creation endpoint.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,cardurl"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse defines the confirmation body used by signout and card
// deletion.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse defines the profile shape returned by all user endpoints.
// The password hash never appears here.
type UserResponse struct {
	ID     domain.ID `json:"_id"`
	Name   string    `json:"name"`
	About  string    `json:"about"`
	Avatar string    `json:"avatar"`
	Email  string    `json:"email"`
}

// NewUserResponse converts a domain user into its response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		About:  user.About,
		Avatar: user.Avatar,
		Email:  user.Email,
	}
}

// NewUserListResponse converts a slice of domain users.
func NewUserListResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}

// CardResponse defines the card shape returned by the write endpoints,
// where the owner appears as an identifier.
type CardResponse struct {
	ID        domain.ID   `json:"_id"`
	Name      string      `json:"name"`
	Link      string      `json:"link"`
	Owner     domain.ID   `json:"owner"`
	Likes     []domain.ID `json:"likes"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewCardResponse converts a domain card into its response shape.
func NewCardResponse(card *domain.Card) CardResponse {
	likes := card.Likes
	if likes == nil {
		likes = []domain.ID{}
	}
	return CardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     card.OwnerID,
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}

// CardWithOwnerResponse defines the card shape returned by the listing
// endpoint, with the owner profile expanded in place.
type CardWithOwnerResponse struct {
	ID        domain.ID    `json:"_id"`
	Name      string       `json:"name"`
	Link      string       `json:"link"`
	Owner     UserResponse `json:"owner"`
	Likes     []domain.ID  `json:"likes"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewCardListResponse converts the store's card-with-owner rows.
func NewCardListResponse(cards []*store.CardWithOwner) []CardWithOwnerResponse {
	out := make([]CardWithOwnerResponse, 0, len(cards))
	for _, c := range cards {
		likes := c.Card.Likes
		if likes == nil {
			likes = []domain.ID{}
		}
		out = append(out, CardWithOwnerResponse{
			ID:        c.Card.ID,
			Name:      c.Card.Name,
			Link:      c.Card.Link,
			Owner:     NewUserResponse(c.Owner),
			Likes:     likes,
			CreatedAt: c.Card.CreatedAt,
		})
	}
	return out
}
