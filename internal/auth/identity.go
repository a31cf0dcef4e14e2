package auth

import (
	"context"
	"errors"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// ErrUnauthorized is returned for any token that does not resolve to a
// known user, whether the token failed verification or the subject is
// gone. The two cases are deliberately indistinguishable.
var ErrUnauthorized = errors.New("unauthorized")

// IdentityResolver turns a verified bearer token into a user record.
type IdentityResolver struct {
	tokens *TokenService
	users  repository.UserRepository
}

func NewIdentityResolver(tokens *TokenService, users repository.UserRepository) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users}
}

// Resolve verifies token and looks the subject up as a username.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*domain.User, error) {
	subject, err := r.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := r.users.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
