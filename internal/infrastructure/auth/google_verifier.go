package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// GoogleVerifierImpl implements domain.IdentityVerifier against Google's
// ID-token verification endpoint.
type GoogleVerifierImpl struct {
	audience string
}

// NewGoogleVerifier creates a verifier bound to the OAuth client ID the
// frontend obtains its credential for.
func NewGoogleVerifier(clientID string) domain.IdentityVerifier {
	return &GoogleVerifierImpl{audience: clientID}
}

// Verify implements domain.IdentityVerifier. Any verification failure
// (expired, wrong audience, malformed) maps to ErrOAuthVerification.
func (g *GoogleVerifierImpl) Verify(ctx context.Context, token string) (*domain.ExternalIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, g.audience)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOAuthVerification, err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, domain.ErrOAuthVerification
	}

	identity := &domain.ExternalIdentity{Email: email}
	if v, ok := payload.Claims["given_name"].(string); ok {
		identity.FirstName = v
	}
	if v, ok := payload.Claims["family_name"].(string); ok {
		identity.LastName = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		identity.AvatarURL = v
	}

	return identity, nil
}
