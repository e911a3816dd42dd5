package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"speaker_bureau/internal/domain/entities"
	"speaker_bureau/internal/usecase/interfaces"
)

const (
	accessTokenBytes  = 32
	minAccessTokenLen = 16
	maxAccessTokenLen = 128
)

// ClientAccess is what a client token unlocks: the whole record, writable
// while the status allows it.
type ClientAccess struct {
	Offer   entities.FirmOffer
	CanEdit bool
}

// SpeakerAccess is what a speaker review token unlocks: the speaker projection
// plus the view and decision writes.
type SpeakerAccess struct {
	Offer entities.FirmOffer
}

func (a SpeakerAccess) Review() entities.SpeakerReview {
	return a.Offer.SpeakerReview()
}

// TokenAccessController maps an opaque token to one firm offer and one
// capability set. Unknown and malformed tokens both yield ErrTokenNotFound.
// Tokens are compared as given; surrounding whitespace makes them malformed.
type TokenAccessController struct {
	repo interfaces.IFirmOfferRepository
}

func NewTokenAccessController(repo interfaces.IFirmOfferRepository) *TokenAccessController {
	return &TokenAccessController{repo: repo}
}

func (c *TokenAccessController) ResolveClient(ctx context.Context, token string) (ClientAccess, error) {
	if !wellFormedToken(token) {
		return ClientAccess{}, ErrTokenNotFound
	}
	o, err := c.repo.GetByClientToken(ctx, token)
	if err != nil {
		return ClientAccess{}, err
	}
	if o.ID == "" || !tokensEqual(o.ClientAccessToken, token) {
		return ClientAccess{}, ErrTokenNotFound
	}
	return ClientAccess{Offer: o, CanEdit: o.ClientCanEdit()}, nil
}

func (c *TokenAccessController) ResolveSpeaker(ctx context.Context, token string) (SpeakerAccess, error) {
	if !wellFormedToken(token) {
		return SpeakerAccess{}, ErrTokenNotFound
	}
	o, err := c.repo.GetBySpeakerToken(ctx, token)
	if err != nil {
		return SpeakerAccess{}, err
	}
	if o.ID == "" || !tokensEqual(o.SpeakerReviewToken, token) {
		return SpeakerAccess{}, ErrTokenNotFound
	}
	return SpeakerAccess{Offer: o}, nil
}

func wellFormedToken(token string) bool {
	if len(token) < minAccessTokenLen || len(token) > maxAccessTokenLen {
		return false
	}
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func tokensEqual(stored, presented string) bool {
	return stored != "" && subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

func newAccessToken() (string, error) {
	b := make([]byte, accessTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
