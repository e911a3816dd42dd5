package usecase

import (
	"net/url"
	"strings"
)

// FirmOfferLinks builds the public URLs handed to clients and speakers.
type FirmOfferLinks struct {
	origin string
}

func NewFirmOfferLinks(origin string) FirmOfferLinks {
	return FirmOfferLinks{origin: strings.TrimRight(strings.TrimSpace(origin), "/")}
}

// ClientURL is {origin}/firm-offer/{client_access_token}.
func (l FirmOfferLinks) ClientURL(token string) string {
	return l.origin + "/firm-offer/" + url.PathEscape(token)
}

// SpeakerReviewURL is {origin}/speaker-review/{speaker_review_token}.
func (l FirmOfferLinks) SpeakerReviewURL(token string) string {
	return l.origin + "/speaker-review/" + url.PathEscape(token)
}
