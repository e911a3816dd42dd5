package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification_dispatcher_interface.go -destination=mocks/notification_dispatcher_interface_mock.go -package=mock_interfaces

type NotificationEvent string

const (
	NotificationEventCreated          NotificationEvent = "created"
	NotificationEventSentToSpeaker    NotificationEvent = "sent_to_speaker"
	NotificationEventSpeakerResponded NotificationEvent = "speaker_responded"
)

// NotificationIntent describes an email the delivery service should send.
// It carries the derived link, never a raw token.
type NotificationIntent struct {
	Event            NotificationEvent `json:"event"`
	OfferID          string            `json:"offer_id"`
	RecipientEmail   string            `json:"recipient_email,omitempty"`
	URL              string            `json:"url,omitempty"`
	EventName        string            `json:"event_name,omitempty"`
	ClientName       string            `json:"client_name,omitempty"`
	SpeakerName      string            `json:"speaker_name,omitempty"`
	SpeakerConfirmed *bool             `json:"speaker_confirmed,omitempty"`
	OccurredAt       time.Time         `json:"occurred_at"`
}

// INotificationDispatcher hands notification intents to the email pipeline.
//
// Dispatch is best effort: implementations log failures and never report them
// back, so a failed send can not undo the transition that triggered it.
type INotificationDispatcher interface {
	Notify(ctx context.Context, intent NotificationIntent)
}
