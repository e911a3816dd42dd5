package notifications

import (
	"context"

	"speaker_bureau/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// LogDispatcher records intents in the log instead of publishing them. It is
// used when no broker is configured. Links are not logged since they embed
// access tokens.
type LogDispatcher struct {
	log zerolog.Logger
}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(log zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log.With().Str("component", "log_dispatcher").Logger()}
}

func (d *LogDispatcher) Notify(_ context.Context, intent interfaces.NotificationIntent) {
	e := d.log.Info().
		Str("event_type", string(intent.Event)).
		Str("offer_id", intent.OfferID).
		Bool("has_recipient", intent.RecipientEmail != "").
		Str("event_name", intent.EventName)
	if intent.SpeakerConfirmed != nil {
		e = e.Bool("speaker_confirmed", *intent.SpeakerConfirmed)
	}
	e.Msg("notification: intent recorded (no broker configured)")
}
