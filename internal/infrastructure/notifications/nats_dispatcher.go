package notifications

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"speaker_bureau/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const DefaultSubjectPrefix = "notifications.firm_offer"

// Publisher is the subset of *nats.Conn the dispatcher needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSDispatcher publishes firm-offer notification intents for the email
// service.
//
// Subject convention: <prefix>.<event>, e.g. notifications.firm_offer.created.
//
// Publishing is non-fatal: failures are logged and never reach the caller.
type NATSDispatcher struct {
	pub    Publisher
	prefix string
	log    zerolog.Logger
}

var _ interfaces.INotificationDispatcher = (*NATSDispatcher)(nil)

// notificationMessage is the JSON schema published to NATS.
type notificationMessage struct {
	EventType    string         `json:"event_type"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	Recipients   []string       `json:"recipients,omitempty"`
	ActionURL    string         `json:"action_url,omitempty"`
	OccurredAt   time.Time      `json:"occurred_at"`
	Payload      map[string]any `json:"payload,omitempty"`
}

func NewNATSDispatcher(pub Publisher, prefix string, log zerolog.Logger) *NATSDispatcher {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSDispatcher{
		pub:    pub,
		prefix: prefix,
		log:    log.With().Str("component", "nats_dispatcher").Logger(),
	}
}

// ConnectNATS dials the broker and keeps reconnecting for the process lifetime.
func ConnectNATS(url string, log zerolog.Logger) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("speaker-bureau-api"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrlRedacted()).Msg("nats reconnected")
		}),
	)
}

func (d *NATSDispatcher) Subject(event interfaces.NotificationEvent) string {
	return d.prefix + "." + string(event)
}

func (d *NATSDispatcher) Notify(_ context.Context, intent interfaces.NotificationIntent) {
	if d.pub == nil {
		return
	}

	msg := toMessage(intent)
	data, err := json.Marshal(msg)
	if err != nil {
		d.log.Warn().Err(err).Str("event_type", msg.EventType).Msg("notification: failed to marshal intent")
		return
	}

	subject := d.Subject(intent.Event)
	if err := d.pub.Publish(subject, data); err != nil {
		d.log.Warn().Err(err).
			Str("subject", subject).
			Str("offer_id", intent.OfferID).
			Msg("notification: failed to publish (non-fatal)")
		return
	}

	d.log.Debug().
		Str("subject", subject).
		Str("offer_id", intent.OfferID).
		Int("recipients", len(msg.Recipients)).
		Msg("notification: intent published")
}

func toMessage(intent interfaces.NotificationIntent) notificationMessage {
	msg := notificationMessage{
		EventType:    string(intent.Event),
		ResourceType: "firm_offer",
		ResourceID:   intent.OfferID,
		ActionURL:    intent.URL,
		OccurredAt:   intent.OccurredAt.UTC(),
		Payload:      map[string]any{},
	}
	if r := strings.TrimSpace(intent.RecipientEmail); r != "" {
		msg.Recipients = []string{r}
	}
	if intent.EventName != "" {
		msg.Payload["event_name"] = intent.EventName
	}
	if intent.ClientName != "" {
		msg.Payload["client_name"] = intent.ClientName
	}
	if intent.SpeakerName != "" {
		msg.Payload["speaker_name"] = intent.SpeakerName
	}
	if intent.SpeakerConfirmed != nil {
		msg.Payload["speaker_confirmed"] = *intent.SpeakerConfirmed
	}
	return msg
}
