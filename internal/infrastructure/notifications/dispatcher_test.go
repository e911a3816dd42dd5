package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"speaker_bureau/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return f.err
}

func TestNATSDispatcher_Notify(t *testing.T) {
	confirmed := false
	intent := interfaces.NotificationIntent{
		Event:            interfaces.NotificationEventSpeakerResponded,
		OfferID:          "fo-1",
		RecipientEmail:   " ada@client.test ",
		URL:              "https://bureau.test/firm-offer/tok",
		EventName:        "Summit",
		SpeakerName:      "Grace",
		SpeakerConfirmed: &confirmed,
		OccurredAt:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	t.Run("publishes on the event subject", func(t *testing.T) {
		pub := &fakePublisher{}
		d := NewNATSDispatcher(pub, "notifications.firm_offer.", zerolog.Nop())

		d.Notify(context.Background(), intent)

		if len(pub.subjects) != 1 || pub.subjects[0] != "notifications.firm_offer.speaker_responded" {
			t.Fatalf("unexpected subjects: %v", pub.subjects)
		}
		var msg notificationMessage
		if err := json.Unmarshal(pub.payloads[0], &msg); err != nil {
			t.Fatalf("unexpected payload: %v", err)
		}
		if msg.ResourceType != "firm_offer" || msg.ResourceID != "fo-1" || msg.ActionURL != intent.URL {
			t.Fatalf("unexpected message: %+v", msg)
		}
		if len(msg.Recipients) != 1 || msg.Recipients[0] != "ada@client.test" {
			t.Fatalf("unexpected recipients: %v", msg.Recipients)
		}
		if msg.Payload["speaker_confirmed"] != false || msg.Payload["event_name"] != "Summit" {
			t.Fatalf("unexpected payload: %v", msg.Payload)
		}
	})

	t.Run("default prefix", func(t *testing.T) {
		d := NewNATSDispatcher(&fakePublisher{}, " ", zerolog.Nop())
		if got := d.Subject(interfaces.NotificationEventCreated); got != "notifications.firm_offer.created" {
			t.Fatalf("unexpected subject %q", got)
		}
	})

	t.Run("publish failure is swallowed and logged", func(t *testing.T) {
		var buf bytes.Buffer
		pub := &fakePublisher{err: errors.New("nats: connection closed")}
		d := NewNATSDispatcher(pub, "", zerolog.New(&buf))

		d.Notify(context.Background(), intent)

		if !strings.Contains(buf.String(), "failed to publish") || !strings.Contains(buf.String(), "fo-1") {
			t.Fatalf("expected warning, got %q", buf.String())
		}
	})

	t.Run("nil publisher is a no-op", func(t *testing.T) {
		d := NewNATSDispatcher(nil, "", zerolog.Nop())
		d.Notify(context.Background(), intent)
	})
}

func TestLogDispatcher_NeverLogsLinks(t *testing.T) {
	var buf bytes.Buffer
	d := NewLogDispatcher(zerolog.New(&buf))

	d.Notify(context.Background(), interfaces.NotificationIntent{
		Event:          interfaces.NotificationEventSentToSpeaker,
		OfferID:        "fo-1",
		RecipientEmail: "grace@speakers.test",
		URL:            "https://bureau.test/speaker-review/secret-token-value",
	})

	out := buf.String()
	if !strings.Contains(out, "sent_to_speaker") || !strings.Contains(out, "fo-1") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, "secret-token-value") {
		t.Fatalf("link must not be logged: %q", out)
	}
}
