package events

import (
	"encoding/json"

	"github.com/courtbook/backend/pkg/logger"
	"github.com/courtbook/backend/pkg/rabbitmq"
)

type envelope struct {
	Name        string `json:"name"`
	BookingID   string `json:"booking_id"`
	CourtID     string `json:"court_id"`
	BookingDate string `json:"booking_date"`
	OccurredAt  string `json:"occurred_at"`
}

// StartNotificationConsumer drains the event queue and writes a structured
// log line per event. Actual delivery channels (mail, push) hang off this
// queue outside the backend.
func StartNotificationConsumer(client *rabbitmq.Client, l logger.Interface) {
	go func() {
		err := client.Consume(func(body []byte) error {
			var ev envelope
			if err := json.Unmarshal(body, &ev); err != nil {
				l.Error("events - consumer - failed to unmarshal event: %s", err.Error())

				return err
			}

			l.Info("events - %s - booking %s court %s on %s", ev.Name, ev.BookingID, ev.CourtID, ev.BookingDate)

			return nil
		})
		if err != nil {
			l.Error("events - consumer stopped: %s", err.Error())
		}
	}()
}
