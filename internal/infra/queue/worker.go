package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/homepilot/homepilot-api/internal/infra/http/middleware"
)

// InviteMailer sends the "get your own HomePilot" invite. The worker is
// the only place mail is actually dispatched from.
type InviteMailer interface {
	SendFollowupInvite(to, name string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  InviteMailer
}

func NewWorker(ch *amqp.Channel, mailer InviteMailer) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register RabbitMQ consumer")
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Error().Err(err).Msg("worker: invalid notification JSON")
				// Malformed message, reject without requeue so it
				// does not wedge the queue.
				d.Nack(false, false)
				continue
			}

			log.Info().
				Str("submission_id", payload.SubmissionID).
				Str("email", payload.Email).
				Msg("worker: sending follow-up invite")

			if err := w.Mailer.SendFollowupInvite(payload.Email, payload.Name); err != nil {
				// Notification is best-effort end to end; no requeue.
				middleware.RecordIntegrationError("smtp")
				log.Error().Err(err).Str("email", payload.Email).Msg("worker: invite mail failed")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Info().Str("queue", queueName).Msg("notification worker running")
	<-forever
}
