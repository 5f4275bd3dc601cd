// notify_worker consumes employee events from the fanout exchange and sends
// a welcome email to newly created employees. It binds its own queue so the
// API keeps publishing whether or not a worker is running.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/oksasatya/employee-management-api/config"
	"github.com/oksasatya/employee-management-api/internal/domain/event"
	"github.com/oksasatya/employee-management-api/pkg/mailer"
)

func main() {
	cfg := config.Load()
	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; notify worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQExchange == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if err := ch.ExchangeDeclare(cfg.RabbitMQExchange, "fanout", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare: %v", err)
	}
	q, err := ch.QueueDeclare(cfg.RabbitMQExchange+".notify", true, false, false, false, nil)
	if err != nil {
		log.Fatalf("queue declare: %v", err)
	}
	if err := ch.QueueBind(q.Name, "", cfg.RabbitMQExchange, false, nil); err != nil {
		log.Fatalf("queue bind: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			// Routing key carries the event type; only creations get mail.
			if msg.RoutingKey != "" && msg.RoutingKey != event.EmployeeCreatedType {
				_ = msg.Ack(false)
				continue
			}

			var evt event.EmployeeCreated
			if err := json.Unmarshal(msg.Body, &evt); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}
			if evt.Email == "" {
				_ = msg.Ack(false)
				continue
			}

			subject := "Welcome aboard"
			text := fmt.Sprintf("Hi %s, your employee record has been created.", evt.Name)
			html := fmt.Sprintf("<p>Hi %s,</p><p>Your employee record has been created.</p>", evt.Name)

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := mg.Send(c, evt.Email, subject, text, html); err != nil {
				cancel()
				log.Printf("send failed: %v", err)
				_ = msg.Nack(false, true)
				continue
			}
			cancel()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("notify worker bound to exchange=%s queue=%s", cfg.RabbitMQExchange, q.Name)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
