package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	clientpkg "github.com/linkstream-org/backend/internal/client"
	eventpkg "github.com/linkstream-org/backend/internal/event"
	ormpkg "github.com/linkstream-org/backend/internal/orm"
	templatepkg "github.com/linkstream-org/backend/internal/template"
)

// Config carries the values the mail bodies need.
type Config struct {
	ClientURL string
	FromEmail string
}

// Worker consumes engagement events from the broker and turns them into
// emails. Delivery here is best-effort by design: the comment and its
// notification are already durable before the event is ever published.
type Worker struct {
	context      context.Context
	cancel       func()
	waitGroup    sync.WaitGroup
	logger       *zap.Logger
	router       *Router
	brokerClient *eventpkg.KafkaClient
	mailClient   *clientpkg.MailClient
	database     *ormpkg.PostgresClient
	config       *Config
}

func NewWorker(logger *zap.Logger, brokerClient *eventpkg.KafkaClient, mailClient *clientpkg.MailClient, database *ormpkg.PostgresClient, config *Config) *Worker {
	context, cancel := context.WithCancel(context.Background())
	this := &Worker{
		context:      context,
		cancel:       cancel,
		logger:       logger,
		brokerClient: brokerClient,
		mailClient:   mailClient,
		database:     database,
		config:       config,
	}
	this.router = NewRouter(
		map[string][]EventHandler{
			eventpkg.ENGAGEMENT_COMMENT: {
				this.EngagementCommentHandler,
			},
		},
	)
	return this
}

func (this *Worker) Start() error {
	this.logger.Info("starting mail worker")

	this.waitGroup.Add(1)
	go this.worker()
	return nil
}

func (this *Worker) Stop() error {
	this.logger.Info("stopping mail worker")

	this.cancel()
	this.waitGroup.Wait()
	return nil
}

func (this *Worker) worker() {
	defer this.waitGroup.Done()

	for {
		select {
		case <-this.context.Done():
			return
		case <-time.After(1 * time.Millisecond):
		}

		event, data, err := this.brokerClient.ReadMessage(this.context)
		if err != nil {
			this.logger.Error("error receiving kafka message", zap.Error(err))
			continue
		}

		err = this.router.Handle(event, data)
		if err != nil {
			this.logger.Error("error handling kafka message", zap.Error(err))
			continue
		}
	}
}

// EngagementCommentHandler mails a post's author about a new comment.
// Profiles are re-read at send time so the email carries current names.
func (this *Worker) EngagementCommentHandler(data []byte) error {
	var message eventpkg.EngagementCommentMessage
	err := json.Unmarshal(data, &message)
	if err != nil {
		return err
	}

	recipient, err := this.database.SelectUserByID(message.RecipientID)
	if err != nil {
		return err
	}

	actor, err := this.database.SelectUserByID(message.ActorID)
	if err != nil {
		return err
	}

	postURL := fmt.Sprintf("%s/post/%s", this.config.ClientURL, message.PostID)
	subject := fmt.Sprintf("%s commented on your post", actor.Name)

	templateData := struct {
		Recipient string
		Actor     string
		URL       string
		Content   string
	}{
		Recipient: recipient.Name,
		Actor:     actor.Name,
		URL:       postURL,
		Content:   message.Content,
	}

	content, err := templatepkg.Render("template/mail_comment.html", templateData)
	if err != nil {
		return err
	}

	err = this.mailClient.SendHTML(this.config.FromEmail, recipient.Email, subject, content)
	if err != nil {
		return err
	}

	this.logger.Info("sent comment notification email", zap.String("email", recipient.Email))
	return nil
}
