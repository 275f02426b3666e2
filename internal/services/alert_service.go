package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sirupsen/logrus"
)

// alertService implements the AlertService interface
type alertService struct {
	client   SNSAPI
	topicARN string
	subject  string
	message  string
	logger   logrus.FieldLogger
}

// AlertConfig holds the notification published for every webhook
type AlertConfig struct {
	TopicARN string
	Subject  string
	Message  string
}

// NewAlertService creates a new alert service instance
func NewAlertService(client SNSAPI, cfg AlertConfig, logger logrus.FieldLogger) AlertService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &alertService{
		client:   client,
		topicARN: cfg.TopicARN,
		subject:  cfg.Subject,
		message:  cfg.Message,
		logger:   logger,
	}
}

// SendAlert publishes the static subject and message. Nothing from the
// triggering event ends up in the notification.
func (s *alertService) SendAlert(ctx context.Context) (*AlertDelivery, error) {
	out, err := s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Subject:  aws.String(s.subject),
		Message:  aws.String(s.message),
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"topic_arn":  s.topicARN,
			"error_code": APIErrorCode(err),
		}).WithError(err).Error("Failed to publish alert")
		return nil, NewServiceError("Publish", s.topicARN, err)
	}

	delivery := &AlertDelivery{
		TopicARN: s.topicARN,
		Subject:  s.subject,
	}
	if out != nil {
		delivery.MessageID = aws.ToString(out.MessageId)
	}

	s.logger.WithFields(logrus.Fields{
		"topic_arn":  s.topicARN,
		"message_id": delivery.MessageID,
	}).Info("Alert published")

	return delivery, nil
}

// TopicARN returns the configured topic ARN
func (s *alertService) TopicARN() string {
	return s.topicARN
}
