package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"delivery-hooks/internal/middleware"
	"delivery-hooks/internal/services"
	"delivery-hooks/pkg/lambda"
)

// AlertSentBody is the response body of a successful webhook alert
const AlertSentBody = "SNS email sent!"

// WebhookHandler handles inbound webhook calls forwarded by API Gateway
type WebhookHandler struct {
	alertService services.AlertService
	logger       logrus.FieldLogger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(alertService services.AlertService, logger logrus.FieldLogger) *WebhookHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &WebhookHandler{
		alertService: alertService,
		logger:       logger,
	}
}

// HandleWebhook is the Lambda entry point. Any event is accepted; the alert
// text is fixed by configuration. API Gateway proxy fields are read only to
// enrich the log entry.
func (h *WebhookHandler) HandleWebhook(ctx context.Context, event lambda.Event) (lambda.Response, error) {
	fields := invocationFields(ctx)
	fields["topic_arn"] = h.alertService.TopicARN()
	fields["event_size"] = len(event)

	var req events.APIGatewayProxyRequest
	if err := json.Unmarshal(event, &req); err == nil {
		if req.HTTPMethod != "" {
			fields["method"] = req.HTTPMethod
			fields["path"] = req.Path
		}
		if name := headerValue(req.Headers, "X-GitHub-Event"); name != "" {
			fields["github_event"] = name
		}
		if delivery := headerValue(req.Headers, "X-GitHub-Delivery"); delivery != "" {
			fields["github_delivery"] = delivery
		}
	}
	h.logger.WithFields(fields).Debug("Webhook received")

	if _, err := h.alertService.SendAlert(ctx); err != nil {
		return lambda.Response{}, fmt.Errorf("send webhook alert: %w", err)
	}

	return lambda.Response{
		StatusCode: http.StatusOK,
		Body:       AlertSentBody,
	}, nil
}

// @Summary Receive GitHub webhook
// @Description Publish the configured alert for an inbound webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 502 {object} ErrorResponse
// @Router /webhooks/github [post]
func (h *WebhookHandler) ReceiveWebhook(c *gin.Context) {
	h.logger.WithFields(logrus.Fields{
		"request_id":   c.GetString(middleware.RequestIDKey),
		"github_event": c.GetHeader("X-GitHub-Event"),
	}).Debug("Webhook received")

	delivery, err := h.alertService.SendAlert(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(statusForError(err), ErrorResponse{
			Error:   "Failed to send alert",
			Message: errorCode(err),
		})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: AlertSentBody,
		ID:      delivery.MessageID,
	})
}

// headerValue looks up a header case-insensitively; API Gateway keeps the
// caller's casing in the proxy request
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
