package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"delivery-hooks/internal/services"
	"delivery-hooks/pkg/lambda"
)

// PipelineTriggeredBody is the response body of a successful trigger
const PipelineTriggeredBody = "Pipeline triggered!"

// PipelineHandler handles pipeline trigger invocations
type PipelineHandler struct {
	pipelineService services.PipelineService
	logger          logrus.FieldLogger
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService services.PipelineService, logger logrus.FieldLogger) *PipelineHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &PipelineHandler{
		pipelineService: pipelineService,
		logger:          logger,
	}
}

// HandleTrigger is the Lambda entry point. The event is accepted as-is and
// never decoded; any scheduled rule or event source may invoke it.
func (h *PipelineHandler) HandleTrigger(ctx context.Context, event lambda.Event) (lambda.Response, error) {
	fields := invocationFields(ctx)
	fields["pipeline_name"] = h.pipelineService.PipelineName()
	fields["event_size"] = len(event)
	h.logger.WithFields(fields).Debug("Pipeline trigger invoked")

	if _, err := h.pipelineService.TriggerPipeline(ctx); err != nil {
		return lambda.Response{}, fmt.Errorf("trigger pipeline: %w", err)
	}

	return lambda.Response{
		StatusCode: http.StatusOK,
		Body:       PipelineTriggeredBody,
	}, nil
}

// @Summary Trigger pipeline
// @Description Start one execution of the configured pipeline
// @Tags pipeline
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 502 {object} ErrorResponse
// @Router /pipeline/trigger [post]
func (h *PipelineHandler) TriggerPipeline(c *gin.Context) {
	execution, err := h.pipelineService.TriggerPipeline(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(statusForError(err), ErrorResponse{
			Error:   "Failed to trigger pipeline",
			Message: errorCode(err),
		})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: PipelineTriggeredBody,
		ID:      execution.ExecutionID,
	})
}
