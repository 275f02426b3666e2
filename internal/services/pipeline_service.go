package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/sirupsen/logrus"
)

// pipelineService implements the PipelineService interface
type pipelineService struct {
	client       CodePipelineAPI
	pipelineName string
	logger       logrus.FieldLogger
}

// NewPipelineService creates a new pipeline service instance
func NewPipelineService(client CodePipelineAPI, pipelineName string, logger logrus.FieldLogger) PipelineService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &pipelineService{
		client:       client,
		pipelineName: pipelineName,
		logger:       logger,
	}
}

// TriggerPipeline starts the pipeline once. The output is not inspected
// beyond reading the execution id; errors are returned to the caller unretried.
func (s *pipelineService) TriggerPipeline(ctx context.Context) (*PipelineExecution, error) {
	out, err := s.client.StartPipelineExecution(ctx, &codepipeline.StartPipelineExecutionInput{
		Name: aws.String(s.pipelineName),
	})
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"pipeline_name": s.pipelineName,
			"error_code":    APIErrorCode(err),
		}).WithError(err).Error("Failed to start pipeline execution")
		return nil, NewServiceError("StartPipelineExecution", s.pipelineName, err)
	}

	execution := &PipelineExecution{PipelineName: s.pipelineName}
	if out != nil {
		execution.ExecutionID = aws.ToString(out.PipelineExecutionId)
	}

	s.logger.WithFields(logrus.Fields{
		"pipeline_name": s.pipelineName,
		"execution_id":  execution.ExecutionID,
	}).Info("Pipeline execution started")

	return execution, nil
}

// PipelineName returns the configured pipeline name
func (s *pipelineService) PipelineName() string {
	return s.pipelineName
}
