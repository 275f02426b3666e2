package services

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// CodePipelineAPI is the subset of the CodePipeline client used by PipelineService
type CodePipelineAPI interface {
	StartPipelineExecution(ctx context.Context, params *codepipeline.StartPipelineExecutionInput, optFns ...func(*codepipeline.Options)) (*codepipeline.StartPipelineExecutionOutput, error)
}

// SNSAPI is the subset of the SNS client used by AlertService
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// PipelineService defines the interface for starting delivery pipelines
type PipelineService interface {
	// TriggerPipeline starts one execution of the configured pipeline
	TriggerPipeline(ctx context.Context) (*PipelineExecution, error)
	PipelineName() string
}

// AlertService defines the interface for webhook alert notifications
type AlertService interface {
	// SendAlert publishes the configured alert to the configured topic
	SendAlert(ctx context.Context) (*AlertDelivery, error)
	TopicARN() string
}

// PipelineExecution describes a started pipeline execution
type PipelineExecution struct {
	PipelineName string `json:"pipeline_name"`
	ExecutionID  string `json:"execution_id,omitempty"`
}

// AlertDelivery describes a published alert
type AlertDelivery struct {
	TopicARN  string `json:"topic_arn"`
	Subject   string `json:"subject"`
	MessageID string `json:"message_id,omitempty"`
}
