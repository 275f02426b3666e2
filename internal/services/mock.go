package services

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// MockCodePipeline is an in-memory CodePipelineAPI that records every call
type MockCodePipeline struct {
	mu          sync.Mutex
	Inputs      []*codepipeline.StartPipelineExecutionInput
	ExecutionID string
	Err         error
}

// NewMockCodePipeline creates a MockCodePipeline that returns executionID
func NewMockCodePipeline(executionID string) *MockCodePipeline {
	return &MockCodePipeline{ExecutionID: executionID}
}

// StartPipelineExecution implements CodePipelineAPI
func (m *MockCodePipeline) StartPipelineExecution(ctx context.Context, params *codepipeline.StartPipelineExecutionInput, optFns ...func(*codepipeline.Options)) (*codepipeline.StartPipelineExecutionOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Inputs = append(m.Inputs, params)
	if m.Err != nil {
		return nil, m.Err
	}

	return &codepipeline.StartPipelineExecutionOutput{
		PipelineExecutionId: aws.String(m.ExecutionID),
	}, nil
}

// Calls returns the number of recorded calls
func (m *MockCodePipeline) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Inputs)
}

// MockSNS is an in-memory SNSAPI that records every call
type MockSNS struct {
	mu        sync.Mutex
	Inputs    []*sns.PublishInput
	MessageID string
	Err       error
}

// NewMockSNS creates a MockSNS that returns messageID
func NewMockSNS(messageID string) *MockSNS {
	return &MockSNS{MessageID: messageID}
}

// Publish implements SNSAPI
func (m *MockSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Inputs = append(m.Inputs, params)
	if m.Err != nil {
		return nil, m.Err
	}

	return &sns.PublishOutput{
		MessageId: aws.String(m.MessageID),
	}, nil
}

// Calls returns the number of recorded calls
func (m *MockSNS) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Inputs)
}
