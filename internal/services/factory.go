package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	PipelineService PipelineService
	AlertService    AlertService
}

// ServiceConfig holds configuration for services
type ServiceConfig struct {
	PipelineName string
	Alert        AlertConfig
	Logger       logrus.FieldLogger
}

// Clients holds the AWS clients the services call
type Clients struct {
	CodePipeline CodePipelineAPI
	SNS          SNSAPI
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(clients *Clients, config *ServiceConfig) (*ServiceContainer, error) {
	if clients == nil {
		return nil, fmt.Errorf("client container cannot be nil")
	}
	if config == nil {
		return nil, fmt.Errorf("service config cannot be nil")
	}
	if clients.CodePipeline == nil {
		return nil, fmt.Errorf("codepipeline: %w", ErrNilClient)
	}
	if clients.SNS == nil {
		return nil, fmt.Errorf("sns: %w", ErrNilClient)
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	pipelineService := NewPipelineService(
		clients.CodePipeline,
		config.PipelineName,
		logger.WithField("service", "pipeline"),
	)

	alertService := NewAlertService(
		clients.SNS,
		config.Alert,
		logger.WithField("service", "alert"),
	)

	return &ServiceContainer{
		PipelineService: pipelineService,
		AlertService:    alertService,
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.PipelineService == nil {
		return fmt.Errorf("pipeline service is nil")
	}
	if sc.AlertService == nil {
		return fmt.Errorf("alert service is nil")
	}

	return nil
}
