package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"delivery-hooks/internal/adapters/awsclient"
	"delivery-hooks/internal/config"
	"delivery-hooks/internal/logging"
	"delivery-hooks/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *logrus.Logger
	PipelineService services.PipelineService
	AlertService    services.AlertService
}

// NewContainer creates a new dependency injection container backed by real AWS clients
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	factory, err := awsclient.NewFactory(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client factory: %w", err)
	}

	clients := &services.Clients{
		CodePipeline: factory.CodePipeline(),
		SNS:          factory.SNS(),
	}

	sc := config.GetServerlessConfig()
	logger.WithFields(logrus.Fields{
		"function_name":   sc.FunctionName,
		"region":          factory.Region(),
		"custom_endpoint": cfg.AWS.Endpoint != "",
		"deployment_mode": config.GetDeploymentMode(),
	}).Debug("AWS clients initialized")

	return NewContainerWithClients(cfg, logger, clients)
}

// NewContainerWithClients creates a container around the given AWS clients
func NewContainerWithClients(cfg *config.Config, logger *logrus.Logger, clients *services.Clients) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	serviceConfig := &services.ServiceConfig{
		PipelineName: cfg.Pipeline.Name,
		Alert: services.AlertConfig{
			TopicARN: cfg.Alert.TopicARN,
			Subject:  cfg.Alert.Subject,
			Message:  cfg.Alert.Message,
		},
		Logger: logger,
	}

	serviceContainer, err := services.NewServiceContainer(clients, serviceConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create services: %w", err)
	}

	if err := serviceContainer.Validate(); err != nil {
		return nil, fmt.Errorf("service validation failed: %w", err)
	}

	return &Container{
		Config:          cfg,
		Logger:          logger,
		PipelineService: serviceContainer.PipelineService,
		AlertService:    serviceContainer.AlertService,
	}, nil
}
