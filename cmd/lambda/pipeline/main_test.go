package main

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-hooks/internal/config"
	"delivery-hooks/internal/services"
	"delivery-hooks/pkg/lambda"
	"delivery-hooks/pkg/server"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Log:         config.LogConfig{Level: "info", Format: "json"},
		AWS:         config.AWSConfig{Region: "us-east-1"},
		Pipeline:    config.PipelineConfig{Name: "release-pipeline"},
		Alert: config.AlertConfig{
			TopicARN: config.DefaultTopicARN,
			Subject:  config.DefaultAlertSubject,
			Message:  config.DefaultAlertMessage,
		},
	}
}

func TestHandler(t *testing.T) {
	client := services.NewMockCodePipeline("exec-1")
	manager := lambda.NewContainerManagerWith(
		func() (*config.Config, error) { return testConfig(), nil },
		func(ctx context.Context, cfg *config.Config) (*server.Container, error) {
			logger, _ := test.NewNullLogger()
			return server.NewContainerWithClients(cfg, logger, &services.Clients{
				CodePipeline: client,
				SNS:          services.NewMockSNS("msg-1"),
			})
		},
	)
	handler := newHandler(manager)

	for i := 0; i < 2; i++ {
		resp, err := handler(context.Background(), lambda.Event(`{}`))
		require.NoError(t, err)
		assert.Equal(t, lambda.Response{StatusCode: 200, Body: "Pipeline triggered!"}, resp)
	}

	require.Equal(t, 2, client.Calls())
	assert.Equal(t, "release-pipeline", aws.ToString(client.Inputs[1].Name))
}

func TestHandler_InitError(t *testing.T) {
	loadErr := errors.New("invalid configuration")
	handler := newHandler(lambda.NewContainerManagerWith(
		func() (*config.Config, error) { return nil, loadErr },
		server.NewContainer,
	))

	resp, err := handler(context.Background(), lambda.Event(`{}`))
	assert.ErrorIs(t, err, loadErr)
	assert.Equal(t, lambda.Response{}, resp)
}
