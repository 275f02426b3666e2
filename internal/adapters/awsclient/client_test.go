package awsclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery-hooks/internal/config"
)

func TestNewFactory_StaticCredentials(t *testing.T) {
	ctx := context.Background()

	factory, err := NewFactory(ctx, config.AWSConfig{
		Region:          "eu-west-1",
		Endpoint:        "http://localhost:4566",
		AccessKeyID:     "test",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", factory.Region())

	creds, err := factory.awsCfg.Credentials.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}

func TestFactory_ClientsUseEndpointOverride(t *testing.T) {
	factory, err := NewFactory(context.Background(), config.AWSConfig{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:4566",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)

	pipelineOpts := factory.CodePipeline().Options()
	require.NotNil(t, pipelineOpts.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *pipelineOpts.BaseEndpoint)
	assert.Equal(t, "us-east-1", pipelineOpts.Region)

	snsOpts := factory.SNS().Options()
	require.NotNil(t, snsOpts.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *snsOpts.BaseEndpoint)
}

func TestFactory_DefaultEndpoint(t *testing.T) {
	factory, err := NewFactory(context.Background(), config.AWSConfig{
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)

	assert.Nil(t, factory.SNS().Options().BaseEndpoint)
	assert.Nil(t, factory.CodePipeline().Options().BaseEndpoint)
}
