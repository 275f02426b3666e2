package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"delivery-hooks/internal/config"
)

// Factory builds AWS service clients that share one loaded SDK configuration
type Factory struct {
	awsCfg   aws.Config
	endpoint string
}

// NewFactory loads the AWS SDK configuration (region, credentials chain) once
func NewFactory(ctx context.Context, cfg config.AWSConfig) (*Factory, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	// Static keys are only set for local development; otherwise the default chain applies
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			cfg.SessionToken,
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Factory{
		awsCfg:   awsCfg,
		endpoint: cfg.Endpoint,
	}, nil
}

// Region returns the region the clients are bound to
func (f *Factory) Region() string {
	return f.awsCfg.Region
}

// CodePipeline creates a CodePipeline client
func (f *Factory) CodePipeline() *codepipeline.Client {
	return codepipeline.NewFromConfig(f.awsCfg, func(o *codepipeline.Options) {
		if f.endpoint != "" {
			o.BaseEndpoint = aws.String(f.endpoint)
		}
	})
}

// SNS creates an SNS client
func (f *Factory) SNS() *sns.Client {
	return sns.NewFromConfig(f.awsCfg, func(o *sns.Options) {
		if f.endpoint != "" {
			o.BaseEndpoint = aws.String(f.endpoint)
		}
	})
}
