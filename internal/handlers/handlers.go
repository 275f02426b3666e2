package handlers

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// invocationFields returns log fields identifying the current Lambda invocation
func invocationFields(ctx context.Context) logrus.Fields {
	fields := logrus.Fields{}

	if lambdacontext.FunctionName != "" {
		fields["function_name"] = lambdacontext.FunctionName
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields["aws_request_id"] = lc.AwsRequestID
		fields["function_arn"] = lc.InvokedFunctionArn
	}

	return fields
}
