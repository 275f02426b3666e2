package main

import (
	"context"

	"delivery-hooks/internal/handlers"
	"delivery-hooks/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func newHandler(manager *lambda.ContainerManager) func(context.Context, lambda.Event) (lambda.Response, error) {
	return func(ctx context.Context, event lambda.Event) (lambda.Response, error) {
		container, err := manager.GetContainer(ctx)
		if err != nil {
			return lambda.Response{}, err
		}

		pipelineHandler := handlers.NewPipelineHandler(container.PipelineService, container.Logger)
		return pipelineHandler.HandleTrigger(ctx, event)
	}
}

func main() {
	awslambda.Start(newHandler(lambda.NewContainerManager()))
}
