package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"stockpulse/api"
	"stockpulse/cmd"
	"stockpulse/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

const scheduledEventSource = "aws.events"

type lambdaHandler struct {
	apiHandler *api.ApiHandler
	ginLambda  *ginadapter.GinLambda
}

// Handler accepts both API Gateway proxy requests and EventBridge
// scheduled events; the latter run the digest without going through
// the router.
func (m lambdaHandler) Handler(ctx context.Context, payload json.RawMessage) (any, error) {
	lg := logger.FromContext(ctx)

	event := events.CloudWatchEvent{}
	if err := json.Unmarshal(payload, &event); err == nil && event.Source == scheduledEventSource {
		lg.Infow("scheduled digest triggered", "rule", event.Resources)
		report, err := m.apiHandler.DigestApp.SendDailyDigest(ctx)
		if err != nil {
			return nil, fmt.Errorf("scheduled digest failed: %w", err)
		}
		return report, nil
	}

	req := events.APIGatewayProxyRequest{}
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("unrecognized event: %w", err)
	}
	lg.Infow("api gateway request", "method", req.HTTPMethod, "path", req.Path)

	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	handler := lambdaHandler{
		apiHandler: apiHandler,
		ginLambda:  ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
