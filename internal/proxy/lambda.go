package proxy

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// HandleLambda serves API Gateway proxy events; pass it to lambda.Start.
func (h *Handler) HandleLambda(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := request.Body
	if request.IsBase64Encoded {
		decoded, err := decodeBase64(body)
		if err != nil {
			resp := errorResponse(http.StatusInternalServerError, msgServer)
			return events.APIGatewayProxyResponse{StatusCode: resp.Status, Headers: Headers(), Body: resp.Body}, nil
		}
		body = decoded
	}

	resp := h.Handle(ctx, request.HTTPMethod, body)
	return events.APIGatewayProxyResponse{
		StatusCode: resp.Status,
		Headers:    Headers(),
		Body:       resp.Body,
	}, nil
}
