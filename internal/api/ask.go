package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/askweb/internal/errors"
	"github.com/diogo/askweb/internal/models"
)

// Ask sends one question to the QA endpoint
func (c *ChatClient) Ask(ctx context.Context, question string) (*models.AskResponse, error) {
	payload, err := json.Marshal(models.AskRequest{Question: question})
	if err != nil {
		return nil, fmt.Errorf("failed to encode question: %w", err)
	}

	req, err := c.newRequest(ctx, models.EndpointAsk, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req, models.EndpointAsk)
	if err != nil {
		return nil, err
	}

	answer, err := extractField(body, PathAnswer, models.EndpointAsk, status)
	if err != nil {
		return nil, err
	}

	return &models.AskResponse{Answer: answer, StatusCode: status}, nil
}

// extractField parses body as JSON and returns the string at path.
// An absent, null, false or empty value yields "" so the caller falls back.
func extractField(body []byte, path, endpoint string, status int) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError(endpoint, status, "response body is not valid JSON")
	}

	value := gjson.GetBytes(body, path)
	switch value.Type {
	case gjson.Null, gjson.False:
		return "", nil
	case gjson.Number:
		if value.Num == 0 {
			return "", nil
		}
	}
	return value.String(), nil
}
