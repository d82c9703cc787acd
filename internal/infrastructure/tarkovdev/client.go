// Package tarkovdev is the market data provider backed by the tarkov.dev
// GraphQL API.
package tarkovdev

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"tarkov_trader/internal/domain"
	"tarkov_trader/internal/domain/entity"
	"tarkov_trader/pkg/contextx"
	"tarkov_trader/pkg/errcodes"
	"tarkov_trader/pkg/lox"
)

const DefaultEndpoint = "https://api.tarkov.dev/graphql"

const loadFailedMessage = "Failed to load Tarkov market data"

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// FetchItems loads the whole item catalog in one request. Transport failures
// and GraphQL errors are returned as domain errors; nothing is retried.
func (c *Client) FetchItems(ctx context.Context) ([]entity.Item, error) {
	logger(ctx).Info("fetching items from tarkov.dev", slog.String("endpoint", c.endpoint))

	body, err := json.Marshal(graphQLRequest{Query: itemsQuery})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ProviderUnavailable, loadFailedMessage)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil, domain.WrapError(
			fmt.Errorf("HTTP error! status: %d", resp.StatusCode),
			errcodes.ProviderUnavailable,
			loadFailedMessage,
		)
	}

	var payload graphQLResponse

	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.WrapError(fmt.Errorf("json.Decode: %w", err), errcodes.ProviderError, loadFailedMessage)
	}

	if len(payload.Errors) > 0 {
		return nil, domain.WrapError(
			errors.New(payload.Errors[0].Message),
			errcodes.ProviderError,
			loadFailedMessage,
		)
	}

	if payload.Data == nil {
		return nil, domain.WrapError(
			errors.New("response has no data"),
			errcodes.ProviderError,
			loadFailedMessage,
		)
	}

	items := lox.Map(payload.Data.Items, itemSchema.toDomain)

	logger(ctx).Info("fetched items from tarkov.dev", slog.Int("count", len(items)))

	return items, nil
}
