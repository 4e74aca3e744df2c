package omnivore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// subscriptionsQuery is the fixed GraphQL document sent on every run.
// It has no variables; the field set matches the Subscription model.
const subscriptionsQuery = `
query GetSubscriptions {
    subscriptions {
        ... on SubscriptionsSuccess {
            subscriptions {
                name
                url
                folder
                createdAt
                lastFetchedAt
                description
                newsletterEmail
                refreshedAt
                count
                icon
                isPrivate
                autoAddToLibrary
                fetchContent
                failedAt
            }
        }
    }
}
`

// bodyExcerptLimit caps how much of an error response body is carried
// into diagnostics.
const bodyExcerptLimit = 500

// Client talks to the Omnivore GraphQL API. It performs exactly one
// request per run and never retries.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the given endpoint URL. The token is
// sent verbatim as the Authorization header: Omnivore rejects a Bearer
// prefix. No request timeout is set; the single call runs until the
// transport gives up or the context is canceled.
func NewClient(endpoint, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLResponse struct {
	Data struct {
		Subscriptions subscriptionsResult `json:"subscriptions"`
	} `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

type subscriptionsResult struct {
	ErrorCodes    []string           `json:"errorCodes"`
	Subscriptions []subscriptionItem `json:"subscriptions"`
}

// subscriptionItem mirrors the wire shape: timestamps arrive as strings
// and must not leak past the mapping step.
type subscriptionItem struct {
	Name             string `json:"name"`
	URL              string `json:"url"`
	Folder           string `json:"folder"`
	CreatedAt        string `json:"createdAt"`
	LastFetchedAt    string `json:"lastFetchedAt"`
	Description      string `json:"description"`
	NewsletterEmail  string `json:"newsletterEmail"`
	RefreshedAt      string `json:"refreshedAt"`
	Count            *int64 `json:"count"`
	Icon             string `json:"icon"`
	IsPrivate        *bool  `json:"isPrivate"`
	AutoAddToLibrary *bool  `json:"autoAddToLibrary"`
	FetchContent     *bool  `json:"fetchContent"`
	FailedAt         string `json:"failedAt"`
}

// GetSubscriptions fetches the account's subscription list.
func (c *Client) GetSubscriptions(ctx context.Context) ([]Subscription, error) {
	payload, err := json.Marshal(graphQLRequest{Query: subscriptionsQuery})
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("fetching subscriptions", "endpoint", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	c.logger.Debug("response received", "status", resp.StatusCode, "bytes", len(raw))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: excerpt(raw)}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Body:       excerpt(raw),
			Err:        fmt.Errorf("decoding response: %w", err),
		}
	}

	if len(envelope.Errors) > 0 && string(envelope.Errors) != "null" {
		return nil, &GraphQLError{Errors: envelope.Errors}
	}

	result := envelope.Data.Subscriptions
	if len(result.ErrorCodes) > 0 {
		return nil, &DomainError{Codes: result.ErrorCodes}
	}

	subs := make([]Subscription, 0, len(result.Subscriptions))
	for _, item := range result.Subscriptions {
		sub, err := item.toSubscription()
		if err != nil {
			return nil, fmt.Errorf("mapping subscription %q: %w", item.Name, err)
		}
		subs = append(subs, sub)
	}

	c.logger.Debug("subscriptions mapped", "count", len(subs))
	return subs, nil
}

func (it subscriptionItem) toSubscription() (Subscription, error) {
	sub := Subscription{
		Name:             it.Name,
		URL:              it.URL,
		Folder:           it.Folder,
		Description:      it.Description,
		NewsletterEmail:  it.NewsletterEmail,
		Icon:             it.Icon,
		Count:            it.Count,
		IsPrivate:        it.IsPrivate,
		AutoAddToLibrary: it.AutoAddToLibrary,
		FetchContent:     it.FetchContent,
	}

	fields := []struct {
		name string
		raw  string
		dst  **time.Time
	}{
		{"createdAt", it.CreatedAt, &sub.CreatedAt},
		{"lastFetchedAt", it.LastFetchedAt, &sub.LastFetchedAt},
		{"refreshedAt", it.RefreshedAt, &sub.RefreshedAt},
		{"failedAt", it.FailedAt, &sub.FailedAt},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		t, err := parseTimestamp(f.raw)
		if err != nil {
			return Subscription{}, fmt.Errorf("parsing %s: %w", f.name, err)
		}
		*f.dst = &t
	}

	return sub, nil
}

// parseTimestamp parses an ISO-8601 timestamp; a trailing Z reads as
// UTC, and the result is normalized to UTC.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func excerpt(raw []byte) string {
	if len(raw) <= bodyExcerptLimit {
		return string(raw)
	}
	return string(raw[:bodyExcerptLimit]) + "..."
}
