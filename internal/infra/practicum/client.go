// Package practicum implements the Practicum homework status API client.
// It handles transport and top-level decoding only; judging the shape of
// what came back is the domain layer's job.
package practicum

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MikhailBogachev/homework-bot/internal/domain/homework"
)

// Client queries the homework status endpoint over HTTP.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

// NewClient creates an API client for the given endpoint. The token is sent
// on every request in an OAuth Authorization header.
func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// HomeworkStatuses fetches the homeworks whose status changed at or after
// fromDate (Unix seconds). A non-nil response only means the endpoint
// answered 200 with syntactically valid JSON.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (*homework.StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	params := url.Values{}
	params.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UnexpectedStatusError{Code: resp.StatusCode}
	}

	var statuses homework.StatusResponse
	if err := json.Unmarshal(body, &statuses); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &statuses, nil
}
