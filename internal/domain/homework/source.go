package homework

import "context"

// Source fetches review-status records from the remote homework API.
// The poll loop only ever talks to this interface, never to a concrete
// HTTP client.
type Source interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (*StatusResponse, error)
}
