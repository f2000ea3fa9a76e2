// Package homework holds the review-status domain: the recognized status set,
// the verdict table and the rendering of chat notifications.
package homework

import "fmt"

// Status is a review status code returned by the homework API.
type Status string

// Recognized review statuses.
const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Known reports whether the status belongs to the recognized set.
func (s Status) Known() bool {
	_, ok := verdicts[s]
	return ok
}

// Homework is a single review-status record from the API.
type Homework struct {
	Name   string `json:"homework_name"`
	Status Status `json:"status"`
}

// verdicts maps each recognized status to its verdict sentence.
// Fixed at startup, read-only for the process lifetime.
var verdicts = map[Status]string{
	StatusApproved:  "Work reviewed: the reviewer liked everything. Hooray!",
	StatusReviewing: "Work has been taken for review by the reviewer.",
	StatusRejected:  "Work reviewed: the reviewer has remarks.",
}

// StatusLine renders the chat notification for the record.
// It fails with MissingFieldError when the record carries no homework name and
// with InvalidStatusError when the status resolves to no verdict.
func (h Homework) StatusLine() (string, error) {
	if h.Name == "" {
		return "", &MissingFieldError{Field: "homework_name"}
	}
	verdict, ok := verdicts[h.Status]
	if !ok || verdict == "" {
		return "", &InvalidStatusError{Status: h.Status}
	}
	return fmt.Sprintf("Changed review status for %q. %s", h.Name, verdict), nil
}
