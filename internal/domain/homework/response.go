package homework

import "encoding/json"

// StatusResponse is the decoded top-level shape of the homework-statuses
// endpoint. Both fields stay raw so that CheckResponse can tell an absent key
// from a malformed one; the client decodes, the validator judges.
type StatusResponse struct {
	Homeworks   json.RawMessage `json:"homeworks"`
	CurrentDate json.RawMessage `json:"current_date"`
}

// CurrentDateUnix parses the server-reported poll timestamp.
// JSON null unmarshals into a plain int64 without error, so the
// pointer target is what catches it.
func (r *StatusResponse) CurrentDateUnix() (int64, error) {
	var ts *int64
	if err := json.Unmarshal(r.CurrentDate, &ts); err != nil || ts == nil {
		return 0, &TypeMismatchError{Field: "current_date", Want: "an integer"}
	}
	return *ts, nil
}

// CheckResponse validates the decoded payload and extracts the first homework
// record. The second return value reports whether that record carries an
// actionable update; an empty homework list is a valid "nothing new" answer,
// not an error.
//
// Policy: only the first (newest) record is ever inspected or reported. The
// rest of the list is left unparsed, so malformed trailing elements cannot
// fail the cycle.
func CheckResponse(resp *StatusResponse) (Homework, bool, error) {
	if resp == nil || len(resp.Homeworks) == 0 {
		return Homework{}, false, &MissingFieldError{Field: "homeworks"}
	}
	if len(resp.CurrentDate) == 0 {
		return Homework{}, false, &MissingFieldError{Field: "current_date"}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(resp.Homeworks, &records); err != nil {
		return Homework{}, false, &TypeMismatchError{Field: "homeworks", Want: "a list"}
	}
	if records == nil {
		// JSON null unmarshals into a nil slice without error, but it is not a list.
		return Homework{}, false, &TypeMismatchError{Field: "homeworks", Want: "a list"}
	}
	if len(records) == 0 {
		return Homework{}, false, nil
	}

	var first Homework
	if err := json.Unmarshal(records[0], &first); err != nil {
		return Homework{}, false, &TypeMismatchError{Field: "homeworks[0]", Want: "an object"}
	}
	if !first.Status.Known() {
		return Homework{}, false, &UnknownStatusError{Status: first.Status}
	}
	return first, true, nil
}
