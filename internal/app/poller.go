// internal/app/poller.go
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/MikhailBogachev/homework-bot/internal/domain/homework"
	sentryutil "github.com/MikhailBogachev/homework-bot/internal/infra/sentry"
)

// WindowPolicy controls what happens to the poll window after a cycle.
type WindowPolicy string

const (
	// WindowAdvance moves from_date up to the server-reported current_date
	// once a cycle fully succeeds.
	WindowAdvance WindowPolicy = "advance"

	// WindowFixed keeps from_date where it started. Every poll re-reads
	// the same window, which matches servers that only ever return the
	// latest status.
	WindowFixed WindowPolicy = "fixed"
)

// ParseWindowPolicy maps the WINDOW_POLICY setting onto a WindowPolicy.
func ParseWindowPolicy(s string) (WindowPolicy, error) {
	switch WindowPolicy(s) {
	case WindowAdvance, WindowFixed:
		return WindowPolicy(s), nil
	}
	return "", fmt.Errorf("unknown window policy %q, want \"advance\" or \"fixed\"", s)
}

// Poller runs the poll-check-notify sequence against the homework API.
// It owns the poll window and the last-error marker; nothing else touches
// them, so no locking is involved.
type Poller struct {
	source    homework.Source
	notifier  Notifier
	policy    WindowPolicy
	fromDate  int64
	lastError string
	logger    *logrus.Entry
}

func NewPoller(source homework.Source, notifier Notifier, policy WindowPolicy, fromDate int64, logger *logrus.Entry) *Poller {
	return &Poller{
		source:   source,
		notifier: notifier,
		policy:   policy,
		fromDate: fromDate,
		logger:   logger,
	}
}

// RunCycle performs one fetch-check-notify pass. Every failure is reported
// and swallowed here; the next tick always gets its chance.
func (p *Poller) RunCycle(ctx context.Context) {
	log := p.logger.WithField("cycle_id", uuid.NewString())
	log.WithField("from_date", p.fromDate).Debug("Poll cycle started")

	resp, err := p.source.HomeworkStatuses(ctx, p.fromDate)
	if err != nil {
		p.report(log, err)
		return
	}

	first, actionable, err := homework.CheckResponse(resp)
	if err != nil {
		p.report(log, err)
		return
	}

	if !actionable {
		log.Debug("No homework updates in the poll window")
		p.advanceWindow(log, resp)
		return
	}

	line, err := first.StatusLine()
	if err != nil {
		p.report(log, err)
		return
	}

	if err := p.notifier.Send(line); err != nil {
		// The window stays put so the undelivered update is picked up again.
		p.report(log, err)
		return
	}

	log.WithFields(logrus.Fields{
		"homework": first.Name,
		"status":   first.Status,
	}).Info("Review status change delivered")
	p.advanceWindow(log, resp)
}

// report logs err once per distinct text. A streak of identical failures
// produces one log line and one Sentry event; reporting resumes as soon
// as the text changes. The marker survives successful cycles.
func (p *Poller) report(log *logrus.Entry, err error) {
	if err.Error() == p.lastError {
		log.WithField("error", err.Error()).Debug("Suppressed repeat of previous error")
		return
	}

	p.lastError = err.Error()
	log.WithError(err).Error("Poll cycle failed")
	sentryutil.CaptureError(err, map[string]string{"component": "poller"})
}

// advanceWindow moves the poll window to the server's current_date under
// the advance policy. It only runs after a cycle succeeded end to end;
// an unusable current_date keeps the window where it was.
func (p *Poller) advanceWindow(log *logrus.Entry, resp *homework.StatusResponse) {
	if p.policy != WindowAdvance {
		return
	}

	ts, err := resp.CurrentDateUnix()
	if err != nil || ts <= 0 {
		log.WithField("current_date", string(resp.CurrentDate)).Warn("Server current_date unusable, keeping poll window")
		return
	}

	p.fromDate = ts
}
