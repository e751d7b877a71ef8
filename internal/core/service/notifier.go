package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/procurex/committee-service/internal/api/metrics"
	"github.com/procurex/committee-service/internal/core/domain"
	"github.com/procurex/committee-service/internal/core/ports"
)

const dateLayout = "2006-01-02"

// Notifier emails every member of a newly created committee. The mailer is
// injected once at construction and shared across all dispatches.
type Notifier struct {
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewNotifier(mailer ports.Mailer, logger zerolog.Logger) *Notifier {
	return &Notifier{mailer: mailer, logger: logger}
}

// Notify fans out one message per member with an email address, waits for
// all sends and records each outcome. A failed send never blocks the other
// recipients and never propagates to the caller: the committee is already
// committed by the time Notify runs.
func (n *Notifier) Notify(ctx context.Context, committee *domain.Committee) {
	var wg sync.WaitGroup
	for _, member := range committee.Members {
		if member.Email == "" {
			continue
		}

		wg.Add(1)
		go func(m domain.MemberSnapshot) {
			defer wg.Done()

			subject := fmt.Sprintf("You've been added to committee: %s", committee.Name)
			if err := n.mailer.Send(ctx, m.Email, subject, n.body(committee)); err != nil {
				metrics.NotificationsFailedTotal.Inc()
				n.logger.Error().Err(err).
					Str("committee_id", committee.ID).
					Str("email", m.Email).
					Msg("failed to send committee notification")
				return
			}
			metrics.NotificationsSentTotal.Inc()
		}(member)
	}
	wg.Wait()

	n.logger.Info().Str("committee_id", committee.ID).Int("members", len(committee.Members)).Msg("notifications dispatched")
}

func (n *Notifier) body(committee *domain.Committee) string {
	var b strings.Builder
	b.WriteString("<h1>Committee Assignment</h1>")
	fmt.Fprintf(&b, "<p>You have been added to the committee <strong>%s</strong>.</p>", committee.Name)
	fmt.Fprintf(&b, "<p>Purpose: %s</p>", committee.Purpose)
	fmt.Fprintf(&b, "<p>Formation Date: %s</p>", committee.FormationDate.Format(dateLayout))
	if committee.FormationLetter != nil {
		b.WriteString("<p>A formation letter is attached to this committee.</p>")
	}
	if committee.Creator != nil {
		fmt.Fprintf(&b, "<p>Created by: %s</p>", committee.Creator.Name)
	}
	return b.String()
}
