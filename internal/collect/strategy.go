package collect

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// Strategy is one candidate query for a piece of host data. Probe returns
// the formatted result or an error; an empty result counts as a miss.
type Strategy struct {
	Name  string
	Probe func(ctx context.Context) (string, error)
}

// FirstOf evaluates strategies in order and returns the first non-empty
// success. Exhaustion yields fallback. Probe failures are logged at debug
// level only; they are expected unavailability, not errors.
func FirstOf(ctx context.Context, fallback string, strategies ...Strategy) string {
	for _, s := range strategies {
		out, err := s.Probe(ctx)
		if err != nil {
			logrus.WithField("strategy", s.Name).WithError(err).Debug("probe failed")
			continue
		}
		if strings.TrimSpace(out) == "" {
			continue
		}
		return out
	}
	return fallback
}
