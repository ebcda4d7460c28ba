package system

import "go.uber.org/zap"

// presence logs a warning when a required entity goes missing and an info
// line when it comes back, instead of once per frame.
type presence struct {
	what    string
	missing bool
}

func (p *presence) check(logger *zap.Logger, ok bool) bool {
	switch {
	case !ok && !p.missing:
		p.missing = true
		logger.Warn("required entity missing, skipping", zap.String("entity", p.what))
	case ok && p.missing:
		p.missing = false
		logger.Info("required entity present again", zap.String("entity", p.what))
	}
	return ok
}
