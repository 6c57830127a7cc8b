package notificator

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
)

// Service always logs the failure and then forwards it to infra, if any.
// Forwarding problems are logged, never returned to the caller's flow.
type Service struct {
	infra Notificator
	log   *logger.ZapLogger
}

func NewService(infra Notificator, log *logger.ZapLogger) *Service {
	return &Service{infra: infra, log: log}
}

func (s *Service) Notify(ctx context.Context, err error, details string) error {
	if err == nil {
		return nil
	}

	s.log.Log(logger.LogEntry{
		Level:   "error",
		Message: details,
		Service: "notificator",
		Error:   err,
	})

	if s.infra == nil {
		return nil
	}
	if fwdErr := s.infra.Notify(ctx, err, details); fwdErr != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "forward failed",
			Service: "notificator",
			Error:   fwdErr,
		})
		return fwdErr
	}
	return nil
}
