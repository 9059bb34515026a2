// internal/services/notification_service.go
package services

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Notifier receives human readable diagnostics about refused or cancelled operations.
type Notifier interface {
	Notify(message string)
}

// NotificationService logs every diagnostic and, when out is set, echoes it there for the operator.
type NotificationService struct {
	logger logrus.FieldLogger
	out    io.Writer

	mu sync.Mutex
}

func NewNotificationService(logger logrus.FieldLogger, out io.Writer) *NotificationService {
	return &NotificationService{
		logger: logger,
		out:    out,
	}
}

func (s *NotificationService) Notify(message string) {
	s.logger.WithField("diagnostic", true).Warn(message)

	if s.out == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.out, message); err != nil {
		s.logger.WithError(err).Error("Failed to write diagnostic")
	}
}
