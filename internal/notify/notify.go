package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ResetNotifier delivers password reset tokens to their owners.
type ResetNotifier interface {
	SendReset(ctx context.Context, email, token string) error
}

// LogNotifier writes reset tokens to the debug log. It stands in for a mail
// transport in development; production logs run above debug level.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendReset(ctx context.Context, email, token string) error {
	logrus.WithFields(logrus.Fields{
		"email": email,
		"token": token,
	}).Debug("Password reset token issued")
	return nil
}
