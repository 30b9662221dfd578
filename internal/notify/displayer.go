package notify

import "go.uber.org/zap"

// Displayer receives the display side effects of the registry.
// Show is called once a notification is added, Hide once it is removed.
type Displayer interface {
	Show(n Notification)
	Hide(n Notification, reason RemovalReason)
}

type nopDisplayer struct{}

func (nopDisplayer) Show(Notification)                {}
func (nopDisplayer) Hide(Notification, RemovalReason) {}

// LogDisplayer renders toasts as structured log lines.
type LogDisplayer struct {
	logger *zap.Logger
}

func NewLogDisplayer(logger *zap.Logger) *LogDisplayer {
	return &LogDisplayer{logger: logger.Named("toast")}
}

func (d *LogDisplayer) Show(n Notification) {
	d.logger.Info(n.Message,
		zap.String("notification_id", n.ID),
		zap.String("type", string(n.Type)),
		zap.Duration("duration", n.Duration),
	)
}

func (d *LogDisplayer) Hide(n Notification, reason RemovalReason) {
	d.logger.Debug("Notification removed",
		zap.String("notification_id", n.ID),
		zap.String("reason", string(reason)),
	)
}
