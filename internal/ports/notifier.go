package ports

import "github.com/mcarrasqub/itimer/internal/domain"

type Notifier interface {
	Show(text string, kind domain.NotificationKind) domain.Notification
}
