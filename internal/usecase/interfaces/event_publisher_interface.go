package interfaces

import "context"

type IEventPublisher interface {
	Publish(ctx context.Context, subject string, data any) error
}
