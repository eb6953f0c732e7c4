package mailer

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/tradewind/storefront/internal/config"
)

// Module exposes the mail publisher to the fx graph and ties broker teardown
// to application shutdown.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Provide(func(p *AMQPPublisher) Publisher { return p }),
)

type publisherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newPublisher(p publisherParams) (*AMQPPublisher, error) {
	publisher, err := NewAMQPPublisher(p.Config.AMQPURL, p.Config.EmailQueue, p.Logger)
	if err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
