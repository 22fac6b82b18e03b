package events

import (
	"log/slog"

	"travel-backoffice/internal/pkg/config"
	"travel-backoffice/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Transport struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
	Logger     watermill.LoggerAdapter
}

func NewLogger(logger *slog.Logger) watermill.LoggerAdapter {
	return watermill.NewSlogLogger(logger)
}

// NewTransport picks the in-process channel or redis streams per cfg.Driver.
// The redis driver needs a non-nil client.
func NewTransport(cfg config.EventsConfig, client *redis.Client, logger watermill.LoggerAdapter) (*Transport, error) {
	switch cfg.Driver {
	case config.EventsDriverMemory:
		ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, logger)
		return &Transport{Publisher: ch, Subscriber: ch, Logger: logger}, nil
	case config.EventsDriverRedis:
		if client == nil {
			return nil, errs.New("redis events driver without a redis client")
		}
		pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{Client: client}, logger)
		if err != nil {
			return nil, errs.Wrap(err, "creating redis stream publisher")
		}
		sub, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: cfg.ConsumerGroup,
		}, logger)
		if err != nil {
			return nil, errs.Wrap(err, "creating redis stream subscriber")
		}
		return &Transport{Publisher: pub, Subscriber: sub, Logger: logger}, nil
	default:
		return nil, errs.Newf("unsupported events driver %q", cfg.Driver)
	}
}

func (t *Transport) Close() error {
	err := t.Publisher.Close()
	if any(t.Subscriber) != any(t.Publisher) {
		if subErr := t.Subscriber.Close(); subErr != nil && err == nil {
			err = subErr
		}
	}
	return err
}
