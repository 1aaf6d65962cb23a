package consumergroup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
)

type HandlerFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// Group runs a sarama consumer group with manual-style acknowledgment: a
// message is marked only after the handler returns nil, so a handler error
// keeps the offset unadvanced and the message is redelivered.
type Group struct {
	log     *slog.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler HandlerFunc
}

func New(
	log *slog.Logger,
	brokerList []string,
	groupID string,
	topics []string,
	handler HandlerFunc,
) (*Group, error) {
	consumerConfig := sarama.NewConfig()
	consumerConfig.Version = sarama.V3_6_0_0
	consumerConfig.Consumer.Return.Errors = true
	consumerConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	consumerConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRange(),
	}

	group, err := sarama.NewConsumerGroup(brokerList, groupID, consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Group{
		log:     log,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

func (g *Group) Run(ctx context.Context) error {
	const op = "brokers.kafka.consumergroup.Run"

	go func() {
		for groupErr := range g.group.Errors() {
			g.log.Error(op, slog.String("error", groupErr.Error()))
		}
	}()

	for {
		// Consume returns on every rebalance; the claim loop is re-entered
		// with the new partition assignment.
		if err := g.group.Consume(ctx, g.topics, &claimHandler{log: g.log, handler: g.handler}); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			g.log.Error(op, slog.String("error", err.Error()))
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (g *Group) Close() error {
	return g.group.Close()
}

type claimHandler struct {
	log     *slog.Logger
	handler HandlerFunc
}

func (h *claimHandler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *claimHandler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *claimHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.handler(session.Context(), msg); err != nil {
			h.log.Error("failed to process message",
				slog.String("topic", msg.Topic),
				slog.Int("partition", int(msg.Partition)),
				slog.Int64("offset", msg.Offset),
				slog.String("error", err.Error()),
			)
			// Abort the claim without marking: the message stays uncommitted
			// and comes back after the session re-forms.
			return err
		}

		session.MarkMessage(msg, "")
	}

	return nil
}
