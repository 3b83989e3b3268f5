package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// KafkaSink publishes order events through a sarama synchronous producer.
type KafkaSink struct {
	producer sarama.SyncProducer
	logger   *zap.SugaredLogger
}

func NewKafkaSink(brokerList string, logger *zap.SugaredLogger) (*KafkaSink, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokers := strings.Split(brokerList, ",")

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	logger.Infow("Sarama producer created", "brokers", brokers)
	return &KafkaSink{producer: producer, logger: logger}, nil
}

func (k *KafkaSink) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		k.logger.Errorw("failed to send message", "topic", topic, "error", err)
		return err
	}

	return nil
}

func (k *KafkaSink) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
