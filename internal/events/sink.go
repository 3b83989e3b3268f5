package events

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/skylark-hq/skylark/internal/models"
)

const (
	EventOrderPlaced        = "OrderPlaced"
	EventOrderStatusChanged = "OrderStatusChanged"
	EventOrderDeleted       = "OrderDeleted"
)

// Sink receives serialized order events; the kitchen display and any
// downstream consumers read from whichever sink is configured.
type Sink interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// Envelope is the wire shape of a single order event.
type Envelope struct {
	Type  string        `json:"type"`
	Time  models.Millis `json:"time"`
	Order models.Order  `json:"order"`
}

func Marshal(eventType string, order models.Order, now time.Time) ([]byte, error) {
	return json.Marshal(Envelope{Type: eventType, Time: models.NewMillis(now), Order: order})
}

// JSONSink appends one JSON line per event to a file per topic.
type JSONSink struct {
	basePath string
	files    map[string]*os.File
}

func NewJSONSink(basePath string) *JSONSink {
	return &JSONSink{
		basePath: basePath,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONSink) WriteMessage(topic string, msg []byte) error {
	file, ok := j.files[topic]
	if !ok {
		if err := os.MkdirAll(j.basePath, 0o755); err != nil {
			return fmt.Errorf("failed to create event directory: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(j.basePath, topic+".jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open event file for topic %s: %w", topic, err)
		}
		j.files[topic] = f
		file = f
	}
	if _, err := file.Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

func (j *JSONSink) Close() error {
	var firstErr error
	for _, f := range j.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ConsoleSink prints events to stdout; handy for skylark simulate.
type ConsoleSink struct{}

func (c *ConsoleSink) WriteMessage(topic string, msg []byte) error {
	_, err := fmt.Printf("%s: %s\n", topic, msg)
	return err
}

func (c *ConsoleSink) Close() error {
	return nil
}
