// Package telemetry mirrors each processed frame's lane-selection result
// to an MQTT topic and to any connected websocket debug viewers. Both
// sinks are best-effort: a publish failure is logged and never changes
// the steering result the core pipeline already computed.
package telemetry

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Frame is the per-frame payload published to both sinks.
type Frame struct {
	LeftRhoIdx  int   `json:"left_rho_idx"`
	LeftTheta   int   `json:"left_theta"`
	RightRhoIdx int   `json:"right_rho_idx"`
	RightTheta  int   `json:"right_theta"`
	Valid       bool  `json:"valid"`
	Steering    int32 `json:"steering"`
}

// Publisher wraps an MQTT client configured to publish steering frames on
// a single topic at QoS 0, fire-and-forget, matching the non-blocking
// nature of a streaming control signal.
type Publisher struct {
	client mqtt.Client
	topic  string
}

// NewPublisher connects to brokerURL and returns a Publisher that emits
// frames on topic. The connection is established eagerly; callers that
// can't tolerate a blocking connect should run this in a goroutine.
func NewPublisher(brokerURL, topic, clientID string) (*Publisher, error) {
	opts := mqtt.NewClientOptions().AddBroker(brokerURL).SetClientID(clientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Publisher{client: client, topic: topic}, nil
}

// Publish sends frame as JSON on the publisher's topic. Errors are logged
// and swallowed; telemetry never aborts the pipeline.
func (p *Publisher) Publish(frame Frame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		log.Printf("lanedetect: telemetry marshal failed: %v", err)
		return
	}
	token := p.client.Publish(p.topic, 0, false, payload)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			log.Printf("lanedetect: telemetry publish failed: %v", token.Error())
		}
	}()
}

// Close disconnects the underlying MQTT client, waiting up to 250ms for
// in-flight publishes to drain.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}

// DefaultTopic builds the default publish topic for a deployment name.
func DefaultTopic(deployment string) string {
	return fmt.Sprintf("lanedetect/%s/steering", deployment)
}
