package chat

import (
	"errors"
	"time"
)

var (
	// ErrEmptyMessage is returned by Send for empty or whitespace-only input.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrSessionClosed is returned when sending to a closed session.
	ErrSessionClosed = errors.New("session is closed")
	// ErrSessionNotFound is returned by the Hub for unknown session ids.
	ErrSessionNotFound = errors.New("session not found")
)

// State is where a session sits in its send/reply cycle.
type State string

const (
	StateIdle     State = "idle"
	StateAwaiting State = "awaiting_response"
	StateClosed   State = "closed"
)

// Message is one entry of a conversation.
type Message struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	FromBot   bool      `json:"from_bot"`
	Timestamp time.Time `json:"timestamp"`
}

// Sender returns the display name of the message author.
func (m Message) Sender() string {
	if m.FromBot {
		return "OceanIQ AI"
	}
	return "You"
}

// Greeting opens every conversation.
const Greeting = "Hello! I'm OceanIQ AI, your ocean data assistant. I can help you analyze ARGO float data, find patterns, and answer questions about ocean conditions. How can I assist you today?"

// SampleQuestions are offered as quick-fill chips under the chat header.
var SampleQuestions = []string{
	"Show salinity near the equator",
	"What's the average temperature at 500m depth?",
	"Find temperature anomalies in the Pacific",
	"Compare salinity between Atlantic and Pacific",
}

// CannedResponses are the replies the assistant picks from, regardless of
// what was asked.
var CannedResponses = []string{
	"Based on the latest ARGO data, I found interesting patterns in salinity distribution near the equator. The average salinity is 35.2 PSU with variations between 34.8-35.6 PSU depending on location and season.",
	"The average temperature at 500m depth across all active ARGO floats is 8.9°C, with a standard deviation of ±2.3°C. This varies significantly by ocean basin and latitude.",
	"I've identified several temperature anomalies in the Pacific Ocean. There are currently 3 warm anomalies (+2-3°C above average) in the central Pacific and 2 cold anomalies (-1.5°C) near the Alaskan current.",
	"Comparing Atlantic and Pacific salinity data: Atlantic Ocean shows higher average salinity (35.4 PSU) compared to Pacific (34.7 PSU). This difference is most pronounced in the upper 200m of the water column.",
}
