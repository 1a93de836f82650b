package errors

import (
	"sync"
	"time"
)

// TUIHandler stores messages for the status line of a running shell.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	onChange func(msg Message)
	now      func() time.Time
}

var _ ErrorHandler = (*TUIHandler)(nil)

type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

// String returns the status-line prefix for the message type.
func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeSuccess:
		return "ok"
	default:
		return "info"
	}
}

// NewTUIHandler creates a handler that calls onChange for every new message.
func NewTUIHandler(onChange func(msg Message)) *TUIHandler {
	return &TUIHandler{
		messages: make([]Message, 0),
		onChange: onChange,
		now:      time.Now,
	}
}

func (h *TUIHandler) Error(msg string)   { h.addMessage(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.addMessage(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.addMessage(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.addMessage(msg, MessageTypeSuccess) }

func (h *TUIHandler) addMessage(msg string, msgType MessageType) {
	h.mu.Lock()
	message := Message{
		Text:      msg,
		Type:      msgType,
		Timestamp: h.now(),
	}
	h.messages = append(h.messages, message)
	onChange := h.onChange
	h.mu.Unlock()

	if onChange != nil {
		onChange(message)
	}
}

// Latest returns the most recent message, if any.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// Expired reports whether the latest message is older than ttl. An empty
// handler counts as expired.
func (h *TUIHandler) Expired(ttl time.Duration) bool {
	latest, ok := h.Latest()
	if !ok {
		return true
	}
	return h.now().Sub(latest.Timestamp) >= ttl
}

func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = make([]Message, 0)
}

func (h *TUIHandler) All() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}
