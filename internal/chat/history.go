// Package chat keeps the in-memory conversation of refine instructions and
// assistant replies for one generated text.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Assistant replies appended after a refine attempt.
const (
	ReplyUpdated     = "指示に基づいて文章を更新しました。上記をご確認ください。"
	replyErrorPrefix = "AI修正エラー: "
)

// ErrorReply formats a failed refine attempt as an assistant message.
func ErrorReply(err error) string {
	return replyErrorPrefix + err.Error()
}

// Message is one entry in the refine conversation.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// History is an append-only, ordered list of messages. It is reset whenever
// a new text is generated. History is not safe for concurrent use.
type History struct {
	messages []Message
	now      func() time.Time
	newID    func() string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Append records a message and returns it.
func (h *History) Append(sender Sender, text string) Message {
	msg := Message{
		ID:        h.newID(),
		Sender:    sender,
		Text:      text,
		Timestamp: h.now(),
	}
	h.messages = append(h.messages, msg)

	return msg
}

// Messages returns a copy of the messages in order.
func (h *History) Messages() []Message {
	return append([]Message(nil), h.messages...)
}

// Last returns the most recent message.
func (h *History) Last() (Message, bool) {
	if len(h.messages) == 0 {
		return Message{}, false
	}

	return h.messages[len(h.messages)-1], true
}

// Len returns the number of messages.
func (h *History) Len() int {
	return len(h.messages)
}

// AwaitingReply reports whether the last message is from the user.
func (h *History) AwaitingReply() bool {
	last, ok := h.Last()
	return ok && last.Sender == SenderUser
}

// Reset clears the history.
func (h *History) Reset() {
	h.messages = nil
}
