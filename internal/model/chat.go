package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderVendor Sender = "vendor"
	SenderAI     Sender = "ai"
)

// ValidSenders are the allowed message senders.
var ValidSenders = map[Sender]bool{
	SenderUser:   true,
	SenderVendor: true,
	SenderAI:     true,
}

// ChatType distinguishes the assistant thread from vendor threads.
type ChatType string

const (
	ChatAI     ChatType = "ai"
	ChatVendor ChatType = "vendor"
)

const (
	// AIChatID is the fixed conversation id of the assistant thread.
	AIChatID = "ai-assistant"
	// AIChatName is the display name of the assistant thread.
	AIChatName = "AI Assistant"

	// MaxMessageLength is the longest text a sender may submit, in characters.
	MaxMessageLength = 500
)

var (
	ErrEmptyMessage   = errors.New("message text is empty")
	ErrMessageTooLong = errors.New("message text exceeds 500 characters")
)

// Message is one turn in a conversation.
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is one chat thread keyed by a stable id.
type Conversation struct {
	ID              string    `json:"id"`
	Type            ChatType  `json:"type"`
	Name            string    `json:"name"`
	Category        string    `json:"category,omitempty"`
	Location        string    `json:"location,omitempty"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	Messages        []Message `json:"messages"`
	UnreadCount     int       `json:"unreadCount"`
}

// ChatInfo is the metadata used to create a conversation on its first message.
type ChatInfo struct {
	Type     ChatType `json:"type"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Location string   `json:"location,omitempty"`
}

// AIChatInfo returns the metadata of the assistant thread.
func AIChatInfo() ChatInfo {
	return ChatInfo{Type: ChatAI, Name: AIChatName}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// VendorChatID derives the conversation id of a vendor thread from the
// vendor's display name: "Royal Banquet Hall" -> "vendor-royal-banquet-hall".
func VendorChatID(name string) string {
	return "vendor-" + whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// NewMessage builds a message on the sending side. The text is trimmed and
// must be non-empty and at most MaxMessageLength characters.
func NewMessage(text string, sender Sender, now time.Time) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{
		ID:        now.UnixMilli(),
		Text:      text,
		Sender:    sender,
		Timestamp: now,
	}, nil
}
