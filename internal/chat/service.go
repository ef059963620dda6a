package chat

import (
	"context"
	"math/rand"
	"time"

	"github.com/asaantaqreeb/taqreeb/internal/assistant"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Service is the sending side of a chat thread: it validates user input,
// seeds welcome messages and produces the canned replies.
type Service struct {
	store  *Store
	clock  Clock
	ai     assistant.Responder
	vendor assistant.Responder
}

// NewService returns a service over store. A nil clock means the system
// clock; a nil rng is seeded from the clock.
func NewService(store *Store, clock Clock, rng *rand.Rand) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	return &Service{
		store:  store,
		clock:  clock,
		ai:     assistant.For(model.ChatAI, rng),
		vendor: assistant.For(model.ChatVendor, rng),
	}
}

// Store returns the underlying conversation store.
func (s *Service) Store() *Store { return s.store }

func chatType(existing *model.Conversation, id string, info model.ChatInfo) model.ChatType {
	switch {
	case existing != nil && existing.Type != "":
		return existing.Type
	case info.Type != "":
		return info.Type
	case id == model.AIChatID:
		return model.ChatAI
	}
	return model.ChatVendor
}

// Open returns the conversation id, writing the welcome message first when
// the thread has no messages yet.
func (s *Service) Open(ctx context.Context, id string, info model.ChatInfo) model.Conversation {
	if c := s.store.GetByID(ctx, id); c != nil && len(c.Messages) > 0 {
		return *c
	}

	typ := chatType(nil, id, info)
	info.Type = typ
	sender := model.SenderVendor
	if typ == model.ChatAI {
		sender = model.SenderAI
	}

	welcome, _ := model.NewMessage(assistant.Welcome(typ), sender, s.clock.Now())
	s.store.AppendMessage(ctx, id, welcome, info)

	if c := s.store.GetByID(ctx, id); c != nil {
		return *c
	}
	// The cache is unavailable; hand back the thread as it would have been stored.
	return model.Conversation{
		ID:              id,
		Type:            typ,
		Name:            info.Name,
		Category:        info.Category,
		Location:        info.Location,
		LastMessage:     welcome.Text,
		LastMessageTime: welcome.Timestamp,
		Messages:        []model.Message{welcome},
	}
}

// Send stores a user message and, when reply is set, the thread's canned
// answer. The text is validated here; invalid input is never stored.
func (s *Service) Send(ctx context.Context, id, text string, info model.ChatInfo, reply bool) (model.Message, *model.Message, error) {
	msg, err := model.NewMessage(text, model.SenderUser, s.clock.Now())
	if err != nil {
		return model.Message{}, nil, err
	}

	existing := s.store.GetByID(ctx, id)
	typ := chatType(existing, id, info)
	if info.Type == "" {
		info.Type = typ
	}
	s.store.AppendMessage(ctx, id, msg, info)

	if !reply {
		return msg, nil, nil
	}

	responder, sender := s.vendor, model.SenderVendor
	if typ == model.ChatAI {
		responder, sender = s.ai, model.SenderAI
	}
	answer := model.Message{
		ID:        msg.ID + 1,
		Text:      responder.Reply(msg.Text),
		Sender:    sender,
		Timestamp: s.clock.Now(),
	}
	s.store.AppendMessage(ctx, id, answer, info)
	return msg, &answer, nil
}
