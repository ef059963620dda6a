// Package chat persists conversations in the local key-value cache.
//
// The whole collection lives under one cache entry and every write is a full
// read-modify-write. The store never returns errors: cache failures are
// logged and reads degrade to an empty collection. Callers that may write
// concurrently must serialize their writes, otherwise updates can be lost.
package chat

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog"

	"github.com/asaantaqreeb/taqreeb/internal/kv"
	"github.com/asaantaqreeb/taqreeb/internal/metrics"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

// StorageKey is the cache entry holding the serialized conversation list.
const StorageKey = "@asaan_taqreeb_chats"

// Store reads and writes the conversation collection.
type Store struct {
	cache kv.Cache
	log   zerolog.Logger
}

// NewStore returns a store over the given cache.
func NewStore(cache kv.Cache, log zerolog.Logger) *Store {
	return &Store{
		cache: cache,
		log:   log.With().Str("component", "chat_store").Logger(),
	}
}

// load decodes the collection. A missing or undecodable entry yields an
// empty collection; only a failed cache read is returned as an error.
func (s *Store) load(ctx context.Context) ([]model.Conversation, error) {
	raw, ok, err := s.cache.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []model.Conversation{}, nil
	}

	var convs []model.Conversation
	if err := json.Unmarshal([]byte(raw), &convs); err != nil {
		s.fail("decode", "", err)
		return []model.Conversation{}, nil
	}
	if convs == nil {
		convs = []model.Conversation{}
	}
	for i := range convs {
		normalize(&convs[i])
	}
	return convs, nil
}

func (s *Store) save(ctx context.Context, convs []model.Conversation) error {
	b, err := json.Marshal(convs)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, StorageKey, string(b))
}

func (s *Store) fail(op, chatID string, err error) {
	metrics.StoreFailures.WithLabelValues(op).Inc()
	ev := s.log.Error().Stack().Err(err).Str("op", op)
	if chatID != "" {
		ev = ev.Str("chat_id", chatID)
	}
	ev.Msg("chat store operation failed")
}

// normalize re-derives the last-message fields from the message list.
func normalize(c *model.Conversation) {
	if c.Messages == nil {
		c.Messages = []model.Message{}
	}
	if n := len(c.Messages); n > 0 {
		last := c.Messages[n-1]
		c.LastMessage = last.Text
		c.LastMessageTime = last.Timestamp
	}
}

// GetAll returns every conversation in storage order. It returns an empty
// slice when the cache is empty, unreadable or holds a corrupt entry.
func (s *Store) GetAll(ctx context.Context) []model.Conversation {
	convs, err := s.load(ctx)
	if err != nil {
		s.fail("get_all", "", err)
		return []model.Conversation{}
	}
	return convs
}

// GetByID returns the conversation with the given id, or nil.
func (s *Store) GetByID(ctx context.Context, id string) *model.Conversation {
	convs, err := s.load(ctx)
	if err != nil {
		s.fail("get_by_id", id, err)
		return nil
	}
	for i := range convs {
		if convs[i].ID == id {
			return &convs[i]
		}
	}
	return nil
}

type convState int

const (
	stateExisting convState = iota
	stateCreated
)

func (st convState) String() string {
	if st == stateCreated {
		return "created"
	}
	return "existing"
}

// getOrCreate returns the index of the conversation with the given id. A new
// conversation is built from info and placed at the front of the list.
func getOrCreate(convs []model.Conversation, id string, info model.ChatInfo) ([]model.Conversation, int, convState) {
	if i := slices.IndexFunc(convs, func(c model.Conversation) bool { return c.ID == id }); i >= 0 {
		return convs, i, stateExisting
	}

	typ := info.Type
	if typ == "" {
		typ = model.ChatVendor
		if id == model.AIChatID {
			typ = model.ChatAI
		}
	}
	name := info.Name
	if name == "" {
		name = id
	}

	c := model.Conversation{
		ID:          id,
		Type:        typ,
		Name:        name,
		Category:    info.Category,
		Location:    info.Location,
		Messages:    []model.Message{},
		UnreadCount: 0,
	}
	return append([]model.Conversation{c}, convs...), 0, stateCreated
}

// AppendMessage adds msg to the conversation id, creating the conversation
// from info when it does not exist yet. info is ignored for existing
// conversations. Failures are logged and leave the cache untouched.
func (s *Store) AppendMessage(ctx context.Context, id string, msg model.Message, info model.ChatInfo) {
	convs, err := s.load(ctx)
	if err != nil {
		s.fail("append_message", id, err)
		return
	}

	convs, i, state := getOrCreate(convs, id, info)
	c := &convs[i]
	c.Messages = append(c.Messages, msg)
	c.LastMessage = msg.Text
	c.LastMessageTime = msg.Timestamp

	if err := s.save(ctx, convs); err != nil {
		s.fail("append_message", id, err)
		return
	}

	metrics.MessagesAppended.WithLabelValues(string(msg.Sender)).Inc()
	if state == stateCreated {
		metrics.ConversationsCreated.Inc()
	}
	s.log.Debug().
		Str("chat_id", id).
		Str("state", state.String()).
		Int("messages", len(c.Messages)).
		Msg("message appended")
}

// DeleteChat removes the conversation id. Deleting an absent id is a no-op.
func (s *Store) DeleteChat(ctx context.Context, id string) {
	convs, err := s.load(ctx)
	if err != nil {
		s.fail("delete_chat", id, err)
		return
	}

	kept := slices.DeleteFunc(convs, func(c model.Conversation) bool { return c.ID == id })
	if err := s.save(ctx, kept); err != nil {
		s.fail("delete_chat", id, err)
	}
}

// ClearAll removes the whole collection.
func (s *Store) ClearAll(ctx context.Context) {
	if err := s.cache.Remove(ctx, StorageKey); err != nil {
		s.fail("clear_all", "", err)
	}
}

// Count returns the number of stored conversations.
func (s *Store) Count(ctx context.Context) int {
	return len(s.GetAll(ctx))
}

// Recent returns all conversations, most recently active first. Ties keep
// storage order.
func (s *Store) Recent(ctx context.Context) []model.Conversation {
	convs := s.GetAll(ctx)
	slices.SortStableFunc(convs, func(a, b model.Conversation) int {
		return b.LastMessageTime.Compare(a.LastMessageTime)
	})
	return convs
}
