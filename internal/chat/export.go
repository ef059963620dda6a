package chat

import (
	"context"
	"time"

	"github.com/asaantaqreeb/taqreeb/internal/metrics"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

// Export is a portable dump of the conversation collection.
type Export struct {
	ExportedAt    time.Time            `json:"exported_at"`
	Conversations []model.Conversation `json:"conversations"`
}

// ExportAll returns every conversation in storage order.
func (s *Store) ExportAll(ctx context.Context, now time.Time) Export {
	return Export{ExportedAt: now, Conversations: s.GetAll(ctx)}
}

// Import replays the messages of convs through AppendMessage. Messages whose
// id already exists in the target conversation are skipped. Conversations
// are replayed back to front so that new ones keep their exported order.
// Conversations without messages are created empty. It returns the number of
// messages written.
func (s *Store) Import(ctx context.Context, convs []model.Conversation) int {
	imported := 0
	for i := len(convs) - 1; i >= 0; i-- {
		c := convs[i]
		if c.ID == "" {
			continue
		}
		info := model.ChatInfo{Type: c.Type, Name: c.Name, Category: c.Category, Location: c.Location}

		seen := map[int64]bool{}
		existing := s.GetByID(ctx, c.ID)
		if existing != nil {
			for _, m := range existing.Messages {
				seen[m.ID] = true
			}
		} else if len(c.Messages) == 0 {
			s.createEmpty(ctx, c.ID, info)
			continue
		}

		for _, m := range c.Messages {
			if seen[m.ID] {
				continue
			}
			s.AppendMessage(ctx, c.ID, m, info)
			seen[m.ID] = true
			imported++
		}
	}
	return imported
}

func (s *Store) createEmpty(ctx context.Context, id string, info model.ChatInfo) {
	convs, err := s.load(ctx)
	if err != nil {
		s.fail("import", id, err)
		return
	}
	convs, _, state := getOrCreate(convs, id, info)
	if state != stateCreated {
		return
	}
	if err := s.save(ctx, convs); err != nil {
		s.fail("import", id, err)
		return
	}
	metrics.ConversationsCreated.Inc()
}
