package chat

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asaantaqreeb/taqreeb/internal/assistant"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, _ := newTestStore(t)
	return NewService(s, fixedClock{t0}, rand.New(rand.NewSource(1)))
}

func TestOpenSeedsWelcomeOnce(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	c := svc.Open(ctx, model.AIChatID, model.AIChatInfo())
	require.Len(t, c.Messages, 1)
	assert.Equal(t, assistant.AIWelcome, c.Messages[0].Text)
	assert.Equal(t, model.SenderAI, c.Messages[0].Sender)
	assert.Equal(t, model.ChatAI, c.Type)

	c = svc.Open(ctx, model.AIChatID, model.AIChatInfo())
	assert.Len(t, c.Messages, 1)
}

func TestOpenVendorThread(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id := model.VendorChatID("Glamour Salon")

	c := svc.Open(ctx, id, model.ChatInfo{Name: "Glamour Salon", Category: "parlor"})
	require.Len(t, c.Messages, 1)
	assert.Equal(t, assistant.VendorWelcome, c.Messages[0].Text)
	assert.Equal(t, model.SenderVendor, c.Messages[0].Sender)
	assert.Equal(t, model.ChatVendor, c.Type)
	assert.Equal(t, "parlor", c.Category)
}

func TestSendWithReply(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	msg, reply, err := svc.Send(ctx, model.AIChatID, "  Need a banquet hall  ", model.AIChatInfo(), true)
	require.NoError(t, err)
	require.NotNil(t, reply)

	assert.Equal(t, "Need a banquet hall", msg.Text)
	assert.Equal(t, model.SenderUser, msg.Sender)
	assert.Equal(t, t0.UnixMilli(), msg.ID)
	assert.Equal(t, msg.ID+1, reply.ID)
	assert.Equal(t, model.SenderAI, reply.Sender)
	assert.Contains(t, reply.Text, "banquet halls")

	c := svc.Store().GetByID(ctx, model.AIChatID)
	require.NotNil(t, c)
	require.Len(t, c.Messages, 2)
	assert.Equal(t, reply.Text, c.LastMessage)
}

func TestSendVendorReply(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id := model.VendorChatID("Royal Banquet Hall")

	_, reply, err := svc.Send(ctx, id, "Is your hall free?", model.ChatInfo{Name: "Royal Banquet Hall"}, true)
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, assistant.VendorReply, reply.Text)
	assert.Equal(t, model.SenderVendor, reply.Sender)

	c := svc.Store().GetByID(ctx, id)
	require.NotNil(t, c)
	assert.Equal(t, model.ChatVendor, c.Type)
}

func TestSendWithoutReply(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	id := model.VendorChatID("Royal Banquet Hall")

	_, reply, err := svc.Send(ctx, id, "first", model.ChatInfo{Name: "Royal Banquet Hall"}, false)
	require.NoError(t, err)
	assert.Nil(t, reply)

	_, _, err = svc.Send(ctx, id, "second", model.ChatInfo{}, false)
	require.NoError(t, err)

	c := svc.Store().GetByID(ctx, id)
	require.NotNil(t, c)
	assert.Len(t, c.Messages, 2)
	assert.Equal(t, "second", c.LastMessage)
}

func TestSendRejectsInvalidText(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _, err := svc.Send(ctx, model.AIChatID, "   ", model.AIChatInfo(), true)
	assert.True(t, errors.Is(err, model.ErrEmptyMessage))

	_, _, err = svc.Send(ctx, model.AIChatID, strings.Repeat("x", 501), model.AIChatInfo(), true)
	assert.ErrorIs(t, err, model.ErrMessageTooLong)

	assert.Nil(t, svc.Store().GetByID(ctx, model.AIChatID))
}
