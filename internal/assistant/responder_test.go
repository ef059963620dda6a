package assistant

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asaantaqreeb/taqreeb/internal/model"
)

func TestAIKeywordReplies(t *testing.T) {
	ai := NewAI(rand.New(rand.NewSource(1)))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"banquet", "Looking for a BANQUET", rules[0].reply},
		{"hall", "any wedding hall near me?", rules[0].reply},
		{"food", "what food do you have", rules[1].reply},
		{"photo", "Photography packages", rules[2].reply},
		{"makeup", "bridal makeup please", rules[3].reply},
		{"budget", "my budget is small", rules[4].reply},
		{"thanks", "Thanks a lot", rules[5].reply},
		{"first rule wins", "hall catering price", rules[0].reply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ai.Reply(tt.in))
		})
	}
}

func TestAIFallback(t *testing.T) {
	ai := NewAI(rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		assert.Contains(t, Fallbacks, ai.Reply("hello there"))
	}

	// Same seed, same sequence.
	a := NewAI(rand.New(rand.NewSource(7)))
	b := NewAI(rand.New(rand.NewSource(7)))
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Reply("hmm"), b.Reply("hmm"))
	}
}

func TestVendorReply(t *testing.T) {
	r := For(model.ChatVendor, nil)
	assert.Equal(t, VendorReply, r.Reply("banquet prices?"))
}

func TestWelcome(t *testing.T) {
	assert.Equal(t, AIWelcome, Welcome(model.ChatAI))
	assert.Equal(t, VendorWelcome, Welcome(model.ChatVendor))
	assert.IsType(t, &AI{}, For(model.ChatAI, rand.New(rand.NewSource(1))))
}
