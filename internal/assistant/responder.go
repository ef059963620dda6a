// Package assistant produces the canned replies and welcome texts of the
// assistant and vendor threads. Nothing here calls a real model.
package assistant

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/asaantaqreeb/taqreeb/internal/model"
)

const (
	AIWelcome     = "👋 Hi! I'm your Asaan Taqreeb AI assistant. I can help you plan your perfect event! Ask me about vendors, packages, pricing, or any questions you have."
	VendorWelcome = "Hello! Thanks for your interest. How can I help you with your event?"
	VendorReply   = "Thank you for your message. I'll get back to you shortly!"
)

// Responder answers a user message.
type Responder interface {
	Reply(text string) string
}

type rule struct {
	keywords []string
	reply    string
}

// rules are checked in order; the first rule with a matching keyword wins.
var rules = []rule{
	{[]string{"banquet", "hall"}, "I can help you find banquet halls! Our venues range from 200 to 1000+ guest capacity. What's your expected guest count?"},
	{[]string{"catering", "food"}, "We have excellent catering services! Packages typically start from PKR 1,500 per person. Would you like to see options based on your guest count?"},
	{[]string{"photo", "photography"}, "Our photography services offer various packages including basic coverage, full-day shoots, and premium packages with videography. What type of coverage are you looking for?"},
	{[]string{"parlor", "salon", "makeup"}, "We have professional parlor services with bridal packages, party makeup, and styling. Would you like to see our featured salons?"},
	{[]string{"price", "cost", "budget"}, "I can help you find services within your budget! Which category are you interested in? (Banquet, Catering, Photography, or Parlor)"},
	{[]string{"thank"}, "You're welcome! Feel free to ask if you need any more help planning your event! 😊"},
}

// Fallbacks are the general replies used when no keyword matches.
var Fallbacks = []string{
	"I can help you find the perfect vendors for your event! What type of service are you looking for?",
	"Based on your requirements, I recommend checking out our featured vendors in that category.",
	"Would you like me to suggest some packages that fit your budget?",
	"I can help you compare different vendors. What's your approximate guest count?",
	"Our banquet halls are very popular! Would you like to see options with different capacities?",
	"For catering services, prices typically range based on the number of guests. How many people are you expecting?",
}

// AI is the keyword-driven assistant.
type AI struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAI returns an assistant drawing fallbacks from rng.
func NewAI(rng *rand.Rand) *AI {
	return &AI{rng: rng}
}

func (a *AI) Reply(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return Fallbacks[a.rng.Intn(len(Fallbacks))]
}

// Vendor always sends the same acknowledgement.
type Vendor struct{}

func (Vendor) Reply(string) string { return VendorReply }

// For returns the responder of a chat type.
func For(t model.ChatType, rng *rand.Rand) Responder {
	if t == model.ChatAI {
		return NewAI(rng)
	}
	return Vendor{}
}

// Welcome returns the first message shown in a new thread.
func Welcome(t model.ChatType) string {
	if t == model.ChatAI {
		return AIWelcome
	}
	return VendorWelcome
}
