// Package api exposes the catalog and the conversation store over HTTP.
package api

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/asaantaqreeb/taqreeb/internal/catalog"
	"github.com/asaantaqreeb/taqreeb/internal/chat"
	"github.com/asaantaqreeb/taqreeb/internal/metrics"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

type Deps struct {
	Vendors []model.Vendor
	Chat    *chat.Service
	Log     zerolog.Logger
}

type handler struct {
	memo *catalog.Memo
	chat *chat.Service
	log  zerolog.Logger

	// The conversation store does whole-collection rewrites; concurrent
	// writers would drop each other's updates.
	writeMu sync.Mutex
}

// NewRouter builds the HTTP handler.
func NewRouter(deps Deps) http.Handler {
	h := &handler{
		memo: catalog.NewMemo(deps.Vendors),
		chat: deps.Chat,
		log:  deps.Log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(deps.Log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.listCategories)
		r.Get("/vendors", h.searchVendors)

		r.Get("/chats", h.listChats)
		r.Delete("/chats", h.clearChats)
		r.Get("/chats/count", h.countChats)
		r.Get("/chats/{chatID}", h.getChat)
		r.Delete("/chats/{chatID}", h.deleteChat)
		r.Post("/chats/{chatID}/open", h.openChat)
		r.Post("/chats/{chatID}/messages", h.postMessage)
	})

	return r
}
