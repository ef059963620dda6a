package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/asaantaqreeb/taqreeb/internal/catalog"
	"github.com/asaantaqreeb/taqreeb/internal/metrics"
	"github.com/asaantaqreeb/taqreeb/internal/model"
)

const maxRequestBodySize = 64 << 10

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Categories)
}

func (h *handler) searchVendors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c := catalog.Query{
		Text:      q.Get("q"),
		Category:  q.Get("category"),
		Location:  q.Get("location"),
		MinPrice:  q.Get("min_price"),
		MaxPrice:  q.Get("max_price"),
		MinRating: q.Get("min_rating"),
		MinGuests: q.Get("min_guests"),
		MaxGuests: q.Get("max_guests"),
	}.Criteria()

	label := string(c.Category)
	if label == "" {
		label = string(model.CategoryAll)
	}
	metrics.VendorSearches.WithLabelValues(label).Inc()

	vendors := catalog.Listings(h.memo.Filter(c))
	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(vendors),
		"vendors": vendors,
	})
}

func (h *handler) listChats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.chat.Store().Recent(r.Context()))
}

func (h *handler) countChats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int{"count": h.chat.Store().Count(r.Context())})
}

// chatID returns the decoded {chatID} path segment. chi matches escaped
// paths on RawPath, so the parameter may still carry percent escapes.
func chatID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := url.PathUnescape(chi.URLParam(r, "chatID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat id: "+err.Error())
		return "", false
	}
	return id, true
}

func (h *handler) getChat(w http.ResponseWriter, r *http.Request) {
	id, ok := chatID(w, r)
	if !ok {
		return
	}
	c := h.chat.Store().GetByID(r.Context(), id)
	if c == nil {
		writeError(w, http.StatusNotFound, "conversation not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *handler) deleteChat(w http.ResponseWriter, r *http.Request) {
	id, ok := chatID(w, r)
	if !ok {
		return
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.chat.Store().DeleteChat(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) clearChats(w http.ResponseWriter, r *http.Request) {
	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.chat.Store().ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// decodeBody decodes an optional JSON body; an empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *handler) openChat(w http.ResponseWriter, r *http.Request) {
	id, ok := chatID(w, r)
	if !ok {
		return
	}
	var info model.ChatInfo
	if err := decodeBody(w, r, &info); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	c := h.chat.Open(r.Context(), id, info)
	writeJSON(w, http.StatusOK, c)
}

type postMessageRequest struct {
	Text  string         `json:"text"`
	Info  model.ChatInfo `json:"info"`
	Reply bool           `json:"reply"`
}

type postMessageResponse struct {
	Message model.Message  `json:"message"`
	Reply   *model.Message `json:"reply,omitempty"`
}

func (h *handler) postMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := chatID(w, r)
	if !ok {
		return
	}
	var req postMessageRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	msg, reply, err := h.chat.Send(r.Context(), id, req.Text, req.Info, req.Reply)
	if err != nil {
		h.log.Debug().Err(err).Str("chat_id", id).Msg("message rejected")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, postMessageResponse{Message: msg, Reply: reply})
}
