package chat

import (
	"context"
	"net/http"

	"github.com/mytheresa/supplier-catalog-chat/app/api"
)

type Responder interface {
	Respond(ctx context.Context, text string) (string, error)
}

type ChatHandler struct {
	responder Responder
}

func NewChatHandler(r Responder) *ChatHandler {
	return &ChatHandler{responder: r}
}

type Response struct {
	Response string `json:"response"`
}

func (h *ChatHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	var input api.QueryRequest
	if !api.DecodeJSON(w, r, &input) {
		return
	}

	reply, err := h.responder.Respond(r.Context(), input.Query)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	api.OKResponse(w, r, Response{Response: reply})
}
