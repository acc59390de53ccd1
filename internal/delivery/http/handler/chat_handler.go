package handler

import (
	"net/http"

	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/usecase"
	"sehat-clinic/pkg/response"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

// Chat relays one message to the AI assistant. Availability is checked before the body is read.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if !h.chatUsecase.Available() {
		response.ServiceUnavailable(w, usecase.ErrAssistantUnavailable.Error())
		return
	}

	var req dto.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.chatUsecase.Chat(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAssistantUnavailable:
			response.ServiceUnavailable(w, err.Error())
		case usecase.ErrEmptyMessage:
			response.BadRequest(w, "No message provided")
		case usecase.ErrAssistantTimeout:
			response.Error(w, http.StatusGatewayTimeout, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to get response from AI assistant")
		}
		return
	}

	response.Success(w, http.StatusOK, "Response generated successfully", reply)
}
