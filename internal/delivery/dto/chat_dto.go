package dto

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Text string `json:"text"`
}
