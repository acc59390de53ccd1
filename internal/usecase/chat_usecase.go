package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sehat-clinic/internal/delivery/dto"
	"sehat-clinic/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrAssistantUnavailable = errors.New("AI assistant is currently unavailable")
	ErrEmptyMessage         = errors.New("no message provided")
	ErrAssistantTimeout     = errors.New("AI assistant did not respond in time")
)

// AssistantInstruction is sent with every chat message.
const AssistantInstruction = "You are a helpful AI health assistant for Sehat clinic. " +
	"Answer questions about general health, medications, appointments and clinic services clearly and briefly. " +
	"You are not a licensed medical professional and must say so when giving health information. " +
	"For diagnosis or treatment, always recommend that the user consult a doctor at the clinic."

// AssistantClient completes a single message under a system instruction.
type AssistantClient interface {
	Complete(ctx context.Context, instruction, message string) (string, error)
}

type ChatUsecase interface {
	Available() bool
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatUsecase struct {
	log     *logrus.Logger
	client  AssistantClient
	timeout time.Duration
	metrics *metrics.Metrics
}

// NewChatUsecase accepts a nil client, in which case every chat reports ErrAssistantUnavailable.
func NewChatUsecase(log *logrus.Logger, client AssistantClient, timeout time.Duration, m *metrics.Metrics) ChatUsecase {
	return &chatUsecase{
		log:     log,
		client:  client,
		timeout: timeout,
		metrics: m,
	}
}

func (u *chatUsecase) Available() bool {
	return u.client != nil
}

func (u *chatUsecase) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if u.client == nil {
		u.metrics.ObserveChat("unavailable")
		return nil, ErrAssistantUnavailable
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		u.metrics.ObserveChat("bad_request")
		return nil, ErrEmptyMessage
	}

	callCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	text, err := u.client.Complete(callCtx, AssistantInstruction, message)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			u.metrics.ObserveChat("timeout")
			u.log.Warnf("AI assistant timed out after %s", u.timeout)
			return nil, ErrAssistantTimeout
		}
		u.metrics.ObserveChat("error")
		u.log.Errorf("Failed to get response from AI assistant: %+v", err)
		return nil, err
	}

	u.metrics.ObserveChat("ok")
	return &dto.ChatResponse{Text: text}, nil
}
