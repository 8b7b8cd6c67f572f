package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mepo/stallkeeper/internal/client/kvstore"
	"github.com/mepo/stallkeeper/internal/client/models"
	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/logging"
)

// senderSelf labels outgoing messages in a conversation log.
const senderSelf = "You"

// MessageService is the local message store: one JSON-encoded conversation
// log per counterpart, persisted in the key-value store. Append is a
// read-modify-write of the whole log; the single-threaded screen flow never
// races it.
type MessageService struct {
	db  *sql.DB
	log logging.Logger
}

func NewMessageService(db *sql.DB, log logging.Logger) *MessageService {
	return &MessageService{db: db, log: log}
}

func conversationKey(counterpart string) string {
	return "messages_" + counterpart
}

func (m *MessageService) store() kvstore.Store {
	return kvstore.NewSQLiteStore(m.db)
}

// Load returns the conversation with counterpart in send order, or an empty
// slice when no history exists.
func (m *MessageService) Load(ctx context.Context, counterpart string) ([]models.Message, error) {
	raw, err := m.store().Get(ctx, conversationKey(counterpart))
	if errors.Is(err, common.ErrNotFound) {
		return []models.Message{}, nil
	}
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("corrupt conversation log for %q: %w", counterpart, err)
	}
	return messages, nil
}

// Send appends an outgoing message to the conversation and rewrites the
// persisted log.
func (m *MessageService) Send(ctx context.Context, counterpart, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, fmt.Errorf("%w: message text is empty", common.ErrValidation)
	}

	msg := models.Message{
		ID:        uuid.New().String(),
		Text:      text,
		Sender:    senderSelf,
		Timestamp: time.Now(),
	}
	if err := m.append(ctx, counterpart, msg); err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

func (m *MessageService) append(ctx context.Context, counterpart string, msg models.Message) error {
	messages, err := m.Load(ctx, counterpart)
	if err != nil {
		return err
	}
	messages = append(messages, msg)

	encoded, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	return m.store().Set(ctx, conversationKey(counterpart), string(encoded))
}

// Clear deletes the persisted conversation log.
func (m *MessageService) Clear(ctx context.Context, counterpart string) error {
	return m.store().Remove(ctx, conversationKey(counterpart))
}
