package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

// readFlagPrefix namespaces per-message read markers inside the user's
// flag set.
const readFlagPrefix = "read:"

type MailItem struct {
	domain.Message
	Read bool
}

// MailService projects the host mailbox into the overlay's mail view. Read
// state lives in the per-user flag store, never on the host message.
type MailService struct {
	mail  ports.MailStore
	flags ports.FlagStore
}

func NewMailService(mail ports.MailStore, flags ports.FlagStore) *MailService {
	return &MailService{mail: mail, flags: flags}
}

// Inbox returns the user's messages newest first, each annotated with its
// read state. A flag read failure leaves the message unread rather than
// dropping it.
func (s *MailService) Inbox(ctx context.Context, userID string) ([]MailItem, error) {
	messages, err := s.mail.MessagesFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	items := make([]MailItem, 0, len(messages))
	for _, message := range messages {
		read, err := s.flags.UserFlag(ctx, userID, readFlagPrefix+message.ID)
		if err != nil {
			read = ""
		}
		items = append(items, MailItem{Message: message, Read: read == "true"})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SentAt.After(items[j].SentAt)
	})

	return items, nil
}

func (s *MailService) UnreadCount(ctx context.Context, userID string) (int, error) {
	items, err := s.Inbox(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, item := range items {
		if !item.Read {
			count++
		}
	}
	return count, nil
}

func (s *MailService) MarkRead(ctx context.Context, userID, messageID string) error {
	if _, err := s.mail.MessageByID(ctx, messageID); err != nil {
		return fmt.Errorf("resolve message: %w", err)
	}

	if err := s.flags.SetUserFlag(ctx, userID, readFlagPrefix+messageID, "true"); err != nil {
		return fmt.Errorf("persist read flag: %w", err)
	}
	return nil
}
