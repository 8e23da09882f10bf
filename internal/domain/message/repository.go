package message

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Message, error)
	UnreadCount(ctx context.Context) (int64, error)
	Create(ctx context.Context, m *Message) (*Message, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}
