package message

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	dom "example.com/provisions-store/internal/domain/message"
)

type mockRepository struct {
	messages map[string]*dom.Message
}

func newMockRepository() *mockRepository {
	return &mockRepository{messages: make(map[string]*dom.Message)}
}

func (m *mockRepository) List(ctx context.Context) ([]*dom.Message, error) {
	var out []*dom.Message
	for _, msg := range m.messages {
		out = append(out, msg)
	}
	return out, nil
}

func (m *mockRepository) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	for _, msg := range m.messages {
		if !msg.Read {
			n++
		}
	}
	return n, nil
}

func (m *mockRepository) Create(ctx context.Context, msg *dom.Message) (*dom.Message, error) {
	msg.ID = uuid.NewString()
	m.messages[msg.ID] = msg
	return msg, nil
}

func (m *mockRepository) MarkRead(ctx context.Context, id string) error {
	msg, ok := m.messages[id]
	if !ok {
		return dom.ErrMessageNotFound
	}
	msg.Read = true
	return nil
}

func (m *mockRepository) MarkAllRead(ctx context.Context) error {
	for _, msg := range m.messages {
		msg.Read = true
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.messages[id]; !ok {
		return dom.ErrMessageNotFound
	}
	delete(m.messages, id)
	return nil
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Create(context.Background(), &dom.Message{
		CustomerName: "Ravi", Body: "   ", Source: dom.SourceWebsite,
	})
	require.ErrorIs(t, err, dom.ErrEmptyMessage)

	_, err = svc.Create(context.Background(), &dom.Message{
		CustomerName: "Ravi", Body: "Is fresh ghee available?", Source: dom.Source("Email"),
	})
	require.ErrorIs(t, err, dom.ErrInvalidSource)
}

func TestCreate_StartsUnread(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &dom.Message{
		CustomerName: "Ravi",
		Body:         "Is fresh ghee available?",
		Source:       dom.SourceWebsite,
		Read:         true,
	})
	require.NoError(t, err)
	require.False(t, created.Read)

	n, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestMarkAllRead(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	for _, body := range []string{"first", "second"} {
		_, err := svc.Create(context.Background(), &dom.Message{
			CustomerName: "Ravi", Body: body, Source: dom.SourceWhatsApp,
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.MarkAllRead(context.Background()))

	n, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}
