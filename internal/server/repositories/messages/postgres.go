package messages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tenantline/internal/dbx"
	"github.com/dmitrijs2005/tenantline/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, conversationID, senderID, content string) (*models.Message, error) {
	query := `
		WITH ins AS (
		    INSERT INTO messages (conversation_id, sender_id, content)
		    VALUES ($1, $2, $3)
		    RETURNING id, conversation_id, sender_id, content, created_at
		)
		SELECT ins.id, ins.conversation_id, ins.sender_id, u.username, ins.content, ins.created_at
		FROM ins JOIN users u ON u.id = ins.sender_id
	`
	m := &models.Message{Status: models.MessageStatusDelivered}
	err := r.db.QueryRowContext(ctx, query, conversationID, senderID, content).
		Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderName, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListByConversation(ctx context.Context, conversationID string) ([]*models.Message, error) {
	query := `
		SELECT m.id, m.conversation_id, m.sender_id, u.username, m.content, m.created_at,
		       m.created_at <= rcpt.last_read_at
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		JOIN conversation_members rcpt
		  ON rcpt.conversation_id = m.conversation_id AND rcpt.user_id <> m.sender_id
		WHERE m.conversation_id = $1
		ORDER BY m.created_at, m.id
	`
	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Message
	for rows.Next() {
		m := &models.Message{}
		var read bool
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderName,
			&m.Content, &m.CreatedAt, &read); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.Status = models.MessageStatusDelivered
		if read {
			m.Status = models.MessageStatusRead
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
