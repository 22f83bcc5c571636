package conversations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/dbx"
	"github.com/dmitrijs2005/tenantline/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindOrCreate is not atomic on its own; call it inside a transaction.
func (r *PostgresRepository) FindOrCreate(ctx context.Context, userID, otherID string) (string, error) {
	query := `
		INSERT INTO conversations (user_low, user_high)
		VALUES (LEAST($1::uuid, $2::uuid), GREATEST($1::uuid, $2::uuid))
		ON CONFLICT (user_low, user_high) DO UPDATE SET user_low = EXCLUDED.user_low
		RETURNING id
	`
	var id string
	if err := r.db.QueryRowContext(ctx, query, userID, otherID).Scan(&id); err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	members := `
		INSERT INTO conversation_members (conversation_id, user_id)
		VALUES ($1, $2), ($1, $3)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, members, id, userID, otherID); err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// summaryQuery selects conversations from the point of view of $1.
const summaryQuery = `
	SELECT c.id, o.user_id, u.username,
	       COALESCE(lm.content, ''), COALESCE(lm.created_at, c.created_at),
	       (SELECT COUNT(*) FROM messages m
	         WHERE m.conversation_id = c.id
	           AND m.sender_id <> me.user_id
	           AND m.created_at > me.last_read_at)
	FROM conversation_members me
	JOIN conversations c ON c.id = me.conversation_id
	JOIN conversation_members o ON o.conversation_id = c.id AND o.user_id <> me.user_id
	JOIN users u ON u.id = o.user_id
	LEFT JOIN LATERAL (
	    SELECT content, created_at FROM messages
	    WHERE conversation_id = c.id
	    ORDER BY created_at DESC LIMIT 1
	) lm ON true
	WHERE me.user_id = $1
`

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Conversation, error) {
	rows, err := r.db.QueryContext(ctx, summaryQuery+` ORDER BY 5 DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetForUser(ctx context.Context, conversationID, userID string) (*models.Conversation, error) {
	row := r.db.QueryRowContext(ctx, summaryQuery+` AND c.id = $2`, userID, conversationID)
	c, err := scanConversation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return c, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversation(s scanner) (*models.Conversation, error) {
	c := &models.Conversation{}
	if err := s.Scan(&c.ID, &c.ParticipantID, &c.ParticipantName,
		&c.LastMessage, &c.LastMessageTime, &c.UnreadCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) IsMember(ctx context.Context, conversationID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM conversation_members
		    WHERE conversation_id = $1 AND user_id = $2
		)
	`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, conversationID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, conversationID, userID string) error {
	query := `
		UPDATE conversation_members
		SET last_read_at = GREATEST(last_read_at, now())
		WHERE conversation_id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, conversationID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
