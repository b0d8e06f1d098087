package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

const chatColumns = `id, session_id, username, question, answer, created_unix_ms`

type sqliteChatRepository struct {
	db          *sql.DB
	maxMessages int
}

// OpenChatSQLite chat tarixi uchun alohida bazani ochadi
func OpenChatSQLite(dbPath string) (*sql.DB, error) {
	db, err := openSQLiteFile(dbPath)
	if err != nil {
		return nil, fmt.Errorf("chat db: %w", err)
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS chat_log (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	username TEXT NOT NULL DEFAULT '',
	question TEXT NOT NULL DEFAULT '',
	answer TEXT NOT NULL DEFAULT '',
	created_unix_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_log_session ON chat_log (session_id, created_unix_ms);
`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create chat schema: %w", err)
	}
	return db, nil
}

// NewSQLiteChatRepository OpenChatSQLite bilan ochilgan bazada chat tarixi
func NewSQLiteChatRepository(db *sql.DB, maxMessages int) repository.ChatRepository {
	return &sqliteChatRepository{db: db, maxMessages: maxMessages}
}

// SaveMessage xabarni yozadi va sessiyada maxMessages dan ortig'ini kesadi
func (r *sqliteChatRepository) SaveMessage(ctx context.Context, message entity.Message) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO chat_log (`+chatColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
			message.ID, message.SessionID, message.Username, message.Text, message.Response,
			message.Timestamp.UnixMilli(),
		); err != nil {
			return fmt.Errorf("insert chat message: %w", err)
		}
		if r.maxMessages <= 0 {
			return nil
		}
		_, err := tx.ExecContext(ctx, `
DELETE FROM chat_log WHERE session_id = ? AND id NOT IN (
	SELECT id FROM chat_log WHERE session_id = ? ORDER BY created_unix_ms DESC, rowid DESC LIMIT ?
)`, message.SessionID, message.SessionID, r.maxMessages)
		if err != nil {
			return fmt.Errorf("trim chat history: %w", err)
		}
		return nil
	})
}

// GetHistory so'nggi limit ta xabar, eski -> yangi
func (r *sqliteChatRepository) GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.Message, error) {
	if limit <= 0 {
		limit = -1
	}
	return r.scan(ctx, `
SELECT * FROM (
	SELECT `+chatColumns+`, rowid AS seq FROM chat_log WHERE session_id = ?
	ORDER BY created_unix_ms DESC, seq DESC LIMIT ?
) ORDER BY created_unix_ms, seq`, sessionID, limit)
}

// GetAllMessages hamma sessiyalar, yangi -> eski
func (r *sqliteChatRepository) GetAllMessages(ctx context.Context, limit int) ([]entity.Message, error) {
	if limit <= 0 {
		limit = -1
	}
	return r.scan(ctx, `
SELECT `+chatColumns+`, rowid FROM chat_log ORDER BY created_unix_ms DESC, rowid DESC LIMIT ?`, limit)
}

func (r *sqliteChatRepository) ClearHistory(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_log WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("clear chat %s: %w", sessionID, err)
	}
	return nil
}

func (r *sqliteChatRepository) ClearAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_log`); err != nil {
		return fmt.Errorf("clear chat log: %w", err)
	}
	return nil
}

// PurgeBefore oxirgi xabari before dan oldin bo'lgan sessiyalarni o'chiradi
func (r *sqliteChatRepository) PurgeBefore(ctx context.Context, before time.Time) (int, error) {
	const stale = `SELECT session_id FROM chat_log GROUP BY session_id HAVING MAX(created_unix_ms) < ?`
	var sessions int
	err := inTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM (`+stale+`)`, before.UnixMilli()).Scan(&sessions); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM chat_log WHERE session_id IN (`+stale+`)`, before.UnixMilli())
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("purge chat log: %w", err)
	}
	return sessions, nil
}

func (r *sqliteChatRepository) scan(ctx context.Context, query string, args ...any) ([]entity.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query chat log: %w", err)
	}
	defer rows.Close()

	out := []entity.Message{}
	for rows.Next() {
		var (
			msg     entity.Message
			ms, seq int64
		)
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Username, &msg.Text, &msg.Response, &ms, &seq); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		msg.Timestamp = time.UnixMilli(ms).UTC()
		out = append(out, msg)
	}
	return out, rows.Err()
}
