package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"chat-screener/domain"
	"chat-screener/errors"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect is the SQL flavour spoken by the underlying database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DefaultSQLitePath mirrors the on-disk location used by the service.
var DefaultSQLitePath = filepath.Join("data", "messages.db")

const (
	insertMessage = `
		INSERT INTO messages (message_id, session_id, content, timestamp, sender,
			word_count, character_count, processed_at, language)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING seq`

	selectBySession = `
		SELECT message_id, session_id, content, timestamp, sender,
			word_count, character_count, processed_at, language
		FROM messages
		WHERE session_id = ?`
)

// SQLMessageRepository stores messages in a relational table, one row per message.
type SQLMessageRepository struct {
	db      *sql.DB
	dialect Dialect
	log     *slog.Logger
}

// OpenSQL opens the database. The schema is expected to be migrated already.
func OpenSQL(dialect Dialect, dsn string, log *slog.Logger) (*SQLMessageRepository, error) {
	driverName, source, err := dataSource(dialect, dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect == DialectSQLite {
		// Writers are serialized by SQLite anyway, a single connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return NewSQLMessageRepository(db, dialect, log), nil
}

func NewSQLMessageRepository(db *sql.DB, dialect Dialect, log *slog.Logger) *SQLMessageRepository {
	return &SQLMessageRepository{db: db, dialect: dialect, log: log}
}

// dataSource resolves the database/sql driver name and connection string.
// SQLite paths get their parent directory created.
func dataSource(dialect Dialect, dsn string) (string, string, error) {
	switch dialect {
	case DialectSQLite:
		if dsn == "" {
			dsn = DefaultSQLitePath
		}
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return "", "", fmt.Errorf("failed to create directory: %w", err)
		}
		return "sqlite", dsn + "?_pragma=busy_timeout(5000)", nil
	case DialectPostgres:
		if dsn == "" {
			return "", "", fmt.Errorf("postgres requires a DATABASE_URL")
		}
		return "postgres", dsn, nil
	default:
		return "", "", fmt.Errorf("unknown SQL dialect %q", dialect)
	}
}

func (r *SQLMessageRepository) Close() error {
	return r.db.Close()
}

// Save inserts the message in its own transaction. Any failure rolls it back.
func (r *SQLMessageRepository) Save(ctx context.Context, message domain.ProcessedMessage) (domain.StoredRecord, error) {
	disk := fromProcessedMessage(message)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StoredRecord{}, errors.StorageUnavailable("failed to begin transaction", err)
	}

	var seq int64
	err = tx.QueryRowContext(ctx, r.rebind(insertMessage),
		disk.MessageID,
		disk.SessionID,
		disk.Content,
		r.timeValue(disk.Timestamp),
		disk.Sender,
		disk.WordCount,
		disk.CharacterCount,
		r.timeValue(disk.ProcessedAt),
		disk.Language,
	).Scan(&seq)
	if err == nil {
		err = tx.Commit()
	}
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !stderrors.Is(rbErr, sql.ErrTxDone) {
			r.log.Error("Rollback failed", "message_id", disk.MessageID, "error", rbErr)
		}
		if r.isUniqueViolation(err) {
			return domain.StoredRecord{}, errors.DuplicateMessage(disk.MessageID)
		}
		return domain.StoredRecord{}, errors.StorageUnavailable("failed to insert message", err)
	}

	return domain.StoredRecord{ProcessedMessage: toProcessedMessage(disk), Sequence: uint64(seq)}, nil
}

// FindBySession returns one page of a session in insertion order.
func (r *SQLMessageRepository) FindBySession(ctx context.Context, query domain.SessionQuery) ([]domain.ProcessedMessage, error) {
	stmt := selectBySession
	args := []any{query.SessionID}
	if query.Sender != nil {
		stmt += " AND sender = ?"
		args = append(args, query.Sender.String())
	}
	stmt += " ORDER BY seq LIMIT ? OFFSET ?"
	args = append(args, query.Limit, query.Offset)

	rows, err := r.db.QueryContext(ctx, r.rebind(stmt), args...)
	if err != nil {
		return nil, errors.StorageUnavailable("failed to retrieve session messages", err)
	}
	defer rows.Close()

	messages := make([]domain.ProcessedMessage, 0, query.Limit)
	for rows.Next() {
		var (
			disk        DiskMessage
			timestamp   timeColumn
			processedAt timeColumn
		)
		if err := rows.Scan(
			&disk.MessageID,
			&disk.SessionID,
			&disk.Content,
			&timestamp,
			&disk.Sender,
			&disk.WordCount,
			&disk.CharacterCount,
			&processedAt,
			&disk.Language,
		); err != nil {
			return nil, errors.StorageUnavailable("failed to read session messages", err)
		}
		disk.Timestamp = timestamp.Time
		disk.ProcessedAt = processedAt.Time
		messages = append(messages, toProcessedMessage(disk))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StorageUnavailable("failed to iterate session messages", err)
	}
	return messages, nil
}

// rebind rewrites '?' placeholders to '$n' for postgres.
func (r *SQLMessageRepository) rebind(query string) string {
	if r.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// timeValue keeps the offset on SQLite, where times are stored as RFC 3339 text.
func (r *SQLMessageRepository) timeValue(t time.Time) any {
	if r.dialect == DialectSQLite {
		return t.Format(time.RFC3339Nano)
	}
	return t
}

func (r *SQLMessageRepository) isUniqueViolation(err error) bool {
	var liteErr *sqlite.Error
	if stderrors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// timeColumn scans both native timestamps and RFC 3339 text.
type timeColumn struct {
	time.Time
}

func (c *timeColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		c.Time = v
		return nil
	case string:
		return c.parse(v)
	case []byte:
		return c.parse(string(v))
	case nil:
		c.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported time column type %T", src)
	}
}

func (c *timeColumn) parse(s string) error {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	c.Time = t
	return nil
}
