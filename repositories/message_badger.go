package repositories

import (
	"context"
	"encoding/binary"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"chat-screener/domain"
	"chat-screener/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	idPrefix     = "msg:id:"
	sessionKey   = "msg:session:"
	sequenceKey  = "seq:messages"
	sequenceBand = 100
)

// BadgerMessageRepository stores messages in BadgerDB.
//
// Two keys are written per message, in the same transaction:
//   - "msg:id:{message_id}" -> sequence, guards uniqueness
//   - "msg:session:{len}:{session_id}:{sequence}" -> JSON record
//
// The sequence is zero padded so a prefix scan walks a session in insertion order.
// The session id is length-prefixed so "a" never scans into "a:b".
type BadgerMessageRepository struct {
	db       *badger.DB
	sequence *badger.Sequence
	log      *slog.Logger
}

func OpenBadger(path string, log *slog.Logger) (*BadgerMessageRepository, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	repo, err := NewBadgerMessageRepository(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func NewBadgerMessageRepository(db *badger.DB, log *slog.Logger) (*BadgerMessageRepository, error) {
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBand)
	if err != nil {
		return nil, fmt.Errorf("sequence lease failed: %w", err)
	}
	return &BadgerMessageRepository{db: db, sequence: seq, log: log}, nil
}

// Close releases the unused part of the sequence lease, then closes the database.
func (m *BadgerMessageRepository) Close() error {
	if err := m.sequence.Release(); err != nil {
		m.log.Warn("Sequence release failed", "error", err)
	}
	return m.db.Close()
}

func sessionPrefix(sessionID string) []byte {
	return []byte(fmt.Sprintf("%s%d:%s:", sessionKey, len(sessionID), sessionID))
}

func messageKey(sessionID string, seq uint64) []byte {
	return append(sessionPrefix(sessionID), []byte(fmt.Sprintf("%020d", seq))...)
}

// Save writes the message and its id guard atomically.
// A concurrent writer of the same id makes the commit conflict, reported as a duplicate.
func (m *BadgerMessageRepository) Save(ctx context.Context, message domain.ProcessedMessage) (domain.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoredRecord{}, errors.StorageUnavailable("request cancelled", err)
	}
	// Same rule as the sender CHECK constraint of the SQL schema.
	if !message.Sender.IsValid() {
		return domain.StoredRecord{}, errors.StorageUnavailable("failed to insert message",
			fmt.Errorf("sender %q violates the sender constraint", message.Sender))
	}
	disk := fromProcessedMessage(message)
	value, err := json.Marshal(disk)
	if err != nil {
		return domain.StoredRecord{}, errors.StorageUnavailable("failed to encode message", err)
	}
	seq, err := m.sequence.Next()
	if err != nil {
		return domain.StoredRecord{}, errors.StorageUnavailable("failed to allocate sequence", err)
	}

	idKey := []byte(idPrefix + disk.MessageID)
	seqBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(seqBytes, seq)

	// Update discards the transaction on any error, nothing is half written.
	err = m.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(idKey)
		if err == nil {
			return errors.DuplicateMessage(disk.MessageID)
		}
		if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(idKey, seqBytes); err != nil {
			return err
		}
		return txn.Set(messageKey(disk.SessionID, seq), value)
	})
	switch {
	case err == nil:
		return domain.StoredRecord{ProcessedMessage: toProcessedMessage(disk), Sequence: seq}, nil
	case stderrors.Is(err, errors.ErrDuplicateMessage):
		return domain.StoredRecord{}, err
	case stderrors.Is(err, badger.ErrConflict):
		m.log.Debug("Concurrent write on message id", "message_id", disk.MessageID)
		return domain.StoredRecord{}, errors.DuplicateMessage(disk.MessageID)
	default:
		return domain.StoredRecord{}, errors.StorageUnavailable("failed to insert message", err)
	}
}

// FindBySession scans the session prefix, skipping offset matches and keeping at most limit.
func (m *BadgerMessageRepository) FindBySession(ctx context.Context, query domain.SessionQuery) ([]domain.ProcessedMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.StorageUnavailable("request cancelled", err)
	}
	messages := make([]domain.ProcessedMessage, 0)
	skipped := 0

	err := m.db.View(func(txn *badger.Txn) error {
		prefix := sessionPrefix(query.SessionID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if len(messages) == query.Limit {
				break
			}
			var disk DiskMessage
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &disk)
			})
			if err != nil {
				return err
			}
			if query.Sender != nil && disk.Sender != query.Sender.String() {
				continue
			}
			if skipped < query.Offset {
				skipped++
				continue
			}
			messages = append(messages, toProcessedMessage(disk))
		}
		return nil
	})
	if err != nil {
		return nil, errors.StorageUnavailable("failed to retrieve session messages", err)
	}
	return messages, nil
}
