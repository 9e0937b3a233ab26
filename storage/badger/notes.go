package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/jotline/jotline/core"
	"github.com/jotline/jotline/storage"
)

// NoteRepository implements storage.NoteRepository for BadgerDB.
type NoteRepository struct {
	backend *Backend
}

var _ storage.NoteRepository = (*NoteRepository)(nil)

// NewRepository opens a note repository backed by a BadgerDB database
// at the given path.
//
// Returns storage.NoteRepository interface to enforce abstraction.
func NewRepository(path string) (storage.NoteRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &NoteRepository{backend: backend}, nil
}

// NewNoteRepository creates a note repository on an already-open backend.
// The caller keeps ownership of the backend's lifecycle.
func NewNoteRepository(backend *Backend) *NoteRepository {
	return &NoteRepository{backend: backend}
}

// Close closes the underlying backend.
func (r *NoteRepository) Close() error {
	return r.backend.Close()
}

// FindSimilar delegates to the backend.
func (r *NoteRepository) FindSimilar(ctx context.Context, userId string, vector []float32, minSimilarity float32, limit int) ([]core.SimilarityMatch, error) {
	return r.backend.FindSimilar(ctx, userId, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *NoteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddNotes adds one or more notes to storage.
func (r *NoteRepository) AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			if note.Id == "" {
				note.Id = core.IDFromContent(note.Content)
			}
			if note.CreatedAt.IsZero() {
				note.CreatedAt = time.Now().UTC()
			}
			note.UpdatedAt = note.CreatedAt

			key := makeNoteKey(note.UserId, note.Id)
			if err := tx.Set(key, storage.MarshalNote(note)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// UpdateNotes updates existing notes.
func (r *NoteRepository) UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			key := makeNoteKey(note.UserId, note.Id)

			old, err := readNote(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			note.CreatedAt = old.CreatedAt
			note.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalNote(note)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// DeleteNotes removes a user's notes by their IDs.
func (r *NoteRepository) DeleteNotes(ctx context.Context, userId string, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNoteKey(userId, id)

			note, err := readNote(tx, key)
			if err != nil {
				return err
			}
			if note == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetNote retrieves a single note by ID.
func (r *NoteRepository) GetNote(ctx context.Context, userId string, id core.ID) (*core.Note, error) {
	var result *core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readNote(tx, makeNoteKey(userId, id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetNotes retrieves multiple notes by their IDs.
func (r *NoteRepository) GetNotes(ctx context.Context, userId string, ids ...core.ID) ([]*core.Note, error) {
	var result []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			note, err := readNote(tx, makeNoteKey(userId, id))
			if err != nil {
				return err
			}
			if note != nil {
				result = append(result, note)
			}
		}
		return nil
	}, false)
	return result, err
}

// ListNotes retrieves all notes belonging to a user.
func (r *NoteRepository) ListNotes(ctx context.Context, userId string) ([]*core.Note, error) {
	var result []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeUserNotesPrefix(userId)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var note *core.Note
			err := iter.Item().Value(func(val []byte) error {
				var err error
				note, err = storage.UnmarshalNote(val)
				return err
			})
			if err != nil {
				return err
			}
			if note != nil {
				result = append(result, note)
			}
		}
		return nil
	}, false)
	return result, err
}

// readNote reads a note from the transaction.
// Returns nil (no error) when the key is absent.
func readNote(tx *badger.Txn, key []byte) (*core.Note, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var note *core.Note
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		note, unmarshalErr = storage.UnmarshalNote(val)
		return unmarshalErr
	})
	return note, err
}
