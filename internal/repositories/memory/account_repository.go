package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"herbverse/internal/models/db_models"
	"herbverse/internal/repositories"
)

type accountRepository struct {
	s *Store
}

func NewAccountRepository(s *Store) repositories.AccountRepository {
	return &accountRepository{s: s}
}

func (r *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return repositories.ErrDuplicateKey
		}
	}
	if err := account.HashPendingPassword(); err != nil {
		return err
	}
	account.PrepareCreate()
	if account.Role == "" {
		account.Role = db_models.RoleUser
	}

	r.s.accounts[account.ID] = *account
	r.s.inserted[account.ID] = r.s.nextSeq()
	return nil
}

func (r *accountRepository) Save(ctx context.Context, account *db_models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := account.HashPendingPassword(); err != nil {
		return err
	}
	if _, ok := r.s.accounts[account.ID]; !ok {
		account.PrepareCreate()
		r.s.inserted[account.ID] = r.s.nextSeq()
	} else {
		account.PrepareUpdate()
	}
	r.s.accounts[account.ID] = *account
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.accounts, id)
	delete(r.s.bookmarks, id)
	delete(r.s.notes, id)
	delete(r.s.inserted, id)
	return nil
}

func (r *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	account, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, account := range r.s.accounts {
		if strings.EqualFold(account.Email, email) {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

func (r *accountRepository) List(ctx context.Context) ([]db_models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(r.s.accounts))
	for id := range r.s.accounts {
		ids = append(ids, id)
	}
	r.s.sortByInsertion(ids)

	accounts := make([]db_models.Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, r.s.accounts[id])
	}
	return accounts, nil
}

func (r *accountRepository) AddBookmark(ctx context.Context, accountID, plantID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	set, ok := r.s.bookmarks[accountID]
	if !ok {
		set = make(map[uuid.UUID]int64)
		r.s.bookmarks[accountID] = set
	}
	if _, exists := set[plantID]; !exists {
		set[plantID] = r.s.nextSeq()
	}
	return nil
}

func (r *accountRepository) RemoveBookmark(ctx context.Context, accountID, plantID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.bookmarks[accountID], plantID)
	return nil
}

func (r *accountRepository) ListBookmarkedPlantIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	set := r.s.bookmarks[accountID]
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return set[ids[i]] < set[ids[j]] })
	return ids, nil
}

func (r *accountRepository) UpsertNote(ctx context.Context, accountID, plantID uuid.UUID, text string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	notes, ok := r.s.notes[accountID]
	if !ok {
		notes = make(map[uuid.UUID]noteEntry)
		r.s.notes[accountID] = notes
	}

	ts := now()
	entry, exists := notes[plantID]
	if !exists {
		entry = noteEntry{
			note: db_models.Note{AccountID: accountID, PlantID: plantID, CreatedAt: time.Now().UnixNano()},
			seq:  r.s.nextSeq(),
		}
	}
	entry.note.Text = text
	entry.note.UpdatedAt = ts
	notes[plantID] = entry
	return nil
}

func (r *accountRepository) DeleteNote(ctx context.Context, accountID, plantID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.notes[accountID], plantID)
	return nil
}

func (r *accountRepository) ListNotes(ctx context.Context, accountID uuid.UUID) ([]db_models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := make([]noteEntry, 0, len(r.s.notes[accountID]))
	for _, e := range r.s.notes[accountID] {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	notes := make([]db_models.Note, 0, len(entries))
	for _, e := range entries {
		notes = append(notes, e.note)
	}
	return notes, nil
}

func (r *accountRepository) RemovePlantReferences(ctx context.Context, plantID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, set := range r.s.bookmarks {
		delete(set, plantID)
	}
	for _, notes := range r.s.notes {
		delete(notes, plantID)
	}
	return nil
}
