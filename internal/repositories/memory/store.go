// Package memory is a process-local implementation of the repository
// interfaces. It backs the "memory" store driver and the test suites.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"herbverse/internal/models/db_models"
)

// Store holds every table behind one lock, so each repository call is atomic
// with respect to the others.
type Store struct {
	mu sync.RWMutex

	accounts  map[uuid.UUID]db_models.Account
	bookmarks map[uuid.UUID]map[uuid.UUID]int64
	notes     map[uuid.UUID]map[uuid.UUID]noteEntry
	plants    map[uuid.UUID]db_models.Plant
	tours     map[uuid.UUID]db_models.VirtualTour

	// seq orders rows created within the same second.
	seq      int64
	inserted map[uuid.UUID]int64
}

type noteEntry struct {
	note db_models.Note
	seq  int64
}

func NewStore() *Store {
	return &Store{
		accounts:  make(map[uuid.UUID]db_models.Account),
		bookmarks: make(map[uuid.UUID]map[uuid.UUID]int64),
		notes:     make(map[uuid.UUID]map[uuid.UUID]noteEntry),
		plants:    make(map[uuid.UUID]db_models.Plant),
		tours:     make(map[uuid.UUID]db_models.VirtualTour),
		inserted:  make(map[uuid.UUID]int64),
	}
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func (s *Store) sortByInsertion(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return s.inserted[ids[i]] < s.inserted[ids[j]]
	})
}

func now() int64 {
	return time.Now().Unix()
}

func copyStrings(in pq.StringArray) pq.StringArray {
	if in == nil {
		return nil
	}
	out := make(pq.StringArray, len(in))
	copy(out, in)
	return out
}

func copyUUIDPtr(in *uuid.UUID) *uuid.UUID {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func copyStringPtr(in *string) *string {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func copyPlant(p db_models.Plant) db_models.Plant {
	p.CommonNames = copyStrings(p.CommonNames)
	p.Region = copyStrings(p.Region)
	p.MedicinalUses = copyStrings(p.MedicinalUses)
	p.PreparationMethods = copyStrings(p.PreparationMethods)
	p.Images = copyStrings(p.Images)
	p.ModelURL = copyStringPtr(p.ModelURL)
	p.CreatedBy = copyUUIDPtr(p.CreatedBy)
	return p
}

func copyTour(t db_models.VirtualTour) db_models.VirtualTour {
	stops := make([]db_models.TourStop, len(t.Stops))
	copy(stops, t.Stops)
	t.Stops = stops
	t.CreatedBy = copyUUIDPtr(t.CreatedBy)
	return t
}
