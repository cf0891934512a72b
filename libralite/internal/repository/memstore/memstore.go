// Package memstore is an in-memory repository.Store for tests and local runs.
// Transactions hold a single store-wide lock and work on a copy of the data
// that replaces the original only when the callback succeeds.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/repository"
)

type data struct {
	items        map[string]model.Item
	members      map[string]model.Member
	applications map[string]model.Application
	loans        map[string]model.Loan
	fines        map[string]model.Fine
	holds        map[string]model.Hold
	shelf        map[string]model.HoldShelfEntry
	holdSeq      int64
}

func newData() *data {
	return &data{
		items:        map[string]model.Item{},
		members:      map[string]model.Member{},
		applications: map[string]model.Application{},
		loans:        map[string]model.Loan{},
		fines:        map[string]model.Fine{},
		holds:        map[string]model.Hold{},
		shelf:        map[string]model.HoldShelfEntry{},
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (d *data) clone() *data {
	return &data{
		items:        cloneMap(d.items),
		members:      cloneMap(d.members),
		applications: cloneMap(d.applications),
		loans:        cloneMap(d.loans),
		fines:        cloneMap(d.fines),
		holds:        cloneMap(d.holds),
		shelf:        cloneMap(d.shelf),
		holdSeq:      d.holdSeq,
	}
}

type shared struct {
	mu       sync.Mutex
	failures map[string]error
}

type Store struct {
	sh   *shared
	d    *data
	inTx bool
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		sh: &shared{failures: map[string]error{}},
		d:  newData(),
	}
}

// FailOn makes every later call of the named write operation return err.
// A nil err clears the failure.
func (s *Store) FailOn(op string, err error) {
	s.sh.mu.Lock()
	defer s.sh.mu.Unlock()
	if err == nil {
		delete(s.sh.failures, op)
		return
	}
	s.sh.failures[op] = err
}

func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.sh.mu.Lock()
	return s.sh.mu.Unlock
}

func (s *Store) fail(op string) error {
	return s.sh.failures[op]
}

func (s *Store) InTx(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.sh.mu.Lock()
	defer s.sh.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &Store{sh: s.sh, d: s.d.clone(), inTx: true}
	if err := fn(tx); err != nil {
		return err
	}
	s.d = tx.d
	return nil
}

func (s *Store) CreateItem(_ context.Context, item model.Item) error {
	defer s.lock()()
	if err := s.fail("CreateItem"); err != nil {
		return err
	}
	s.d.items[item.ID] = item
	return nil
}

func (s *Store) GetItem(_ context.Context, id string) (model.Item, error) {
	defer s.lock()()
	item, ok := s.d.items[id]
	if !ok {
		return model.Item{}, errs.ErrItemNotFound
	}
	return item, nil
}

func (s *Store) ListItems(_ context.Context, f model.ItemFilter) ([]model.Item, error) {
	defer s.lock()()
	search := strings.ToLower(f.Search)
	out := make([]model.Item, 0)
	for _, item := range s.d.items {
		if search != "" && !matches(item, search) {
			continue
		}
		if f.ItemType != "" && item.ItemType != f.ItemType {
			continue
		}
		if f.Available != nil && item.IsAvailable != *f.Available {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := strings.ToLower(out[i].Title), strings.ToLower(out[j].Title)
		if ti != tj {
			return ti < tj
		}
		return out[i].ID < out[j].ID
	})
	if f.Page != 0 && f.Size != 0 {
		start := (f.Page - 1) * f.Size
		if start >= len(out) {
			return []model.Item{}, nil
		}
		end := start + f.Size
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, nil
}

func matches(item model.Item, search string) bool {
	if strings.Contains(strings.ToLower(item.Title), search) ||
		strings.Contains(strings.ToLower(item.Author), search) {
		return true
	}
	return item.ISBN != nil && strings.Contains(strings.ToLower(*item.ISBN), search)
}

func (s *Store) UpdateItem(_ context.Context, item model.Item) error {
	defer s.lock()()
	if err := s.fail("UpdateItem"); err != nil {
		return err
	}
	if _, ok := s.d.items[item.ID]; !ok {
		return errs.ErrItemNotFound
	}
	s.d.items[item.ID] = item
	return nil
}

func (s *Store) CreateMember(_ context.Context, m model.Member) error {
	defer s.lock()()
	if err := s.fail("CreateMember"); err != nil {
		return err
	}
	if _, ok := s.d.members[m.LibraryCardNumber]; ok {
		return errs.ErrCardNumberTaken
	}
	s.d.members[m.LibraryCardNumber] = m
	return nil
}

func (s *Store) GetMember(_ context.Context, cardNumber string) (model.Member, error) {
	defer s.lock()()
	m, ok := s.d.members[cardNumber]
	if !ok {
		return model.Member{}, errs.ErrMemberNotFound
	}
	return m, nil
}

func (s *Store) MemberExists(_ context.Context, cardNumber string) (bool, error) {
	defer s.lock()()
	_, ok := s.d.members[cardNumber]
	return ok, nil
}

func (s *Store) MemberEmailExists(_ context.Context, email string) (bool, error) {
	defer s.lock()()
	for _, m := range s.d.members {
		if m.Email == email && m.Status == model.MemberApproved {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListMembers(_ context.Context) ([]model.Member, error) {
	defer s.lock()()
	out := make([]model.Member, 0, len(s.d.members))
	for _, m := range s.d.members {
		if m.Status == model.MemberApproved {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LibraryCardNumber < out[j].LibraryCardNumber })
	return out, nil
}

func (s *Store) CreateApplication(_ context.Context, a model.Application) error {
	defer s.lock()()
	if err := s.fail("CreateApplication"); err != nil {
		return err
	}
	s.d.applications[a.ID] = a
	return nil
}

func (s *Store) GetApplication(_ context.Context, id string) (model.Application, error) {
	defer s.lock()()
	a, ok := s.d.applications[id]
	if !ok {
		return model.Application{}, errs.ErrApplicationNotFound
	}
	return a, nil
}

func (s *Store) PendingApplicationExists(_ context.Context, email string) (bool, error) {
	defer s.lock()()
	for _, a := range s.d.applications {
		if a.Email == email && a.Status == model.ApplicationPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListApplications(_ context.Context, status model.ApplicationStatus, limit int) ([]model.Application, error) {
	defer s.lock()()
	out := make([]model.Application, 0)
	for _, a := range s.d.applications {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) UpdateApplication(_ context.Context, a model.Application) error {
	defer s.lock()()
	if err := s.fail("UpdateApplication"); err != nil {
		return err
	}
	if _, ok := s.d.applications[a.ID]; !ok {
		return errs.ErrApplicationNotFound
	}
	s.d.applications[a.ID] = a
	return nil
}

func (s *Store) CreateLoan(_ context.Context, l model.Loan) error {
	defer s.lock()()
	if err := s.fail("CreateLoan"); err != nil {
		return err
	}
	for _, existing := range s.d.loans {
		if existing.ItemID == l.ItemID && existing.ReturnDate == nil {
			return errs.ErrItemUnavailable
		}
	}
	s.d.loans[l.ID] = l
	return nil
}

func (s *Store) GetLoan(_ context.Context, id string) (model.Loan, error) {
	defer s.lock()()
	l, ok := s.d.loans[id]
	if !ok {
		return model.Loan{}, errs.ErrLoanNotFound
	}
	return l, nil
}

func (s *Store) UpdateLoan(_ context.Context, l model.Loan) error {
	defer s.lock()()
	if err := s.fail("UpdateLoan"); err != nil {
		return err
	}
	if _, ok := s.d.loans[l.ID]; !ok {
		return errs.ErrLoanNotFound
	}
	s.d.loans[l.ID] = l
	return nil
}

func (s *Store) GetOpenLoanByItem(_ context.Context, itemID string) (model.Loan, error) {
	defer s.lock()()
	for _, l := range s.d.loans {
		if l.ItemID == itemID && l.ReturnDate == nil {
			return l, nil
		}
	}
	return model.Loan{}, errs.ErrLoanNotFound
}

func (s *Store) ListOpenLoans(_ context.Context, memberID string) ([]model.Loan, error) {
	defer s.lock()()
	out := make([]model.Loan, 0)
	for _, l := range s.d.loans {
		if l.MemberID == memberID && l.ReturnDate == nil {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].DueDate.Before(out[j].DueDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) CreateFine(_ context.Context, f model.Fine) error {
	defer s.lock()()
	if err := s.fail("CreateFine"); err != nil {
		return err
	}
	s.d.fines[f.ID] = f
	return nil
}

func (s *Store) ListFines(_ context.Context, memberID string, status model.FineStatus) ([]model.Fine, error) {
	defer s.lock()()
	out := make([]model.Fine, 0)
	for _, f := range s.d.fines {
		if f.MemberID == memberID && (status == "" || f.Status == status) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CalculatedDate.Equal(out[j].CalculatedDate) {
			return out[i].CalculatedDate.After(out[j].CalculatedDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) CreateHold(_ context.Context, h model.Hold) error {
	defer s.lock()()
	if err := s.fail("CreateHold"); err != nil {
		return err
	}
	for _, existing := range s.d.holds {
		if existing.ItemID == h.ItemID && existing.LibraryCardNumber == h.LibraryCardNumber && isOpenHold(existing.Status) {
			return errs.ErrDuplicateHold
		}
	}
	s.d.holdSeq++
	h.Seq = s.d.holdSeq
	s.d.holds[h.ID] = h
	return nil
}

func isOpenHold(st model.HoldStatus) bool {
	return st == model.HoldActive || st == model.HoldReady
}

func (s *Store) GetHold(_ context.Context, id string) (model.Hold, error) {
	defer s.lock()()
	h, ok := s.d.holds[id]
	if !ok {
		return model.Hold{}, errs.ErrHoldNotFound
	}
	return h, nil
}

func (s *Store) UpdateHold(_ context.Context, h model.Hold) error {
	defer s.lock()()
	if err := s.fail("UpdateHold"); err != nil {
		return err
	}
	old, ok := s.d.holds[h.ID]
	if !ok {
		return errs.ErrHoldNotFound
	}
	h.Seq = old.Seq
	s.d.holds[h.ID] = h
	return nil
}

func (s *Store) ListHolds(_ context.Context, f model.HoldFilter) ([]model.Hold, error) {
	defer s.lock()()
	out := make([]model.Hold, 0)
	for _, h := range s.d.holds {
		if f.ItemID != "" && h.ItemID != f.ItemID {
			continue
		}
		if f.LibraryCardNumber != "" && h.LibraryCardNumber != f.LibraryCardNumber {
			continue
		}
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, h.Status) {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return holdBefore(out[j], out[i]) })
	return out, nil
}

func (s *Store) ListActiveHolds(_ context.Context, itemID string) ([]model.Hold, error) {
	defer s.lock()()
	out := make([]model.Hold, 0)
	for _, h := range s.d.holds {
		if h.ItemID == itemID && h.Status == model.HoldActive {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return holdBefore(out[i], out[j]) })
	return out, nil
}

func holdBefore(a, b model.Hold) bool {
	if !a.PlacedAt.Equal(b.PlacedAt) {
		return a.PlacedAt.Before(b.PlacedAt)
	}
	return a.Seq < b.Seq
}

func containsStatus(list []model.HoldStatus, st model.HoldStatus) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}

func (s *Store) CreateShelfEntry(_ context.Context, e model.HoldShelfEntry) error {
	defer s.lock()()
	if err := s.fail("CreateShelfEntry"); err != nil {
		return err
	}
	for _, existing := range s.d.shelf {
		if existing.ItemID == e.ItemID || existing.HoldID == e.HoldID {
			return errs.ErrItemReserved
		}
	}
	s.d.shelf[e.ID] = e
	return nil
}

func (s *Store) findShelf(pred func(model.HoldShelfEntry) bool) (model.HoldShelfEntry, error) {
	defer s.lock()()
	for _, e := range s.d.shelf {
		if pred(e) {
			return e, nil
		}
	}
	return model.HoldShelfEntry{}, errs.ErrShelfEntryNotFound
}

func (s *Store) GetShelfEntry(_ context.Context, id string) (model.HoldShelfEntry, error) {
	return s.findShelf(func(e model.HoldShelfEntry) bool { return e.ID == id })
}

func (s *Store) GetShelfEntryByItem(_ context.Context, itemID string) (model.HoldShelfEntry, error) {
	return s.findShelf(func(e model.HoldShelfEntry) bool { return e.ItemID == itemID })
}

func (s *Store) GetShelfEntryByHold(_ context.Context, holdID string) (model.HoldShelfEntry, error) {
	return s.findShelf(func(e model.HoldShelfEntry) bool { return e.HoldID == holdID })
}

func (s *Store) DeleteShelfEntry(_ context.Context, id string) error {
	defer s.lock()()
	if err := s.fail("DeleteShelfEntry"); err != nil {
		return err
	}
	if _, ok := s.d.shelf[id]; !ok {
		return errs.ErrShelfEntryNotFound
	}
	delete(s.d.shelf, id)
	return nil
}

func (s *Store) ListShelfEntries(_ context.Context, cardNumber string) ([]model.HoldShelfEntry, error) {
	defer s.lock()()
	out := make([]model.HoldShelfEntry, 0)
	for _, e := range s.d.shelf {
		if cardNumber == "" || e.LibraryCardNumber == cardNumber {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PlacedOnShelfAt.Equal(out[j].PlacedOnShelfAt) {
			return out[i].PlacedOnShelfAt.After(out[j].PlacedOnShelfAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) ListExpiredShelfEntries(_ context.Context, now time.Time) ([]model.HoldShelfEntry, error) {
	defer s.lock()()
	out := make([]model.HoldShelfEntry, 0)
	for _, e := range s.d.shelf {
		if e.ExpiresAt.Before(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ExpiresAt.Equal(out[j].ExpiresAt) {
			return out[i].ExpiresAt.Before(out[j].ExpiresAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) MarkShelfNotified(_ context.Context, id string) error {
	defer s.lock()()
	if err := s.fail("MarkShelfNotified"); err != nil {
		return err
	}
	e, ok := s.d.shelf[id]
	if !ok {
		return errs.ErrShelfEntryNotFound
	}
	e.NotificationSent = true
	s.d.shelf[id] = e
	return nil
}

func (s *Store) DailyCheckouts(_ context.Context, since time.Time) ([]model.DailyCount, error) {
	defer s.lock()()
	counts := map[string]int{}
	for _, l := range s.d.loans {
		if !l.CheckoutDate.Before(since) {
			counts[l.CheckoutDate.UTC().Format(time.DateOnly)]++
		}
	}
	out := make([]model.DailyCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, model.DailyCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *Store) PopularItems(_ context.Context, since time.Time, limit int) ([]model.PopularItem, error) {
	defer s.lock()()
	counts := map[string]int{}
	for _, l := range s.d.loans {
		if !l.CheckoutDate.Before(since) {
			counts[l.ItemID]++
		}
	}
	out := make([]model.PopularItem, 0, len(counts))
	for id, n := range counts {
		out = append(out, model.PopularItem{ItemID: id, Title: s.d.items[id].Title, Checkouts: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Checkouts != out[j].Checkouts {
			return out[i].Checkouts > out[j].Checkouts
		}
		return out[i].Title < out[j].Title
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) CountNewMembers(_ context.Context, since time.Time) (int, error) {
	defer s.lock()()
	n := 0
	for _, m := range s.d.members {
		if !m.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}
