// Package service orchestrates the store queries per endpoint: dual-key
// resolution, existence checks before relationship listings, enrichment of
// detail lookups, and the concurrent stats fan-out.
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/phlegis/batasan-api/internal/graph"
	"github.com/phlegis/batasan-api/internal/legis_service/store"
	"github.com/phlegis/batasan-api/internal/models"
)

// Service wraps the read-only store with the per-endpoint orchestration.
type Service struct {
	store *store.Store
}

// NewService creates a Service over the given store.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// Ping checks database connectivity.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// ListCongresses returns one page of congresses and the matching total.
func (s *Service) ListCongresses(ctx context.Context, f store.CongressFilter) ([]models.Congress, int64, error) {
	return s.store.ListCongresses(ctx, f)
}

// GetCongress returns a single congress enriched with its member and
// committee counts. The detail row and the aggregate are independent
// read-only queries, so they run concurrently.
func (s *Service) GetCongress(ctx context.Context, key graph.Key) (*models.Congress, error) {
	var (
		congress *models.Congress
		counts   *store.CongressCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		congress, err = s.store.GetCongress(gctx, key)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.store.GetCongressCounts(gctx, key)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	congress.TotalSenators = &counts.Senators
	congress.TotalRepresentatives = &counts.Representatives
	congress.TotalCommittees = &counts.Committees
	return congress, nil
}

// ListCongressDocuments resolves the congress key (404 when absent) and
// lists the bills filed in it.
func (s *Service) ListCongressDocuments(ctx context.Context, key graph.Key, f store.DocumentFilter) ([]models.Document, int64, error) {
	number, err := s.store.ResolveCongressNumber(ctx, key)
	if err != nil {
		return nil, 0, err
	}
	f.Congress = &number
	return s.store.ListDocuments(ctx, f)
}

// ListCongressCommittees resolves the congress key and lists its
// committees.
func (s *Service) ListCongressCommittees(ctx context.Context, key graph.Key, committeeType string, limit, offset int64) ([]models.Committee, int64, error) {
	if _, err := s.store.ResolveCongressNumber(ctx, key); err != nil {
		return nil, 0, err
	}
	return s.store.ListCongressCommittees(ctx, key, committeeType, limit, offset)
}

// ListCongressMembers lists the senators or representatives of a congress.
func (s *Service) ListCongressMembers(ctx context.Context, key graph.Key, position string, limit, offset int64) ([]models.Person, int64, error) {
	if _, err := s.store.ResolveCongressNumber(ctx, key); err != nil {
		return nil, 0, err
	}
	return s.store.ListCongressMembers(ctx, key, position, limit, offset)
}

// ListPeople returns one page of people and the matching total.
func (s *Service) ListPeople(ctx context.Context, f store.PeopleFilter) ([]models.Person, int64, error) {
	return s.store.ListPeople(ctx, f)
}

// GetPerson returns a single person, optionally enriched with their
// congress membership history.
func (s *Service) GetPerson(ctx context.Context, id string, includeCongresses bool) (*models.Person, error) {
	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return nil, err
	}

	if includeCongresses {
		history, err := s.store.GetPersonCongressHistory(ctx, id)
		if err != nil {
			return nil, err
		}
		person.Congresses = history
	}
	return person, nil
}

// GetPersonCongresses returns a person's SERVED_IN service record, with a
// 404 when the person does not exist. An existing person with no service
// yields an empty list.
func (s *Service) GetPersonCongresses(ctx context.Context, id string) ([]models.CongressMembership, error) {
	exists, err := s.store.PersonExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, store.ErrNotFound
	}
	return s.store.GetPersonServiceHistory(ctx, id)
}

// ListPersonDocuments returns one page of a person's authored bills, with
// a 404 when the person does not exist.
func (s *Service) ListPersonDocuments(ctx context.Context, id string, congress *int64, subtype string, limit, offset int64) ([]models.Document, int64, error) {
	exists, err := s.store.PersonExists(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, store.ErrNotFound
	}
	return s.store.ListPersonDocuments(ctx, id, congress, subtype, limit, offset)
}

// ListDocuments returns one page of documents and the matching total.
func (s *Service) ListDocuments(ctx context.Context, f store.DocumentFilter) ([]models.Document, int64, error) {
	return s.store.ListDocuments(ctx, f)
}

// GetDocument returns a single document by opaque id or bill code.
func (s *Service) GetDocument(ctx context.Context, idOrCode string) (*models.Document, error) {
	return s.store.GetDocument(ctx, idOrCode)
}

// GetDocumentAuthors returns a document's authors, with a 404 when the
// document does not exist. An existing document with no authors yields an
// empty list, not an error.
func (s *Service) GetDocumentAuthors(ctx context.Context, idOrCode string) ([]models.Person, error) {
	exists, err := s.store.DocumentExists(ctx, idOrCode)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, store.ErrNotFound
	}
	return s.store.ListDocumentAuthors(ctx, idOrCode)
}

// GetStats assembles the aggregate counts. The overall totals and the
// per-congress breakdown are unrelated reads and commute, so they are
// issued concurrently and awaited jointly.
func (s *Service) GetStats(ctx context.Context) (*models.Stats, error) {
	var (
		stats      *models.Stats
		byCongress []models.CongressBillStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.store.GetOverallStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		byCongress, err = s.store.GetBillsByCongress(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.BillsByCongress = byCongress
	return stats, nil
}
