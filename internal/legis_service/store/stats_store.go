package store

import (
	"context"
	"fmt"

	"github.com/phlegis/batasan-api/internal/models"
)

// GetOverallStats returns the corpus-wide totals. BillsByCongress is left
// empty; the per-congress breakdown is a separate query so the two can run
// concurrently.
func (s *Store) GetOverallStats(ctx context.Context) (*models.Stats, error) {
	query := `MATCH (d:Document {type: 'bill'})
WITH COUNT(d) as total_bills,
     SUM(CASE WHEN d.subtype = 'HB' THEN 1 ELSE 0 END) as total_house_bills,
     SUM(CASE WHEN d.subtype = 'SB' THEN 1 ELSE 0 END) as total_senate_bills,
     SUM(CASE WHEN d.date_filed IS NOT NULL THEN 1 ELSE 0 END) as bills_with_dates,
     SUM(CASE WHEN d.date_filed IS NULL THEN 1 ELSE 0 END) as bills_without_dates
MATCH (c:Congress)
WITH total_bills, total_house_bills, total_senate_bills, bills_with_dates, bills_without_dates, COUNT(c) as total_congresses
MATCH (p:Person)
WITH total_bills, total_house_bills, total_senate_bills, bills_with_dates, bills_without_dates, total_congresses, COUNT(p) as total_people
OPTIONAL MATCH (com:Committee)
RETURN total_bills, total_house_bills, total_senate_bills, bills_with_dates, bills_without_dates, total_congresses, total_people, COUNT(com) as total_committees`

	rows, err := s.db.ReadQuery(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overall stats: %w", err)
	}
	if len(rows) == 0 {
		return &models.Stats{}, nil
	}

	row := rows[0]
	return &models.Stats{
		TotalBills:        asInt64(row["total_bills"]),
		TotalHouseBills:   asInt64(row["total_house_bills"]),
		TotalSenateBills:  asInt64(row["total_senate_bills"]),
		TotalCongresses:   asInt64(row["total_congresses"]),
		TotalPeople:       asInt64(row["total_people"]),
		TotalCommittees:   asInt64(row["total_committees"]),
		BillsWithDates:    asInt64(row["bills_with_dates"]),
		BillsWithoutDates: asInt64(row["bills_without_dates"]),
	}, nil
}

// GetBillsByCongress returns the per-congress bill breakdown, most recent
// congress first.
func (s *Store) GetBillsByCongress(ctx context.Context) ([]models.CongressBillStats, error) {
	query := `MATCH (d:Document {type: 'bill'})
WHERE d.congress IS NOT NULL
WITH d.congress as congress,
     COUNT(d) as total,
     SUM(CASE WHEN d.subtype = 'HB' THEN 1 ELSE 0 END) as house_bills,
     SUM(CASE WHEN d.subtype = 'SB' THEN 1 ELSE 0 END) as senate_bills
RETURN congress, total, house_bills, senate_bills
ORDER BY congress DESC`

	rows, err := s.db.ReadQuery(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bills by congress: %w", err)
	}

	breakdown := make([]models.CongressBillStats, 0, len(rows))
	for _, row := range rows {
		breakdown = append(breakdown, models.CongressBillStats{
			Congress:    asInt64(row["congress"]),
			Total:       asInt64(row["total"]),
			HouseBills:  asInt64(row["house_bills"]),
			SenateBills: asInt64(row["senate_bills"]),
		})
	}
	return breakdown, nil
}
