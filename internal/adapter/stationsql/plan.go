package stationsql

import (
	"fmt"
	"time"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

type builder func() (string, []any, error)

func collect(steps ...builder) ([]Statement, error) {
	out := make([]Statement, 0, len(steps))
	for _, step := range steps {
		query, args, err := step()
		if err != nil {
			return nil, err
		}
		out = append(out, Statement{SQL: query, Args: args})
	}
	return out, nil
}

// UpsertPlan returns, in execution order, the statements that store a
// station and fully replace its tag and language rows. Callers run them in
// one transaction.
func (d Dialect) UpsertPlan(s domain.Station, tags, languages []string, now time.Time) ([]Statement, error) {
	steps := []builder{
		func() (string, []any, error) { return d.UpsertStation(s, now) },
		func() (string, []any, error) { return d.DeleteTags(s.ID) },
	}
	if len(tags) > 0 {
		steps = append(steps, func() (string, []any, error) { return d.InsertTags(s.ID, tags) })
	}
	steps = append(steps, func() (string, []any, error) { return d.DeleteLanguages(s.ID) })
	if len(languages) > 0 {
		steps = append(steps, func() (string, []any, error) { return d.InsertLanguages(s.ID, languages) })
	}

	stmts, err := collect(steps...)
	if err != nil {
		return nil, fmt.Errorf("build upsert for station %s: %w", s.ID, err)
	}
	return stmts, nil
}

// SummaryPlan returns the statements replacing the summary record.
func (d Dialect) SummaryPlan(s domain.Summary) ([]Statement, error) {
	stmts, err := collect(
		d.DeleteSummary,
		func() (string, []any, error) { return d.InsertSummary(s) },
	)
	if err != nil {
		return nil, fmt.Errorf("build summary: %w", err)
	}
	return stmts, nil
}
