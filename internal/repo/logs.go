package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

func (r *postgresRepo) AppendLog(ctx context.Context, e entities.LogEntry) error {
	data, err := json.Marshal(e.Context)
	if err != nil {
		return fmt.Errorf("failed to marshal log context: %w", err)
	}
	if e.Context == nil {
		data = []byte("{}")
	}

	query, args := r.qb.Insert("checkout_logs").
		Columns("kind", "message", "context").
		Values(e.Kind, e.Message, string(data)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append log: %w", err)
	}
	return nil
}
