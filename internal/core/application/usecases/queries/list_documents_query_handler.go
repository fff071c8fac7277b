package queries

import (
	"context"

	"hubops/internal/core/domain/model/hubdoc"
	"hubops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListDocumentsQueryHandler struct {
	db *gorm.DB
}

func NewListDocumentsQueryHandler(db *gorm.DB) ListDocumentsQueryHandler {
	return ListDocumentsQueryHandler{db: db}
}

// Handle returns document summaries ordered by creation time. Member counts
// come from the join table; Unresolved counts members without resolved_at.
func (h ListDocumentsQueryHandler) Handle(
	ctx context.Context,
	query ListDocumentsQuery,
) ([]ListDocumentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]int64, 0, len(query.Statuses()))
	for _, s := range query.Statuses() {
		statuses = append(statuses, int64(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT d.id, d.code, d.status, d.created_at, d.completed_at,
			COUNT(m.id) AS members,
			COUNT(m.id) FILTER (WHERE m.resolved_at IS NULL) AS unresolved
		FROM documents d
		LEFT JOIN document_members m ON m.document_id = d.id
		WHERE d.kind = ?
			AND d.created_at >= ? AND d.created_at < ?
			AND (cardinality(?::int[]) = 0 OR d.status = ANY(?::int[]))
		GROUP BY d.id
		ORDER BY d.created_at, d.code
	`, int(query.Kind()), query.From(), query.To(), pq.Array(statuses), pq.Array(statuses)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]ListDocumentsQueryResponse, 0)
	for rows.Next() {
		var (
			item   ListDocumentsQueryResponse
			id     uuid.UUID
			status int
		)
		err = rows.Scan(&id, &item.Code, &status, &item.CreatedAt, &item.CompletedAt, &item.Members, &item.Unresolved)
		if err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		item.Status = hubdoc.Status(status).String()
		documents = append(documents, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
