package implementation

import (
	"context"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
	"hri-companion-be/internal/mapper"
	"hri-companion-be/internal/repository/contract"
	"hri-companion-be/pkg/sheets"
)

type userChildRepository struct {
	table *sheets.Table
}

func NewUserChildRepository(api sheets.API) contract.IUserChildRepository {
	return &userChildRepository{
		table: sheets.NewTable(api, WorksheetUserChildren, mapper.UserChildColumns),
	}
}

func (r *userChildRepository) CreateLink(ctx context.Context, link *entity.UserChild) error {
	return r.table.Append(ctx, mapper.UserChildToRecord(link))
}

// HasLink scans the full join table, O(rows).
func (r *userChildRepository) HasLink(ctx context.Context, userId, childId uuid.UUID) (bool, error) {
	records, err := r.table.Rows(ctx)
	if err != nil {
		return false, err
	}

	for _, record := range records {
		if record["user_id"] == userId.String() && record["child_id"] == childId.String() {
			return true, nil
		}
	}
	return false, nil
}

func (r *userChildRepository) ListChildIDs(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	records, err := r.table.Rows(ctx)
	if err != nil {
		return nil, err
	}

	childIds := make([]uuid.UUID, 0)
	for _, record := range records {
		if record["user_id"] != userId.String() {
			continue
		}
		childId, err := uuid.Parse(record["child_id"])
		if err != nil {
			continue
		}
		childIds = append(childIds, childId)
	}
	return childIds, nil
}
