package implementation

import (
	"context"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
	"hri-companion-be/internal/mapper"
	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/internal/repository/contract"
	"hri-companion-be/pkg/sheets"
)

type childRepository struct {
	table *sheets.Table
}

func NewChildRepository(api sheets.API) contract.IChildRepository {
	return &childRepository{
		table: sheets.NewTable(api, WorksheetChildren, mapper.ChildColumns),
	}
}

func (r *childRepository) Create(ctx context.Context, child *entity.Child) error {
	return r.table.Append(ctx, mapper.ChildToRecord(child))
}

func (r *childRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	record, found, err := r.table.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("child not found").
			WithDetails(map[string]interface{}{"child_id": id.String()})
	}

	child, err := mapper.ChildFromRecord(record)
	if err != nil {
		return nil, apperror.Internal("malformed stored child row").WithCause(err)
	}
	return child, nil
}

func (r *childRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Child, error) {
	record, found, err := r.table.Update(ctx, id.String(), fields)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("child not found").
			WithDetails(map[string]interface{}{"child_id": id.String()})
	}

	child, err := mapper.ChildFromRecord(record)
	if err != nil {
		return nil, apperror.Internal("malformed stored child row").WithCause(err)
	}
	return child, nil
}
