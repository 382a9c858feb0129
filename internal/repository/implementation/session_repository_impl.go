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

// childIdColumn is the 1-based index of the child_id foreign key in the
// sessions worksheet.
const childIdColumn = 2

type sessionRepository struct {
	table *sheets.Table
}

func NewSessionRepository(api sheets.API) contract.ISessionRepository {
	return &sessionRepository{
		table: sheets.NewTable(api, WorksheetSessions, mapper.SessionColumns),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return r.table.Append(ctx, mapper.SessionToRecord(session))
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	record, found, err := r.table.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("session not found").
			WithDetails(map[string]interface{}{"session_id": id.String()})
	}

	session, err := mapper.SessionFromRecord(record)
	if err != nil {
		return nil, apperror.Internal("malformed stored session row").WithCause(err)
	}
	return session, nil
}

func (r *sessionRepository) GetLatestByChildID(ctx context.Context, childId uuid.UUID) (*entity.Session, error) {
	record, found, err := r.table.LatestByColumn(ctx, childIdColumn, childId.String(), "created_at")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	session, err := mapper.SessionFromRecord(record)
	if err != nil {
		return nil, apperror.Internal("malformed stored session row").WithCause(err)
	}
	return session, nil
}
