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

// emailColumn is the 1-based index of the email column in the users
// worksheet.
const emailColumn = 2

type userRepository struct {
	table *sheets.Table
}

func NewUserRepository(api sheets.API) contract.IUserRepository {
	return &userRepository{
		table: sheets.NewTable(api, WorksheetUsers, mapper.UserColumns),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.table.Append(ctx, mapper.UserToRecord(user))
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	record, found, err := r.table.GetByID(ctx, id.String())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("user not found").
			WithDetails(map[string]interface{}{"user_id": id.String()})
	}

	user, err := mapper.UserFromRecord(record)
	if err != nil {
		return nil, apperror.Internal("malformed stored user row").WithCause(err)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	record, found, err := r.table.GetByColumn(ctx, emailColumn, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	user, err := mapper.UserFromRecord(record)
	if err != nil {
		return nil, apperror.Internal("malformed stored user row").WithCause(err)
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.User, error) {
	record, found, err := r.table.Update(ctx, id.String(), fields)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.NotFound("user not found").
			WithDetails(map[string]interface{}{"user_id": id.String()})
	}

	user, err := mapper.UserFromRecord(record)
	if err != nil {
		return nil, apperror.Internal("malformed stored user row").WithCause(err)
	}
	return user, nil
}
