package implementation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
	"hri-companion-be/internal/mapper"
	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/pkg/sheets"
)

// fakeSheets is an in-memory spreadsheet implementing sheets.API. Each
// worksheet is seeded with its header row, like the real backing document.
type fakeSheets struct {
	mu         sync.Mutex
	worksheets map[string][][]string
}

var _ sheets.API = &fakeSheets{}

func newFakeSheets() *fakeSheets {
	f := &fakeSheets{worksheets: make(map[string][][]string)}
	f.worksheets[WorksheetUsers] = [][]string{mapper.UserColumns}
	f.worksheets[WorksheetChildren] = [][]string{mapper.ChildColumns}
	f.worksheets[WorksheetSessions] = [][]string{mapper.SessionColumns}
	f.worksheets[WorksheetUserChildren] = [][]string{mapper.UserChildColumns}
	return f
}

func (f *fakeSheets) ColValues(_ context.Context, worksheet string, col int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("unknown worksheet %q", worksheet)
	}
	values := make([]string, 0, len(grid))
	for _, row := range grid {
		if col-1 < len(row) {
			values = append(values, row[col-1])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

func (f *fakeSheets) RowValues(_ context.Context, worksheet string, row int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("unknown worksheet %q", worksheet)
	}
	if row < 1 || row > len(grid) {
		return nil, nil
	}
	return append([]string(nil), grid[row-1]...), nil
}

func (f *fakeSheets) AllValues(_ context.Context, worksheet string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("unknown worksheet %q", worksheet)
	}
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeSheets) AppendRow(_ context.Context, worksheet string, values []interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return fmt.Errorf("unknown worksheet %q", worksheet)
	}
	f.worksheets[worksheet] = append(grid, stringCells(values))
	return nil
}

func (f *fakeSheets) UpdateRow(_ context.Context, worksheet string, row int, values []interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return fmt.Errorf("unknown worksheet %q", worksheet)
	}
	if row < 1 || row > len(grid) {
		return fmt.Errorf("row %d out of range", row)
	}
	grid[row-1] = stringCells(values)
	return nil
}

func stringCells(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func testUser() *entity.User {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &entity.User{
		Id:           uuid.New(),
		Email:        "parent@example.com",
		PasswordHash: "hash",
		FullName:     "A Parent",
		Role:         entity.UserRoleParent,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastLoginAt:  &now,
	}
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewUserRepository(newFakeSheets())
	ctx := context.Background()
	user := testUser()

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, user.Id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Email != user.Email || got.Role != user.Role {
		t.Errorf("got = %+v", got)
	}
	if got.LastLoginAt == nil || !got.LastLoginAt.Equal(*user.LastLoginAt) {
		t.Errorf("last login = %v, want %v", got.LastLoginAt, user.LastLoginAt)
	}
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	repo := NewUserRepository(newFakeSheets())

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !apperror.IsCode(err, apperror.CodeNotFound) {
		t.Errorf("error = %v, want not_found", err)
	}
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	repo := NewUserRepository(newFakeSheets())
	ctx := context.Background()
	user := testUser()

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got == nil || got.Id != user.Id {
		t.Errorf("got = %+v", got)
	}

	// Absent email is (nil, nil), not an error.
	got, err = repo.GetByEmail(ctx, "nobody@example.com")
	if err != nil || got != nil {
		t.Errorf("absent email = (%v, %v), want (nil, nil)", got, err)
	}

	// Matching is case-sensitive.
	got, err = repo.GetByEmail(ctx, "PARENT@example.com")
	if err != nil || got != nil {
		t.Errorf("case variant = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	repo := NewUserRepository(newFakeSheets())
	ctx := context.Background()
	user := testUser()

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stamp := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	got, err := repo.Update(ctx, user.Id, map[string]interface{}{
		"last_login_at": stamp,
		"updated_at":    stamp,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.LastLoginAt == nil || !got.LastLoginAt.Equal(stamp) {
		t.Errorf("last login = %v, want %v", got.LastLoginAt, stamp)
	}
	if got.Email != user.Email {
		t.Errorf("untouched email changed to %q", got.Email)
	}

	_, err = repo.Update(ctx, uuid.New(), map[string]interface{}{"updated_at": stamp})
	if !apperror.IsCode(err, apperror.CodeNotFound) {
		t.Errorf("update missing user error = %v, want not_found", err)
	}
}

func TestChildRepositoryRoundTrip(t *testing.T) {
	repo := NewChildRepository(newFakeSheets())
	ctx := context.Background()
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	child := &entity.Child{
		Id:              uuid.New(),
		Nickname:        "Milo",
		Age:             6,
		CommLevel:       entity.CommLevelMedium,
		Personality:     entity.PersonalityCurious,
		TriggersRaw:     "loud noises and crowds",
		Triggers:        "loud_noises,crowds",
		InterestsRaw:    "trains, dinosaurs",
		Interests:       "trains,dinosaurs",
		TargetSkillsRaw: "turn taking",
		TargetSkills:    "turn_taking",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := repo.Create(ctx, child); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, child.Id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Age != 6 || got.Triggers != "loud_noises,crowds" || got.Personality != entity.PersonalityCurious {
		t.Errorf("got = %+v", got)
	}
}

func TestSessionRepositoryGetLatestByChildID(t *testing.T) {
	repo := NewSessionRepository(newFakeSheets())
	ctx := context.Background()
	childId := uuid.New()
	otherChild := uuid.New()

	mk := func(child uuid.UUID, createdAt time.Time) *entity.Session {
		return &entity.Session{
			Id:          uuid.New(),
			ChildId:     child,
			Mood:        entity.MoodHappy,
			Environment: "loc_indoor,noise_quiet,crowd_alone",
			Situation:   "play time",
			Prompt:      "hello",
			CreatedAt:   createdAt,
		}
	}

	sessions := []*entity.Session{
		mk(childId, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
		mk(childId, time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)),
		mk(otherChild, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)),
		mk(childId, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)),
	}
	for _, session := range sessions {
		if err := repo.Create(ctx, session); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	latest, err := repo.GetLatestByChildID(ctx, childId)
	if err != nil {
		t.Fatalf("GetLatestByChildID() error = %v", err)
	}
	if latest == nil || latest.Id != sessions[1].Id {
		t.Errorf("latest = %+v, want session from Mar 5", latest)
	}

	// No sessions yet is (nil, nil), not an error.
	latest, err = repo.GetLatestByChildID(ctx, uuid.New())
	if err != nil || latest != nil {
		t.Errorf("no sessions = (%v, %v), want (nil, nil)", latest, err)
	}
}

func TestUserChildRepositoryLinks(t *testing.T) {
	repo := NewUserChildRepository(newFakeSheets())
	ctx := context.Background()
	userId := uuid.New()
	childA := uuid.New()
	childB := uuid.New()
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	for _, childId := range []uuid.UUID{childA, childB} {
		err := repo.CreateLink(ctx, &entity.UserChild{UserId: userId, ChildId: childId, CreatedAt: now})
		if err != nil {
			t.Fatalf("CreateLink() error = %v", err)
		}
	}

	owns, err := repo.HasLink(ctx, userId, childA)
	if err != nil || !owns {
		t.Errorf("HasLink() = (%v, %v), want true", owns, err)
	}

	owns, err = repo.HasLink(ctx, uuid.New(), childA)
	if err != nil || owns {
		t.Errorf("foreign user HasLink() = (%v, %v), want false", owns, err)
	}

	ids, err := repo.ListChildIDs(ctx, userId)
	if err != nil {
		t.Fatalf("ListChildIDs() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != childA || ids[1] != childB {
		t.Errorf("ids = %v, want [%v %v] in sheet order", ids, childA, childB)
	}
}
