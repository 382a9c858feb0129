package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hri-companion-be/internal/entity"
	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/pkg/llm"
)

type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, message)
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {}

func (l *recordingLogger) Sync() error { return nil }

type mockUserRepo struct {
	users       map[uuid.UUID]*entity.User
	lastUpdate  map[string]interface{}
	createCalls int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) error {
	m.createCalls++
	m.users[user.Id] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	m.lastUpdate = fields
	return user, nil
}

type mockChildRepo struct {
	children    map[uuid.UUID]*entity.Child
	createCalls int
	getCalls    int
}

func newMockChildRepo() *mockChildRepo {
	return &mockChildRepo{children: make(map[uuid.UUID]*entity.Child)}
}

func (m *mockChildRepo) Create(_ context.Context, child *entity.Child) error {
	m.createCalls++
	m.children[child.Id] = child
	return nil
}

func (m *mockChildRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Child, error) {
	m.getCalls++
	child, ok := m.children[id]
	if !ok {
		return nil, apperror.NotFound("child not found")
	}
	return child, nil
}

func (m *mockChildRepo) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*entity.Child, error) {
	child, ok := m.children[id]
	if !ok {
		return nil, apperror.NotFound("child not found")
	}
	return child, nil
}

type mockSessionRepo struct {
	sessions    map[uuid.UUID]*entity.Session
	latest      *entity.Session
	createCalls int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (m *mockSessionRepo) Create(_ context.Context, session *entity.Session) error {
	m.createCalls++
	m.sessions[session.Id] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, apperror.NotFound("session not found")
	}
	return session, nil
}

func (m *mockSessionRepo) GetLatestByChildID(_ context.Context, _ uuid.UUID) (*entity.Session, error) {
	return m.latest, nil
}

type linkKey struct{ user, child uuid.UUID }

type mockLinkRepo struct {
	links       map[linkKey]bool
	order       []uuid.UUID
	createErr   error
	createCalls int
}

func newMockLinkRepo() *mockLinkRepo {
	return &mockLinkRepo{links: make(map[linkKey]bool)}
}

func (m *mockLinkRepo) CreateLink(_ context.Context, link *entity.UserChild) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.links[linkKey{link.UserId, link.ChildId}] = true
	m.order = append(m.order, link.ChildId)
	return nil
}

func (m *mockLinkRepo) HasLink(_ context.Context, userId, childId uuid.UUID) (bool, error) {
	return m.links[linkKey{userId, childId}], nil
}

func (m *mockLinkRepo) ListChildIDs(_ context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(m.order))
	for _, childId := range m.order {
		if m.links[linkKey{userId, childId}] {
			ids = append(ids, childId)
		}
	}
	return ids, nil
}

// scriptedProvider is a canned text-generation backend. Generate answers
// keyword prompts by label substring; Chat returns chatReply.
type scriptedProvider struct {
	mu        sync.Mutex
	byLabel   map[string]string
	chatReply string
	err       error
	genCalls  int
	chatCalls int
}

func (p *scriptedProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.genCalls++
	if p.err != nil {
		return "", p.err
	}
	for label, response := range p.byLabel {
		if strings.Contains(prompt, "Label: "+label) {
			return response, nil
		}
	}
	return "", errors.New("no scripted response")
}

func (p *scriptedProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chatCalls++
	if p.err != nil {
		return "", p.err
	}
	return p.chatReply, nil
}
