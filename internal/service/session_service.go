package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hri-companion-be/internal/dto"
	"hri-companion-be/internal/entity"
	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/internal/pkg/logger"
	"hri-companion-be/internal/repository/contract"
	"hri-companion-be/pkg/events"
	"hri-companion-be/pkg/llm"
	"hri-companion-be/pkg/textgen"
)

// companionSystemPrompt frames every session prompt generation.
const companionSystemPrompt = "You are a compassionate social companion robot supporting autistic children. " +
	"Using the child profile and today's context below, write a short, warm opening prompt the robot " +
	"should say to start the session. Speak directly to the child in simple language suited to their " +
	"communication level. Gently acknowledge their mood, avoid their triggers, lean on their interests, " +
	"and steer toward their target skills."

type ISessionService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionCreateResponse, error)
	GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionDetailResponse, error)
	GetLatestForChild(ctx context.Context, userId, childId uuid.UUID) (*dto.SessionDetailResponse, error)
}

type sessionService struct {
	sessionRepo    contract.ISessionRepository
	childRepo      contract.IChildRepository
	linkRepo       contract.IUserChildRepository
	generator      *textgen.Adapter
	eventPublisher *events.Publisher
	log            logger.ILogger
}

func NewSessionService(
	sessionRepo contract.ISessionRepository,
	childRepo contract.IChildRepository,
	linkRepo contract.IUserChildRepository,
	generator *textgen.Adapter,
	eventPublisher *events.Publisher,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		childRepo:      childRepo,
		linkRepo:       linkRepo,
		generator:      generator,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionCreateResponse, error) {
	// 1. Resolve the child through the caller's ownership link. A missing
	// or foreign child fails here, before any generation or write.
	child, err := s.resolveOwnedChild(ctx, userId, req.ChildId)
	if err != nil {
		return nil, err
	}

	// 2. Generate the session prompt from profile plus today's context.
	prompt, err := s.generator.GeneratePrompt(ctx, companionSystemPrompt, buildPromptMessages(child, req))
	if err != nil {
		return nil, err
	}

	// 3. Persist the session row.
	now := time.Now().UTC().Truncate(time.Second)
	session := &entity.Session{
		Id:          uuid.New(),
		ChildId:     child.Id,
		Mood:        entity.Mood(req.Mood),
		Environment: req.Environment,
		Situation:   req.Situation,
		Prompt:      prompt,
		CreatedAt:   now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeSessionCreated, map[string]interface{}{
		"session_id": session.Id.String(),
		"child_id":   child.Id.String(),
		"user_id":    userId.String(),
	})

	return &dto.SessionCreateResponse{
		SessionId: session.Id,
		Prompt:    session.Prompt,
		CreatedAt: session.CreatedAt,
	}, nil
}

func (s *sessionService) GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionDetailResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	// Ownership is checked through the session's child.
	owns, err := s.linkRepo.HasLink(ctx, userId, session.ChildId)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperror.NotFound("session not found")
	}

	response := toSessionDetailResponse(session)
	return &response, nil
}

func (s *sessionService) GetLatestForChild(ctx context.Context, userId, childId uuid.UUID) (*dto.SessionDetailResponse, error) {
	owns, err := s.linkRepo.HasLink(ctx, userId, childId)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperror.NotFound("child not found")
	}

	session, err := s.sessionRepo.GetLatestByChildID(ctx, childId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("no sessions found for child")
	}

	response := toSessionDetailResponse(session)
	return &response, nil
}

func (s *sessionService) resolveOwnedChild(ctx context.Context, userId, childId uuid.UUID) (*entity.Child, error) {
	owns, err := s.linkRepo.HasLink(ctx, userId, childId)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperror.NotFound("child not found")
	}
	return s.childRepo.GetByID(ctx, childId)
}

// buildPromptMessages renders the child profile and today's context as two
// user messages under the fixed system instruction.
func buildPromptMessages(child *entity.Child, req *dto.CreateSessionRequest) []llm.Message {
	profile := fmt.Sprintf(
		"Child profile:\n"+
			"- nickname: %s\n"+
			"- age: %d\n"+
			"- communication level: %s\n"+
			"- personality: %s\n"+
			"- triggers: %s\n"+
			"- interests: %s\n"+
			"- target skills: %s",
		child.Nickname, child.Age, child.CommLevel, child.Personality,
		child.Triggers, child.Interests, child.TargetSkills)

	today := fmt.Sprintf(
		"Today's context:\n"+
			"- mood: %s\n"+
			"- environment: %s\n"+
			"- situation: %s",
		req.Mood, req.Environment, req.Situation)

	return []llm.Message{
		{Role: "user", Content: profile},
		{Role: "user", Content: today},
	}
}

func (s *sessionService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("session", "failed to publish event", map[string]interface{}{
			"event": eventType, "error": err.Error(),
		})
	}
}

func toSessionDetailResponse(session *entity.Session) dto.SessionDetailResponse {
	return dto.SessionDetailResponse{
		SessionId:   session.Id,
		ChildId:     session.ChildId,
		Mood:        string(session.Mood),
		Environment: session.Environment,
		Situation:   session.Situation,
		Prompt:      session.Prompt,
		CreatedAt:   session.CreatedAt,
	}
}
