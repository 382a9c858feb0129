package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"hri-companion-be/internal/dto"
	"hri-companion-be/internal/entity"
	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/internal/pkg/logger"
	"hri-companion-be/internal/repository/contract"
	"hri-companion-be/pkg/events"
	"hri-companion-be/pkg/textgen"
)

type IChildService interface {
	CreateChild(ctx context.Context, userId uuid.UUID, req *dto.CreateChildRequest) (*dto.ChildCreateResponse, error)
	GetChild(ctx context.Context, userId, childId uuid.UUID) (*dto.ChildDetailResponse, error)
	ListChildren(ctx context.Context, userId uuid.UUID) ([]dto.ChildDetailResponse, error)
}

type childService struct {
	childRepo      contract.IChildRepository
	linkRepo       contract.IUserChildRepository
	generator      *textgen.Adapter
	childCache     *cache.Cache
	eventPublisher *events.Publisher
	log            logger.ILogger
}

func NewChildService(
	childRepo contract.IChildRepository,
	linkRepo contract.IUserChildRepository,
	generator *textgen.Adapter,
	childCache *cache.Cache,
	eventPublisher *events.Publisher,
	log logger.ILogger,
) IChildService {
	return &childService{
		childRepo:      childRepo,
		linkRepo:       linkRepo,
		generator:      generator,
		childCache:     childCache,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *childService) CreateChild(ctx context.Context, userId uuid.UUID, req *dto.CreateChildRequest) (*dto.ChildCreateResponse, error) {
	// 1. Normalize the three free-text notes into keyword strings. All
	// three calls run before any row is written, so a generation failure
	// leaves the spreadsheet untouched.
	keywords, err := s.generator.GenerateKeywords(ctx, []textgen.KeywordRequest{
		{Label: "triggers", RawText: req.TriggersRaw},
		{Label: "interests", RawText: req.InterestsRaw},
		{Label: "target_skills", RawText: req.TargetSkillsRaw},
	})
	if err != nil {
		return nil, err
	}

	// 2. Persist the profile row, then the ownership link. The two writes
	// are not atomic: a crash between them leaves a child row no user can
	// reach.
	now := time.Now().UTC().Truncate(time.Second)
	child := &entity.Child{
		Id:              uuid.New(),
		Nickname:        req.Nickname,
		Age:             *req.Age,
		CommLevel:       entity.CommunicationLevel(req.CommLevel),
		Personality:     entity.Personality(req.Personality),
		TriggersRaw:     req.TriggersRaw,
		Triggers:        keywords["triggers"],
		InterestsRaw:    req.InterestsRaw,
		Interests:       keywords["interests"],
		TargetSkillsRaw: req.TargetSkillsRaw,
		TargetSkills:    keywords["target_skills"],
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.childRepo.Create(ctx, child); err != nil {
		return nil, err
	}

	link := &entity.UserChild{UserId: userId, ChildId: child.Id, CreatedAt: now}
	if err := s.linkRepo.CreateLink(ctx, link); err != nil {
		s.log.Warn("child", "ownership link write failed; child row is orphaned", map[string]interface{}{
			"child_id": child.Id.String(),
			"user_id":  userId.String(),
			"error":    err.Error(),
		})
		return nil, err
	}

	// Profiles are immutable after creation, so the cache never goes stale.
	s.childCache.Set(child.Id.String(), child, cache.DefaultExpiration)

	s.publish(ctx, events.TypeChildCreated, map[string]interface{}{
		"child_id": child.Id.String(),
		"user_id":  userId.String(),
	})

	return &dto.ChildCreateResponse{
		ChildId:      child.Id,
		Nickname:     child.Nickname,
		Age:          child.Age,
		Triggers:     child.Triggers,
		Interests:    child.Interests,
		TargetSkills: child.TargetSkills,
		CreatedAt:    child.CreatedAt,
		UpdatedAt:    child.UpdatedAt,
	}, nil
}

func (s *childService) GetChild(ctx context.Context, userId, childId uuid.UUID) (*dto.ChildDetailResponse, error) {
	owns, err := s.linkRepo.HasLink(ctx, userId, childId)
	if err != nil {
		return nil, err
	}
	if !owns {
		// Same response whether the child does not exist or belongs to
		// someone else.
		return nil, apperror.NotFound("child not found")
	}

	child, err := s.getChildCached(ctx, childId)
	if err != nil {
		return nil, err
	}
	response := toChildDetailResponse(child)
	return &response, nil
}

func (s *childService) ListChildren(ctx context.Context, userId uuid.UUID) ([]dto.ChildDetailResponse, error) {
	childIds, err := s.linkRepo.ListChildIDs(ctx, userId)
	if err != nil {
		return nil, err
	}

	children := make([]dto.ChildDetailResponse, 0, len(childIds))
	for _, childId := range childIds {
		child, err := s.getChildCached(ctx, childId)
		if err != nil {
			// A link whose child row is missing is a dangling reference,
			// not a reason to fail the whole listing.
			if apperror.IsCode(err, apperror.CodeNotFound) {
				s.log.Warn("child", "link references missing child row", map[string]interface{}{
					"child_id": childId.String(),
					"user_id":  userId.String(),
				})
				continue
			}
			return nil, err
		}
		children = append(children, toChildDetailResponse(child))
	}
	return children, nil
}

func (s *childService) getChildCached(ctx context.Context, childId uuid.UUID) (*entity.Child, error) {
	if cached, found := s.childCache.Get(childId.String()); found {
		if child, ok := cached.(*entity.Child); ok {
			return child, nil
		}
	}

	child, err := s.childRepo.GetByID(ctx, childId)
	if err != nil {
		return nil, err
	}
	s.childCache.Set(childId.String(), child, cache.DefaultExpiration)
	return child, nil
}

func (s *childService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("child", "failed to publish event", map[string]interface{}{
			"event": eventType, "error": err.Error(),
		})
	}
}

func toChildDetailResponse(child *entity.Child) dto.ChildDetailResponse {
	return dto.ChildDetailResponse{
		ChildId:         child.Id,
		Nickname:        child.Nickname,
		Age:             child.Age,
		CommLevel:       string(child.CommLevel),
		Personality:     string(child.Personality),
		TriggersRaw:     child.TriggersRaw,
		Triggers:        child.Triggers,
		InterestsRaw:    child.InterestsRaw,
		Interests:       child.Interests,
		TargetSkillsRaw: child.TargetSkillsRaw,
		TargetSkills:    child.TargetSkills,
		CreatedAt:       child.CreatedAt,
		UpdatedAt:       child.UpdatedAt,
	}
}
