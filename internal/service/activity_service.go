package service

import (
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/pkg/logger"

	"go.uber.org/zap"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
}

func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{ActivityRepo: activityRepo}
}

// Record 操作流水只作审计用途，写失败不影响主流程，记日志即可
func (s *ActivityService) Record(actorID uint, action, target, detail string) {
	entry := &model.ActivityLog{
		ActorID: actorID,
		Action:  action,
		Target:  target,
		Detail:  detail,
	}
	if err := s.ActivityRepo.Create(entry); err != nil {
		logger.Log.Warn("failed to record activity",
			zap.String("action", action), zap.Error(err))
	}
}

func (s *ActivityService) List(action string, page, limit int) ([]model.ActivityLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ActivityRepo.List(action, page, limit)
}
