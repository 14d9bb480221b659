package service

import (
	"context"
	"errors"
	"sync"

	"school_edu_backend/internal/analytics"
	"school_edu_backend/internal/config"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SettingsService 解析分析引擎参数：教师覆盖优先，否则用全局配置默认值。
// 全局默认值支持配置热更新，用读写锁保护。
type SettingsService struct {
	SettingsRepo *repository.SettingsRepository
	Redis        *redis.Client

	mu       sync.RWMutex
	defaults config.AnalyticsConfig
}

func NewSettingsService(settingsRepo *repository.SettingsRepository, rdb *redis.Client, cfg *config.Config) *SettingsService {
	return &SettingsService{
		SettingsRepo: settingsRepo,
		Redis:        rdb,
		defaults:     cfg.Analytics,
	}
}

// ReloadDefaults 配置热更新回调
func (s *SettingsService) ReloadDefaults(cfg *config.Config) {
	s.mu.Lock()
	s.defaults = cfg.Analytics
	s.mu.Unlock()
	logger.Log.Info("analytics defaults reloaded",
		zap.Float64("minAttendance", cfg.Analytics.MinAttendance),
		zap.Float64("passMarks", cfg.Analytics.PassMarks))
}

func (s *SettingsService) defaultConfig() analytics.Config {
	s.mu.RLock()
	d := s.defaults
	s.mu.RUnlock()
	return analytics.Config{
		MinAttendance:    d.MinAttendance,
		PassMarks:        d.PassMarks,
		ModerateBand:     d.ModerateBand,
		MaxTest1:         d.MaxTest1,
		MaxTest2:         d.MaxTest2,
		MaxAssignment:    d.MaxAssignment,
		Test1Weight:      d.Test1Weight,
		Test2Weight:      d.Test2Weight,
		AssignmentWeight: d.AssignmentWeight,
	}
}

// Get 教师个人设置，没有覆盖记录时返回全局默认值填充的视图
func (s *SettingsService) Get(teacherID uint) (*model.TeacherSettings, error) {
	settings, err := s.SettingsRepo.FindByTeacher(teacherID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c := s.defaultConfig()
		return &model.TeacherSettings{
			TeacherID:        teacherID,
			MinAttendance:    c.MinAttendance,
			PassMarks:        c.PassMarks,
			ModerateBand:     c.ModerateBand,
			MaxTest1:         c.MaxTest1,
			MaxTest2:         c.MaxTest2,
			MaxAssignment:    c.MaxAssignment,
			Test1Weight:      c.Test1Weight,
			Test2Weight:      c.Test2Weight,
			AssignmentWeight: c.AssignmentWeight,
		}, nil
	}
	return settings, err
}

// Update 配置坏了会污染所有下游分数，在这里整体校验后才落库；
// 成功后清掉已缓存的评估结果，避免新旧参数混用。
func (s *SettingsService) Update(settings *model.TeacherSettings) error {
	c := analytics.Config{
		MinAttendance:    settings.MinAttendance,
		PassMarks:        settings.PassMarks,
		ModerateBand:     settings.ModerateBand,
		MaxTest1:         settings.MaxTest1,
		MaxTest2:         settings.MaxTest2,
		MaxAssignment:    settings.MaxAssignment,
		Test1Weight:      settings.Test1Weight,
		Test2Weight:      settings.Test2Weight,
		AssignmentWeight: settings.AssignmentWeight,
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := s.SettingsRepo.Save(settings); err != nil {
		return err
	}

	s.InvalidateAnalyticsCache(context.Background())
	return nil
}

// Resolve 计算某科目适用的引擎参数。teacherID 为 nil（科目未指派教师）时用全局默认。
func (s *SettingsService) Resolve(teacherID *uint) analytics.Config {
	c := s.defaultConfig()
	if teacherID == nil {
		return c
	}

	settings, err := s.SettingsRepo.FindByTeacher(*teacherID)
	if err != nil {
		return c
	}

	return analytics.Config{
		MinAttendance:    settings.MinAttendance,
		PassMarks:        settings.PassMarks,
		ModerateBand:     settings.ModerateBand,
		MaxTest1:         settings.MaxTest1,
		MaxTest2:         settings.MaxTest2,
		MaxAssignment:    settings.MaxAssignment,
		Test1Weight:      settings.Test1Weight,
		Test2Weight:      settings.Test2Weight,
		AssignmentWeight: settings.AssignmentWeight,
	}
}

// InvalidateAnalyticsCache 按前缀清缓存，SCAN 避免阻塞
func (s *SettingsService) InvalidateAnalyticsCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	iter := s.Redis.Scan(ctx, 0, "analytics:*", 100).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warn("failed to invalidate analytics cache", zap.Error(err))
	}
}
