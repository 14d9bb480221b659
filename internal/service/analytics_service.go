package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"school_edu_backend/internal/analytics"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"
	"school_edu_backend/pkg/logger"
	"school_edu_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AnalyticsService 把仓储层的快照喂给纯函数引擎，并缓存计算结果。
// 引擎本身无状态，缓存只是省掉重复的 DB 拉取，TTL 很短，
// 且在出勤/成绩/设置变更时整体失效。
type AnalyticsService struct {
	UserRepo       *repository.UserRepository
	SubjectRepo    *repository.SubjectRepository
	AttendanceRepo *repository.AttendanceRepository
	MarkRepo       *repository.MarkRepository
	Settings       *SettingsService
	Redis          *redis.Client
	CacheTTL       time.Duration
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	subjectRepo *repository.SubjectRepository,
	attendanceRepo *repository.AttendanceRepository,
	markRepo *repository.MarkRepository,
	settings *SettingsService,
	rdb *redis.Client,
	cacheTTLSeconds int,
) *AnalyticsService {
	return &AnalyticsService{
		UserRepo:       userRepo,
		SubjectRepo:    subjectRepo,
		AttendanceRepo: attendanceRepo,
		MarkRepo:       markRepo,
		Settings:       settings,
		Redis:          rdb,
		CacheTTL:       time.Duration(cacheTTLSeconds) * time.Second,
	}
}

// StudentAnalytics 学生/家长仪表盘的完整分析视图
func (s *AnalyticsService) StudentAnalytics(studentID uint) (*model.StudentAnalytics, error) {
	cacheKey := fmt.Sprintf("analytics:student:%d", studentID)
	if cached := s.fromCache(cacheKey); cached != nil {
		var result model.StudentAnalytics
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}

	var subjects []model.Subject
	if student.DepartmentID != nil {
		subjects, err = s.SubjectRepo.FindByDepartment(*student.DepartmentID)
		if err != nil {
			return nil, err
		}
	}

	allRecords, err := s.AttendanceRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}
	markEntries, err := s.MarkRepo.FindByStudent(studentID)
	if err != nil {
		return nil, err
	}
	marksBySubject := make(map[uint]model.MarkEntry, len(markEntries))
	for _, m := range markEntries {
		marksBySubject[m.SubjectID] = m
	}
	recordsBySubject := make(map[uint][]model.AttendanceRecord)
	for _, r := range allRecords {
		recordsBySubject[r.SubjectID] = append(recordsBySubject[r.SubjectID], r)
	}

	defaults := s.Settings.Resolve(nil)

	breakdown := make([]model.SubjectBreakdown, 0, len(subjects))
	var lowest []model.SubjectBreakdown
	var marksPctSum float64
	marksCount := 0
	for _, subject := range subjects {
		cfg := s.Settings.Resolve(subject.TeacherID)
		records := recordsBySubject[subject.ID]

		row := model.SubjectBreakdown{
			SubjectID:   subject.ID,
			SubjectName: subject.Name,
			Attendance:  analytics.Summarize(records, cfg),
			Trend:       analytics.AnalyzeTrend(records),
		}
		if entry, ok := marksBySubject[subject.ID]; ok {
			summary := analytics.WeightedMarks(entry, cfg)
			row.Marks = &summary
			marksPctSum += summary.Percentage
			marksCount++
			if analytics.IsLowScoring(summary) {
				lowest = append(lowest, row)
			}
		}
		breakdown = append(breakdown, row)
	}

	// 薄弱科目按得分率升序，最差的排最前
	sort.SliceStable(lowest, func(i, j int) bool {
		return lowest[i].Marks.Percentage < lowest[j].Marks.Percentage
	})

	overall := analytics.Summarize(allRecords, defaults)
	trend := analytics.AnalyzeTrend(allRecords)

	var marksPct *float64
	if marksCount > 0 {
		avg := marksPctSum / float64(marksCount)
		marksPct = &avg
	}
	stability := -1
	if len(allRecords) >= 4 {
		stability = trend.Stability
	}
	risk := analytics.AssessRisk(overall.Percentage, marksPct, stability, defaults)
	monitoring.RiskComputations.WithLabelValues(string(risk.RiskLevel)).Inc()

	result := &model.StudentAnalytics{
		StudentID:  studentID,
		Overall:    overall,
		Trend:      trend,
		Risk:       risk,
		Subjects:   breakdown,
		LowestSubs: lowest,
	}

	s.toCache(cacheKey, result)
	return result, nil
}

// SubjectForecast 任课教师视角：一门课全班的风险清单与通过率预测
func (s *AnalyticsService) SubjectForecast(subjectID uint) ([]model.CohortStudent, model.ForecastResult, error) {
	subject, err := s.SubjectRepo.FindByID(subjectID)
	if err != nil {
		return nil, model.ForecastResult{}, util.ErrSubjectNotFound
	}
	cfg := s.Settings.Resolve(subject.TeacherID)

	students, err := s.UserRepo.FindStudentsByDepartment(subject.DepartmentID)
	if err != nil {
		return nil, model.ForecastResult{}, err
	}

	cohort := make([]model.CohortStudent, 0, len(students))
	for _, student := range students {
		records, err := s.AttendanceRepo.FindByStudentAndSubject(student.ID, subjectID)
		if err != nil {
			return nil, model.ForecastResult{}, err
		}

		summary := analytics.Summarize(records, cfg)
		trend := analytics.AnalyzeTrend(records)

		var marksPct *float64
		if entry, err := s.MarkRepo.FindByStudentAndSubject(student.ID, subjectID); err == nil {
			p := analytics.WeightedMarks(*entry, cfg).Percentage
			marksPct = &p
		}

		stability := -1
		if len(records) >= 4 {
			stability = trend.Stability
		}
		assessment := analytics.AssessRisk(summary.Percentage, marksPct, stability, cfg)
		monitoring.RiskComputations.WithLabelValues(string(assessment.RiskLevel)).Inc()

		cohort = append(cohort, model.CohortStudent{
			StudentID:      student.ID,
			Name:           student.Name,
			Assessment:     assessment,
			StabilityScore: trend.Stability,
		})
	}

	return cohort, analytics.ForecastCohort(cohort, cfg), nil
}

// DepartmentOverview 系主任报表：科目平均出勤、全系预测、风险名单
func (s *AnalyticsService) DepartmentOverview(departmentID uint) (*model.DepartmentOverview, error) {
	cacheKey := fmt.Sprintf("analytics:department:%d", departmentID)
	if cached := s.fromCache(cacheKey); cached != nil {
		var result model.DepartmentOverview
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	subjects, err := s.SubjectRepo.FindByDepartment(departmentID)
	if err != nil {
		return nil, err
	}

	subjectAverages := make(map[string]float64, len(subjects))
	for _, subject := range subjects {
		cfg := s.Settings.Resolve(subject.TeacherID)
		records, err := s.AttendanceRepo.FindBySubject(subject.ID)
		if err != nil {
			return nil, err
		}
		summary := analytics.Summarize(records, cfg)
		if summary.Percentage != nil {
			subjectAverages[subject.Name] = *summary.Percentage
		} else {
			subjectAverages[subject.Name] = 0
		}
	}

	students, err := s.UserRepo.FindStudentsByDepartment(departmentID)
	if err != nil {
		return nil, err
	}

	defaults := s.Settings.Resolve(nil)
	cohort := make([]model.CohortStudent, 0, len(students))
	var atRisk []model.CohortStudent
	for _, student := range students {
		sa, err := s.StudentAnalytics(student.ID)
		if err != nil {
			logger.Log.Warn("skipping student in department overview",
				zap.Uint("studentId", student.ID), zap.Error(err))
			continue
		}
		cs := model.CohortStudent{
			StudentID:      student.ID,
			Name:           student.Name,
			Assessment:     sa.Risk,
			StabilityScore: sa.Trend.Stability,
		}
		cohort = append(cohort, cs)
		if sa.Risk.RiskLevel == model.RiskHigh || sa.Risk.RiskLevel == model.RiskCritical {
			atRisk = append(atRisk, cs)
		}
	}

	result := &model.DepartmentOverview{
		DepartmentID:    departmentID,
		SubjectAverages: subjectAverages,
		Forecast:        analytics.ForecastCohort(cohort, defaults),
		AtRiskStudents:  atRisk,
	}

	s.toCache(cacheKey, result)
	return result, nil
}

func (s *AnalyticsService) fromCache(key string) []byte {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(context.Background(), key).Bytes()
	if err != nil {
		monitoring.CacheHits.WithLabelValues("miss").Inc()
		return nil
	}
	monitoring.CacheHits.WithLabelValues("hit").Inc()
	return data
}

func (s *AnalyticsService) toCache(key string, value interface{}) {
	if s.Redis == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), key, data, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache analytics result", zap.String("key", key), zap.Error(err))
	}
}
