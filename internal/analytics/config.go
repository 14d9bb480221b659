// Package analytics 学业风险与预测分析引擎。
// 全部为纯函数：输入出勤/成绩快照与一份显式 Config，输出派生结果，
// 不读写任何外部状态，同样的输入永远得到同样的输出。
package analytics

import (
	"errors"
	"fmt"
	"math"
)

// WeightSumTolerance 三项权重之和允许的误差
const WeightSumTolerance = 0.01

// lowStabilityCutoff 稳定性低于该值时在风险原因中追加一致性因素
const lowStabilityCutoff = 40

// Config 一次分析调用的全部参数。各端不再各自写死常数，
// 由设置层（全局配置+教师覆盖）统一解析后传入。
type Config struct {
	MinAttendance    float64 // 最低出勤率，百分比，默认75
	PassMarks        float64 // 及格加权分，加权总分口径，默认20
	ModerateBand     float64 // Moderate 档的缓冲带宽度（百分点），默认10
	MaxTest1         float64
	MaxTest2         float64
	MaxAssignment    float64
	Test1Weight      float64
	Test2Weight      float64
	AssignmentWeight float64
}

func DefaultConfig() Config {
	return Config{
		MinAttendance:    75,
		PassMarks:        20,
		ModerateBand:     10,
		MaxTest1:         30,
		MaxTest2:         30,
		MaxAssignment:    40,
		Test1Weight:      0.3,
		Test2Weight:      0.3,
		AssignmentWeight: 0.4,
	}
}

var (
	ErrWeightSum    = errors.New("weightage must sum to 1.0")
	ErrWeightRange  = errors.New("each weight must be within [0, 1]")
	ErrThreshold    = errors.New("thresholds must be within [0, 100]")
	ErrComponentMax = errors.New("component max marks must be positive")
)

// Validate 配置坏了会悄悄污染所有下游分数，必须在设置入口拒绝。
func (c Config) Validate() error {
	for _, w := range []float64{c.Test1Weight, c.Test2Weight, c.AssignmentWeight} {
		if w < 0 || w > 1 {
			return ErrWeightRange
		}
	}
	sum := c.Test1Weight + c.Test2Weight + c.AssignmentWeight
	if math.Abs(sum-1.0) > WeightSumTolerance {
		return fmt.Errorf("%w: got %.3f", ErrWeightSum, sum)
	}
	if c.MinAttendance < 0 || c.MinAttendance > 100 {
		return ErrThreshold
	}
	if c.ModerateBand < 0 || c.ModerateBand > 100 {
		return ErrThreshold
	}
	if c.MaxTest1 <= 0 || c.MaxTest2 <= 0 || c.MaxAssignment <= 0 {
		return ErrComponentMax
	}
	if c.PassMarks < 0 || c.PassMarks > c.MaxWeightedTotal() {
		return fmt.Errorf("pass marks %.1f out of range [0, %.1f]", c.PassMarks, c.MaxWeightedTotal())
	}
	return nil
}

// MaxWeightedTotal 加权满分
func (c Config) MaxWeightedTotal() float64 {
	return c.MaxTest1*c.Test1Weight + c.MaxTest2*c.Test2Weight + c.MaxAssignment*c.AssignmentWeight
}

// PassPercent 及格线换算成百分比口径，供风险分档使用
func (c Config) PassPercent() float64 {
	max := c.MaxWeightedTotal()
	if max <= 0 {
		return 0
	}
	return clampPct(c.PassMarks / max * 100)
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
