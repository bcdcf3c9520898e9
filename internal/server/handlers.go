package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prepwise/backend/internal/attempts"
	"github.com/prepwise/backend/internal/construct"
	"github.com/prepwise/backend/internal/planner"
	"github.com/prepwise/backend/internal/store"
)

type submitAttemptRequest struct {
	QuestionID      string `json:"question_id" binding:"required"`
	SubmittedAnswer string `json:"submitted_answer" binding:"required"`
	TimeSpentSec    int    `json:"time_spent_sec" binding:"min=0"`
	ContextType     string `json:"context_type" binding:"required"`
	ContextID       string `json:"context_id"`
	ModuleID        string `json:"module_id"`
}

type submitAttemptResponse struct {
	AttemptID string   `json:"attempt_id"`
	IsCorrect bool     `json:"is_correct"`
	ErrorTags []string `json:"error_tags"`
}

func (s *Server) handleSubmitAttempt(c *gin.Context) {
	var req submitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.attempts.Submit(c.Request.Context(), userID(c), attempts.SubmitRequest{
		QuestionID:      req.QuestionID,
		SubmittedAnswer: req.SubmittedAnswer,
		TimeSpentSec:    req.TimeSpentSec,
		ContextType:     req.ContextType,
		ContextID:       req.ContextID,
		ModuleID:        req.ModuleID,
	})
	if err != nil {
		if errors.Is(err, attempts.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
			return
		}
		s.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submitAttemptResponse{
		AttemptID: res.AttemptID,
		IsCorrect: res.IsCorrect,
		ErrorTags: emptyIfNil(res.ErrorTags),
	})
}

type planResponse struct {
	CycleID        string         `json:"cycle_id"`
	Status         string         `json:"status"`
	TaskCount      int            `json:"task_count"`
	DaysRemaining  int            `json:"days_remaining"`
	WeakSkillCount int            `json:"weak_skill_count"`
	Counts         map[string]int `json:"counts"`
	Tasks          []taskResponse `json:"tasks"`
}

type taskResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Sequence    int        `json:"sequence"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func toPlanResponse(cycle *store.Cycle) planResponse {
	resp := planResponse{
		CycleID:        cycle.ID,
		Status:         cycle.Status,
		TaskCount:      cycle.TaskCount,
		DaysRemaining:  cycle.DaysRemaining,
		WeakSkillCount: cycle.WeakSkillCount,
		Counts: map[string]int{
			"focused-drill": cycle.Counts.FocusedDrill,
			"mixed-drill":   cycle.Counts.MixedDrill,
			"mock":          cycle.Counts.Mock,
			"flashcard":     cycle.Counts.Flashcard,
			"review":        cycle.Counts.Review,
		},
		Tasks: make([]taskResponse, 0, len(cycle.Tasks)),
	}
	for _, t := range cycle.Tasks {
		resp.Tasks = append(resp.Tasks, taskResponse{
			ID:          t.ID,
			Type:        t.Type,
			Sequence:    t.Sequence,
			Status:      t.Status,
			CompletedAt: t.CompletedAt,
		})
	}
	return resp
}

func (s *Server) handleGeneratePlan(c *gin.Context) {
	res, err := s.planner.Generate(c.Request.Context(), userID(c))
	if err != nil {
		var pe *planner.PreconditionError
		if errors.As(err, &pe) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          "profile incomplete",
				"missing_fields": pe.MissingFields,
			})
			return
		}
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPlanResponse(res.Cycle))
}

func (s *Server) handleCurrentPlan(c *gin.Context) {
	cycle, err := s.store.Repos().Plans.LatestCycle(c.Request.Context(), userID(c))
	if err != nil {
		s.serverError(c, err)
		return
	}
	if cycle == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no plan cycle"})
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(cycle))
}

func (s *Server) handleCompleteTask(c *gin.Context) {
	task, err := s.store.Repos().Plans.CompleteTask(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		s.serverError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, taskResponse{
		ID:          task.ID,
		Type:        task.Type,
		Sequence:    task.Sequence,
		Status:      task.Status,
		CompletedAt: task.CompletedAt,
	})
}

type skillResponse struct {
	SkillID         string     `json:"skill_id"`
	AttemptCount    int        `json:"attempt_count"`
	CorrectCount    int        `json:"correct_count"`
	Accuracy        float64    `json:"accuracy"`
	AvgTimeSec      float64    `json:"avg_time_sec"`
	MasteryLevel    string     `json:"mastery_level"`
	LastAttemptedAt *time.Time `json:"last_attempted_at,omitempty"`
}

func (s *Server) handleListSkills(c *gin.Context) {
	states, err := s.store.Repos().Skills.ListByUser(c.Request.Context(), userID(c))
	if err != nil {
		s.serverError(c, err)
		return
	}

	out := make([]skillResponse, 0, len(states))
	for _, st := range states {
		resp := skillResponse{
			SkillID:      st.SkillID,
			AttemptCount: st.AttemptCount,
			CorrectCount: st.CorrectCount,
			Accuracy:     st.Accuracy,
			AvgTimeSec:   st.AvgTimeSec,
			MasteryLevel: string(st.Level),
		}
		if !st.LastAttemptedAt.IsZero() {
			t := st.LastAttemptedAt
			resp.LastAttemptedAt = &t
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, gin.H{"skills": out})
}

type constructResponse struct {
	Construct   string  `json:"construct"`
	DisplayName string  `json:"display_name"`
	Score       float64 `json:"score"`
	Confidence  float64 `json:"confidence"`
	Trend       string  `json:"trend"`
	DataPoints  int     `json:"data_points"`
}

func (s *Server) handleListConstructs(c *gin.Context) {
	states, err := s.store.Repos().Constructs.ListByUser(c.Request.Context(), userID(c))
	if err != nil {
		s.serverError(c, err)
		return
	}

	out := make([]constructResponse, 0, len(states))
	for _, st := range states {
		out = append(out, constructResponse{
			Construct:   st.Construct,
			DisplayName: construct.DisplayName(construct.Construct(st.Construct)),
			Score:       st.Score,
			Confidence:  st.Confidence,
			Trend:       string(st.Trend),
			DataPoints:  st.DataPoints,
		})
	}
	c.JSON(http.StatusOK, gin.H{"constructs": out})
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.DB().PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) serverError(c *gin.Context, err error) {
	s.log.Error("request failed", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
