package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sitesafe-engine-go/internal/logging"
	"sitesafe-engine-go/internal/models"
	"sitesafe-engine-go/internal/services"
)

type WorkersHandler struct {
	container *services.ServiceContainer
}

func NewWorkersHandler(container *services.ServiceContainer) *WorkersHandler {
	return &WorkersHandler{container: container}
}

type ScoreResponse struct {
	Assessment models.RiskAssessment `json:"assessment"`
	AlertID    string                `json:"alert_id"`
}

type ScoreBatchResponse struct {
	Scored      []ScoreResponse `json:"scored"`
	Rejected    int             `json:"rejected"`
	TotalInput  int             `json:"total_input"`
	ProcessedAt time.Time       `json:"processed_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Score godoc
// @Summary Score one worker snapshot
// @Description Compute a risk assessment for a worker snapshot and ingest the resulting alert into the live feed
// @Tags workers
// @Accept json
// @Produce json
// @Param snapshot body models.WorkerSnapshot true "Worker snapshot"
// @Success 200 {object} ScoreResponse
// @Failure 400 {object} ErrorResponse
// @Router /workers/score [post]
func (h *WorkersHandler) Score(c *gin.Context) {
	var snapshot models.WorkerSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid worker snapshot payload"})
		return
	}

	response, err := h.scoreOne(c, snapshot)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ScoreBatch godoc
// @Summary Score a batch of worker snapshots
// @Description Score every snapshot in the batch; malformed entries are dropped with a warning and never abort the rest
// @Tags workers
// @Accept json
// @Produce json
// @Param snapshots body []models.WorkerSnapshot true "Worker snapshots"
// @Success 200 {object} ScoreBatchResponse
// @Failure 400 {object} ErrorResponse
// @Router /workers/score/batch [post]
func (h *WorkersHandler) ScoreBatch(c *gin.Context) {
	var snapshots []models.WorkerSnapshot
	if err := c.ShouldBindJSON(&snapshots); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid worker snapshot batch payload"})
		return
	}

	response := ScoreBatchResponse{
		Scored:      make([]ScoreResponse, 0, len(snapshots)),
		TotalInput:  len(snapshots),
		ProcessedAt: time.Now().UTC(),
	}

	for _, snapshot := range snapshots {
		scored, err := h.scoreOne(c, snapshot)
		if err != nil {
			logging.Warn(c).Err(err).Str("worker_name", snapshot.WorkerName).Msg("Dropping malformed snapshot from batch")
			response.Rejected++
			continue
		}
		response.Scored = append(response.Scored, scored)
	}

	c.JSON(http.StatusOK, response)
}

func (h *WorkersHandler) scoreOne(c *gin.Context, snapshot models.WorkerSnapshot) (ScoreResponse, error) {
	assessment, err := h.container.Calculator.Score(snapshot)
	if err != nil {
		return ScoreResponse{}, err
	}

	alert, err := h.container.Factory.FromRisk(assessment)
	if err != nil {
		return ScoreResponse{}, err
	}

	h.container.Feed.Ingest(alert)

	logging.Info(c).
		Str("worker_id", assessment.WorkerID).
		Int("score", assessment.Score).
		Str("alert_level", string(assessment.AlertLevel)).
		Msg("Worker snapshot scored")

	return ScoreResponse{Assessment: assessment, AlertID: alert.ID}, nil
}
