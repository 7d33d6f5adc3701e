package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"sitesafe-engine-go/internal/logging"
	"sitesafe-engine-go/internal/models"
	"sitesafe-engine-go/internal/services"
	ws "sitesafe-engine-go/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard is served from another origin in development
	CheckOrigin: func(r *http.Request) bool { return true },
}

type AlertsHandler struct {
	container *services.ServiceContainer
}

func NewAlertsHandler(container *services.ServiceContainer) *AlertsHandler {
	return &AlertsHandler{container: container}
}

type AlertsResponse struct {
	Alerts []models.Alert `json:"alerts"`
	Total  int            `json:"total"`
}

type AlertStatsResponse struct {
	Total      int            `json:"total"`
	Capacity   int            `json:"capacity"`
	BySeverity map[string]int `json:"by_severity"`
	BySource   map[string]int `json:"by_source"`
	AsOf       time.Time      `json:"as_of"`
}

// List godoc
// @Summary Live alert feed
// @Description Return the current newest-first alert feed snapshot
// @Tags alerts
// @Accept json
// @Produce json
// @Success 200 {object} AlertsResponse
// @Router /alerts [get]
func (h *AlertsHandler) List(c *gin.Context) {
	alerts := h.container.Feed.List()
	c.JSON(http.StatusOK, AlertsResponse{Alerts: alerts, Total: len(alerts)})
}

// Stats godoc
// @Summary Alert feed statistics
// @Description Aggregate counts over the current feed by severity and source
// @Tags alerts
// @Accept json
// @Produce json
// @Success 200 {object} AlertStatsResponse
// @Router /alerts/stats [get]
func (h *AlertsHandler) Stats(c *gin.Context) {
	alerts := h.container.Feed.List()

	stats := AlertStatsResponse{
		Total:      len(alerts),
		Capacity:   h.container.Feed.Capacity(),
		BySeverity: make(map[string]int),
		BySource:   make(map[string]int),
		AsOf:       time.Now().UTC(),
	}
	for _, alert := range alerts {
		stats.BySeverity[string(alert.Severity)]++
		stats.BySource[string(alert.SourceType)]++
	}

	c.JSON(http.StatusOK, stats)
}

// Reconcile godoc
// @Summary Reconcile the alert feed
// @Description Purge stale alerts, persist a snapshot and return the authoritative feed for subscribers that missed pushes
// @Tags alerts
// @Accept json
// @Produce json
// @Success 200 {object} AlertsResponse
// @Router /alerts/reconcile [post]
func (h *AlertsHandler) Reconcile(c *gin.Context) {
	alerts := h.container.Notifier.Reconcile(c.Request.Context())
	c.JSON(http.StatusOK, AlertsResponse{Alerts: alerts, Total: len(alerts)})
}

// Stream godoc
// @Summary Live alert stream
// @Description Upgrade to a WebSocket that first delivers the full feed snapshot, then every ingested alert as it arrives
// @Tags alerts
// @Success 101 {string} string "Switching Protocols"
// @Router /alerts/ws [get]
func (h *AlertsHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn(c).Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.container.Hub, conn)
	h.container.Hub.RegisterClient(client)

	// Late joiners replace their view with the current feed first
	client.SendSnapshot(h.container.Feed.List())

	go client.WritePump()
	go client.ReadPump()
}
