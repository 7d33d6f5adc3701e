package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sitesafe-engine-go/internal/logging"
	"sitesafe-engine-go/internal/models"
	"sitesafe-engine-go/internal/services"
	"sitesafe-engine-go/internal/services/classifier"
)

const maxUploadBytes = 10 << 20

type UploadsHandler struct {
	container *services.ServiceContainer
}

func NewUploadsHandler(container *services.ServiceContainer) *UploadsHandler {
	return &UploadsHandler{container: container}
}

type ClassifyResponse struct {
	Assessment models.BatchAssessment `json:"assessment"`
	Alert      models.Alert           `json:"alert"`
}

type ClassifyDetectionsRequest struct {
	AssetID      string             `json:"asset_id"`
	SiteLocation string             `json:"site_location,omitempty"`
	Detections   []models.Detection `json:"detections"`
}

type ClassifyDetectionsResponse struct {
	Assessment models.ViolationAssessment `json:"assessment"`
	Alert      models.Alert               `json:"alert"`
}

// ClassifyUpload godoc
// @Summary Classify an upload batch
// @Description Run the external PPE detector over every uploaded image, classify the detections and ingest one batch alert into the feed. An unreachable detector classifies each file as compliant.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Image files"
// @Param site_location formData string false "Site location"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /uploads [post]
func (h *UploadsHandler) ClassifyUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart payload"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no files uploaded"})
		return
	}

	batchID := c.PostForm("batch_id")
	if batchID == "" {
		batchID = "upload-" + time.Now().UTC().Format("20060102T150405.000")
	}

	fileDetections := make([]classifier.FileDetections, 0, len(files))
	for _, header := range files {
		if header.Size > maxUploadBytes || !isImage(header.Header.Get("Content-Type")) {
			logging.Warn(c).Str("file", header.Filename).Msg("Skipping non-image or oversized file")
			fileDetections = append(fileDetections, classifier.FileDetections{FileName: header.Filename})
			continue
		}

		file, err := header.Open()
		if err != nil {
			logging.Warn(c).Err(err).Str("file", header.Filename).Msg("Could not open uploaded file")
			fileDetections = append(fileDetections, classifier.FileDetections{FileName: header.Filename})
			continue
		}

		detections := h.container.Detector.DetectBestEffort(c.Request.Context(), header.Filename, file)
		file.Close()

		fileDetections = append(fileDetections, classifier.FileDetections{
			FileName:   header.Filename,
			Detections: detections,
		})
	}

	assessment, err := h.container.Classifier.ClassifyBatch(batchID, fileDetections)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	assessment.SiteLocation = c.PostForm("site_location")

	alert, err := h.container.Factory.FromBatch(assessment)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.container.Feed.Ingest(alert)

	logging.Info(c).
		Str("batch_id", batchID).
		Int("files", assessment.CheckedFiles).
		Int("violating_classes", len(assessment.Union)).
		Msg("Upload batch classified")

	c.JSON(http.StatusOK, ClassifyResponse{Assessment: assessment, Alert: alert})
}

// ClassifyDetections godoc
// @Summary Classify pre-computed detections
// @Description Classify a detector's output for one asset without re-running inference and ingest the resulting alert
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body ClassifyDetectionsRequest true "Asset detections"
// @Success 200 {object} ClassifyDetectionsResponse
// @Failure 400 {object} ErrorResponse
// @Router /uploads/detections [post]
func (h *UploadsHandler) ClassifyDetections(c *gin.Context) {
	var req ClassifyDetectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid detections payload"})
		return
	}

	assessment, err := h.container.Classifier.Classify(req.AssetID, req.Detections)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	assessment.SiteLocation = req.SiteLocation

	alert, err := h.container.Factory.FromViolation(assessment)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.container.Feed.Ingest(alert)

	c.JSON(http.StatusOK, ClassifyDetectionsResponse{Assessment: assessment, Alert: alert})
}

func isImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
