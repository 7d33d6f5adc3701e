package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sitesafe-engine-go/internal/models"
)

// predictResponse mirrors the inference service's /predict payload
type predictResponse struct {
	TimeMS     int64              `json:"time_ms"`
	Count      int                `json:"count"`
	Detections []predictDetection `json:"detections"`
}

type predictDetection struct {
	ClassID    int        `json:"class_id"`
	ClassName  string     `json:"class_name"`
	Confidence float64    `json:"confidence"`
	BoxXYXY    [4]float64 `json:"box_xyxy"`
}

// Client talks to the external PPE inference service over HTTP. The
// service is treated as opaque: unreachability and malformed responses
// degrade to "no detections", never to an error for the caller's batch.
type Client struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewClient creates a detector client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log.With().Str("service", "detector").Logger(),
	}
}

// Detect sends one image to the inference service and returns its
// detections tagged with the asset name.
func (c *Client) Detect(ctx context.Context, assetName string, image io.Reader) ([]models.Detection, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", assetName)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("failed to copy image payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build predict request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference service returned status %d", resp.StatusCode)
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}

	detections := make([]models.Detection, 0, len(parsed.Detections))
	for _, det := range parsed.Detections {
		detections = append(detections, models.Detection{
			ClassName:  det.ClassName,
			Confidence: det.Confidence,
			BBox: models.BoundingBox{
				X1: det.BoxXYXY[0],
				Y1: det.BoxXYXY[1],
				X2: det.BoxXYXY[2],
				Y2: det.BoxXYXY[3],
			},
			AssetName: assetName,
		})
	}

	c.logger.Debug().
		Str("asset", assetName).
		Int("detections", len(detections)).
		Int64("inference_ms", parsed.TimeMS).
		Msg("Inference completed")

	return detections, nil
}

// DetectBestEffort wraps Detect, logging failures and returning an empty
// detection list so one unreachable call never aborts a batch.
func (c *Client) DetectBestEffort(ctx context.Context, assetName string, image io.Reader) []models.Detection {
	detections, err := c.Detect(ctx, assetName, image)
	if err != nil {
		c.logger.Warn().Err(err).Str("asset", assetName).Msg("Detector unavailable, treating asset as having no detections")
		return nil
	}
	return detections
}

// HealthCheck probes the inference service
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("inference service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference service returned status %d", resp.StatusCode)
	}
	return nil
}
