package mlengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"ml-lifecycle-service/internal/core/domain"
	"ml-lifecycle-service/internal/core/ports/output"
)

// Client talks to the managed ML platform's management and prediction
// REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// do issues one API call. A non-2xx status maps to notFound for 404,
// conflict for 409, and a generic error otherwise. The decoded body
// lands in out when out is non-nil.
func (c *Client) do(ctx context.Context, method, apiPath string, body, out interface{}, notFound, conflict error) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+apiPath, reqBody)
	if err != nil {
		return fmt.Errorf("create platform request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound && notFound != nil:
		return notFound
	case resp.StatusCode == http.StatusConflict && conflict != nil:
		return conflict
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("platform returned %s: %s", resp.Status, bytes.TrimSpace(payload))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode platform response: %w", err)
	}
	return nil
}

// logPayloadError surfaces an error payload embedded in an otherwise
// successful response. The API reports partial failures this way;
// they are not fatal to the caller.
func logPayloadError(where string, e *apiError) {
	if e == nil {
		return
	}
	log.WithFields(log.Fields{"call": where, "code": e.Code}).Warn(e.Message)
}

func modelsPath(project string) string {
	return fmt.Sprintf("projects/%s/models", url.PathEscape(project))
}

func modelPath(project, model string) string {
	return modelsPath(project) + "/" + url.PathEscape(model)
}

func versionsPath(project, model string) string {
	return modelPath(project, model) + "/versions"
}

func versionPath(project, model, version string) string {
	return versionsPath(project, model) + "/" + url.PathEscape(version)
}

func (c *Client) ListModels(ctx context.Context, project string) ([]*domain.Model, error) {
	var models []*domain.Model
	pageToken := ""
	for {
		p := modelsPath(project)
		if pageToken != "" {
			p += "?pageToken=" + url.QueryEscape(pageToken)
		}

		var resp listModelsResponse
		if err := c.do(ctx, http.MethodGet, p, nil, &resp, nil, nil); err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		logPayloadError("models.list", resp.Error)

		for i := range resp.Models {
			models = append(models, resp.Models[i].toDomain())
		}
		if resp.NextPageToken == "" {
			return models, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (c *Client) GetModel(ctx context.Context, project, name string) (*domain.Model, error) {
	var payload modelPayload
	err := c.do(ctx, http.MethodGet, modelPath(project, name), nil, &payload, domain.ErrModelNotFound, nil)
	if err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

func (c *Client) CreateModel(ctx context.Context, project string, model *domain.Model) error {
	payload := modelPayload{
		Name:                    model.Name,
		Description:             model.Description,
		Regions:                 model.Regions,
		OnlinePredictionLogging: model.OnlinePredictionLogging,
		Labels:                  model.Labels,
	}
	return c.do(ctx, http.MethodPost, modelsPath(project), payload, nil, nil, domain.ErrModelAlreadyExists)
}

// DeleteModel completes on acceptance; the platform returns no
// operation handle for model deletion.
func (c *Client) DeleteModel(ctx context.Context, project, name string) error {
	var resp deleteModelResponse
	err := c.do(ctx, http.MethodDelete, modelPath(project, name), nil, &resp, domain.ErrModelNotFound, nil)
	if err != nil {
		return err
	}
	logPayloadError("models.delete", resp.Error)
	return nil
}

func (c *Client) ListVersions(ctx context.Context, project, model string) ([]*domain.Version, error) {
	var versions []*domain.Version
	pageToken := ""
	for {
		p := versionsPath(project, model)
		if pageToken != "" {
			p += "?pageToken=" + url.QueryEscape(pageToken)
		}

		var resp listVersionsResponse
		if err := c.do(ctx, http.MethodGet, p, nil, &resp, domain.ErrModelNotFound, nil); err != nil {
			return nil, fmt.Errorf("list versions: %w", err)
		}
		logPayloadError("versions.list", resp.Error)

		for i := range resp.Versions {
			versions = append(versions, resp.Versions[i].toDomain(model))
		}
		if resp.NextPageToken == "" {
			return versions, nil
		}
		pageToken = resp.NextPageToken
	}
}

func (c *Client) GetVersion(ctx context.Context, project, model, version string) (*domain.Version, error) {
	var payload versionPayload
	err := c.do(ctx, http.MethodGet, versionPath(project, model, version), nil, &payload, domain.ErrVersionNotFound, nil)
	if err != nil {
		return nil, err
	}
	return payload.toDomain(model), nil
}

func (c *Client) CreateVersion(ctx context.Context, project, model string, version *domain.Version) (*domain.Operation, error) {
	var op operationPayload
	err := c.do(ctx, http.MethodPost, versionsPath(project, model), versionToPayload(version), &op,
		domain.ErrModelNotFound, domain.ErrVersionAlreadyExists)
	if err != nil {
		return nil, err
	}
	return op.toDomain(), nil
}

// DeleteVersion is asynchronous: the response body is the operation to
// poll for completion.
func (c *Client) DeleteVersion(ctx context.Context, project, model, version string) (*domain.Operation, error) {
	var op operationPayload
	err := c.do(ctx, http.MethodDelete, versionPath(project, model, version), nil, &op, domain.ErrVersionNotFound, nil)
	if err != nil {
		return nil, err
	}
	return op.toDomain(), nil
}

func (c *Client) SetDefaultVersion(ctx context.Context, project, model, version string) error {
	return c.do(ctx, http.MethodPost, versionPath(project, model, version)+":setDefault", nil, nil,
		domain.ErrVersionNotFound, nil)
}

func (c *Client) GetOperation(ctx context.Context, name string) (*domain.Operation, error) {
	var op operationPayload
	if err := c.do(ctx, http.MethodGet, name, nil, &op, domain.ErrOperationNotFound, nil); err != nil {
		return nil, err
	}
	return op.toDomain(), nil
}

func (c *Client) SubmitJob(ctx context.Context, project string, job *domain.TrainingJob) (*domain.TrainingJob, error) {
	p := fmt.Sprintf("projects/%s/jobs", url.PathEscape(project))

	var payload jobPayload
	if err := c.do(ctx, http.MethodPost, p, jobToPayload(job), &payload, nil, nil); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

func (c *Client) GetJob(ctx context.Context, project, id string) (*domain.TrainingJob, error) {
	p := fmt.Sprintf("projects/%s/jobs/%s", url.PathEscape(project), url.PathEscape(id))

	var payload jobPayload
	if err := c.do(ctx, http.MethodGet, p, nil, &payload, domain.ErrJobNotFound, nil); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

func (c *Client) Predict(ctx context.Context, project, model, version string, instances [][]float64) ([]ports.Prediction, error) {
	p := modelPath(project, model)
	if version != "" {
		p = versionPath(project, model, version)
	}
	p += ":predict"

	var resp predictResponse
	err := c.do(ctx, http.MethodPost, p, predictRequest{Instances: instances}, &resp, domain.ErrModelNotFound, nil)
	if err != nil {
		return nil, err
	}
	logPayloadError("predict", resp.Error)

	predictions := make([]ports.Prediction, 0, len(resp.Predictions))
	for i := range resp.Predictions {
		predictions = append(predictions, resp.Predictions[i].toDomain())
	}
	return predictions, nil
}

// Ensure interface compliance
var _ ports.PlatformClient = (*Client)(nil)
