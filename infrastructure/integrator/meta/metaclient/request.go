package metaclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
)

// usageWarningPct é o consumo a partir do qual avisamos sobre throttling iminente
const usageWarningPct = 80

// Get executa uma leitura; o token vai na query string.
// Um access_token explícito em params prevalece sobre o configurado
func (c *MetaClient) Get(ctx context.Context, endpoint string, params url.Values, out any) error {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	if query.Get("access_token") == "" {
		query.Set("access_token", c.Cfg.Meta.AccessToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint)+"?"+query.Encode(), nil)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar a requisição")
		return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to build request.")
	}

	return c.do(ctx, req, endpoint, out)
}

// Post executa uma escrita com corpo form-encoded; o token vai no corpo
func (c *MetaClient) Post(ctx context.Context, endpoint string, form url.Values, out any) error {
	body := url.Values{}
	for key, values := range form {
		body[key] = values
	}
	body.Set("access_token", c.Cfg.Meta.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint), strings.NewReader(body.Encode()))
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar a requisição")
		return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to build request.")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(ctx, req, endpoint, out)
}

// PostMultipart envia campos e um arquivo opcional como multipart/form-data
func (c *MetaClient) PostMultipart(ctx context.Context, endpoint string, fields map[string]string, file *FileUpload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("access_token", c.Cfg.Meta.AccessToken); err != nil {
		return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to build upload.")
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to build upload.")
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to build upload.")
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to read upload file.")
		}
	}

	if err := writer.Close(); err != nil {
		return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to build upload.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(endpoint), &buf)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar a requisição")
		return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to build request.")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(ctx, req, endpoint, out)
}

func (c *MetaClient) endpointURL(endpoint string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.Cfg.Meta.URL, "/"), strings.TrimLeft(endpoint, "/"))
}

func (c *MetaClient) do(ctx context.Context, req *http.Request, endpoint string, out any) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"method":   req.Method,
		"endpoint": endpoint,
	})

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		redactURLError(err)
		logger.WithError(err).Debug("Erro ao fazer a requisição")
		return apiErrors.FromError(err)
	}
	defer resp.Body.Close()

	usage := metadomain.ParseBusinessUseCaseUsage(resp.Header.Get(metadomain.BusinessUseCaseUsageHeader))
	c.setRateLimit(usage)

	fields := log.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if usage != nil {
		fields["usage_pct"] = usage.UsagePct
		if usage.UsagePct >= usageWarningPct {
			logger.Warnf("Consumo de rate limit em %.0f%%", usage.UsagePct)
		}
	}
	logger.WithFields(fields).Debug("Resposta da Graph API")

	body, err := c.HandleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		logger.WithError(err).Error("Erro ao decodificar JSON")
		return apiErrors.Wrap(err, apiErrors.ErrUnknown, "Unable to decode Meta API response.")
	}

	return nil
}

// HandleResponse lê o corpo e converte erros da Graph API, que podem vir inclusive com HTTP 200
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apiErrors.FromError(err)
	}

	if errorResp, ok := ParseErrorResponse(body); ok {
		return nil, apiErrors.FromMetaError(errorResp.Error)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apiErrors.New(apiErrors.ErrAPIError, "").
			WithDetail("http_status", resp.StatusCode).
			WithDetail("body", truncate(string(body), 500))
	}

	return body, nil
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(trimmed, &errorResp); err != nil || errorResp.Error == nil {
		return nil, false
	}

	return &errorResp, true
}

// redactURLError remove o access_token da URL presente em *url.Error
func redactURLError(err error) {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return
	}

	parsed, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		urlErr.URL = "<redacted>"
		return
	}

	query := parsed.Query()
	if query.Has("access_token") {
		query.Set("access_token", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	urlErr.URL = parsed.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
