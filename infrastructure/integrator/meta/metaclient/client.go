package metaclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-cli/internal/config"
	"github.com/vfg2006/meta-ads-cli/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultTimeout é o timeout do http.Client usado nas chamadas à Graph API
const DefaultTimeout = config.DefaultHTTPTimeout

// Client é o transporte da Graph API: GET para leitura, POST form-encoded para escrita
type Client interface {
	Get(ctx context.Context, endpoint string, params url.Values, out any) error
	Post(ctx context.Context, endpoint string, form url.Values, out any) error
	PostMultipart(ctx context.Context, endpoint string, fields map[string]string, file *FileUpload, out any) error
	RateLimitInfo() *metadomain.RateLimitInfo
}

// FileUpload é o arquivo enviado como parte multipart
type FileUpload struct {
	FieldName string
	FileName  string
	Reader    io.Reader
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client

	mu        sync.Mutex
	rateLimit *metadomain.RateLimitInfo
}

func NewClient(cfg *config.Config) *MetaClient {
	timeout := cfg.Meta.HTTPTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: middleware.Logging(http.DefaultTransport),
		},
	}
}

// RateLimitInfo retorna o último consumo de rate limit informado pela Meta, se houver
func (c *MetaClient) RateLimitInfo() *metadomain.RateLimitInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rateLimit == nil {
		return nil
	}
	info := *c.rateLimit
	return &info
}

func (c *MetaClient) setRateLimit(info *metadomain.RateLimitInfo) {
	if info == nil {
		return
	}

	c.mu.Lock()
	c.rateLimit = info
	c.mu.Unlock()
}
