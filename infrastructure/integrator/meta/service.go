package meta

import (
	"context"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	metadomain "github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-cli/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-cli/internal/config"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

// MetaIntegrator é o repositório de entidades da Graph API sobre o metaclient.Client
type MetaIntegrator struct {
	cfg       *config.Config
	Client    metaclient.Client
	validator *validator.Validate
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return paramName(field.Name)
	})

	return &MetaIntegrator{
		cfg:       cfg,
		Client:    client,
		validator: v,
	}
}

// accountID retorna a conta configurada já normalizada para act_<id>
func (s *MetaIntegrator) accountID() (string, error) {
	id := domain.NormalizeAccountID(s.cfg.Meta.AccountID)
	if id == "" {
		return "", apiErrors.New(apiErrors.ErrInvalidAccountID, "No ad account configured.")
	}
	return id, nil
}

func (s *MetaIntegrator) validate(params any) error {
	err := s.validator.Struct(params)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apiErrors.Wrap(err, apiErrors.ErrInvalidParameter, err.Error())
	}

	first := validationErrors[0]
	code := apiErrors.ErrInvalidParameter
	if strings.HasPrefix(first.Tag(), "required") {
		code = apiErrors.ErrMissingRequiredField
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, getValidationErrorMessage(fe))
	}

	return apiErrors.New(code, strings.Join(messages, "; ")).WithDetail("field", first.Field())
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "required_without":
		return err.Field() + " is required when " + paramName(err.Param()) + " is not provided"
	case "required_with":
		return err.Field() + " is required together with " + paramName(err.Param())
	case "excluded_with":
		return err.Field() + " cannot be used together with " + paramName(err.Param())
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "numeric":
		return err.Field() + " must contain only numbers"
	default:
		return err.Field() + " is invalid"
	}
}

// paramName converte o nome do campo Go no nome do parâmetro da Graph API (AdSetID -> adset_id)
func paramName(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.ReplaceAll(b.String(), "ad_set", "adset")
}

func pageSize(opts domain.ListOptions) int {
	switch {
	case opts.All:
		return domain.WalkPageSize
	case opts.Limit > 0:
		return opts.Limit
	}
	return domain.DefaultPageSize
}

// list busca uma página (ou todas, com opts.All) de uma aresta da Graph API
func list[T any](ctx context.Context, client metaclient.Client, endpoint string, params url.Values, opts domain.ListOptions) (*domain.ListResult[T], error) {
	size := strconv.Itoa(pageSize(opts))

	fetch := func(ctx context.Context, cursor string) (*metadomain.ListResponse[T], error) {
		query := url.Values{}
		for k, v := range params {
			query[k] = v
		}
		query.Set("limit", size)
		if cursor == "" {
			cursor = opts.After
		}
		if cursor != "" {
			query.Set("after", cursor)
		}

		var resp metadomain.ListResponse[T]
		if err := client.Get(ctx, endpoint, query, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	}

	if opts.All {
		data, err := Walk(ctx, func(ctx context.Context, cursor string) (*Page[T], error) {
			resp, err := fetch(ctx, cursor)
			if err != nil {
				return nil, err
			}
			return &Page[T]{Data: resp.Data, NextCursor: resp.Paging.NextCursor()}, nil
		}, DefaultMaxPages)
		if err != nil {
			return nil, err
		}
		return &domain.ListResult[T]{Data: data}, nil
	}

	resp, err := fetch(ctx, "")
	if err != nil {
		return nil, err
	}

	result := &domain.ListResult[T]{Data: resp.Data}
	if result.Data == nil {
		result.Data = make([]T, 0)
	}
	if next := resp.Paging.NextCursor(); next != "" {
		result.Paging = &domain.PaginationMeta{HasNext: true, Cursor: next}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"endpoint": endpoint,
		"count":    len(result.Data),
		"has_next": result.Paging != nil,
	}).Debug("Listagem concluída")

	return result, nil
}

// get busca um único objeto pelo ID com os campos informados
func get[T any](ctx context.Context, client metaclient.Client, id string, fields domain.FieldSet) (*T, error) {
	params := url.Values{}
	if len(fields) > 0 {
		params.Set("fields", fields.String())
	}

	var out T
	if err := client.Get(ctx, id, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// mutate envia o formulário e retorna o ID criado ou atualizado
func (s *MetaIntegrator) mutate(ctx context.Context, endpoint string, form url.Values) (string, error) {
	var resp metadomain.MutationResponse
	if err := s.Client.Post(ctx, endpoint, form, &resp); err != nil {
		return "", err
	}

	if resp.ID == "" && !resp.Success {
		return "", apiErrors.Newf(apiErrors.ErrOperationFailed, "Graph API did not confirm the operation on %s.", endpoint)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"endpoint": endpoint,
		"id":       resp.ID,
	}).Info("Operação de escrita concluída")

	return resp.ID, nil
}

func fieldsOrDefault(fields, defaults domain.FieldSet) domain.FieldSet {
	if len(fields) > 0 {
		return fields
	}
	return defaults
}

func setIf(form url.Values, key, value string) {
	if value != "" {
		form.Set(key, value)
	}
}

func setPtr(form url.Values, key string, value *string) {
	if value != nil {
		form.Set(key, *value)
	}
}

func setJSON(form url.Values, key string, value any) error {
	encoded, err := utils.JSONString(value)
	if err != nil {
		return apiErrors.Wrap(err, apiErrors.ErrInvalidParameter, "Invalid JSON value for "+key+".")
	}
	form.Set(key, encoded)
	return nil
}

// statusFilter monta o filtering da Graph API; ads filtram por effective_status, os demais por status
func statusFilter(params url.Values, field, status string) {
	if status == "" {
		return
	}

	values := strings.Split(strings.ToUpper(status), ",")
	filtering, _ := utils.JSONString([]map[string]any{
		{"field": field, "operator": "IN", "value": values},
	})
	params.Set("filtering", filtering)
}

func defaultStatus(status string) string {
	if status == "" {
		return domain.StatusPaused
	}
	return status
}
