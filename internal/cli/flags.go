package cli

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// listFlags são as flags comuns às listagens
type listFlags struct {
	limit  int
	after  string
	all    bool
	fields string
	status string
}

func addListFlags(cmd *cobra.Command, f *listFlags, withStatus bool) {
	cmd.Flags().IntVarP(&f.limit, "limit", "l", domain.DefaultPageSize, "Page size")
	cmd.Flags().StringVar(&f.after, "after", "", "Cursor returned in meta.pagination.cursor")
	cmd.Flags().BoolVar(&f.all, "all", false, "Fetch every page (up to 100 pages)")
	cmd.Flags().StringVar(&f.fields, "fields", "", "Comma-separated fields to fetch")
	if withStatus {
		cmd.Flags().StringVarP(&f.status, "status", "s", "", "Filter by status (ACTIVE, PAUSED, ARCHIVED; comma-separated)")
	}
}

func (f *listFlags) options(kind domain.EntityKind) (domain.ListOptions, error) {
	if f.all && f.after != "" {
		return domain.ListOptions{}, apiErrors.New(apiErrors.ErrInvalidParameter, "--after cannot be combined with --all.")
	}
	if f.limit <= 0 {
		return domain.ListOptions{}, apiErrors.Newf(apiErrors.ErrInvalidParameter, "--limit must be positive, got %d.", f.limit).
			WithDetail("field", "limit")
	}

	fields, err := parseFields(f.fields, kind)
	if err != nil {
		return domain.ListOptions{}, err
	}

	return domain.ListOptions{
		Limit:  f.limit,
		After:  f.after,
		All:    f.all,
		Fields: fields,
		Status: strings.ToUpper(strings.TrimSpace(f.status)),
	}, nil
}

// parseFields valida --fields contra o catálogo da entidade; vazio usa os campos padrão
func parseFields(csv string, kind domain.EntityKind) (domain.FieldSet, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	return domain.ParseFieldSet(csv, domain.FieldsFor(kind))
}

func addFieldsFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "fields", "", "Comma-separated fields to fetch")
}

// optionalString devolve nil quando a flag não foi informada, para updates parciais
func optionalString(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// optionalFloat idem, para filtros numéricos de insights
func optionalFloat(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return utils.Float64Ptr(value)
}

// parseJSONFlag decodifica flags como --targeting e --object-story-spec
func parseJSONFlag(name, raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var out map[string]any
	if err := json.UnmarshalFromString(raw, &out); err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrInvalidParameter, "--"+name+" must be a JSON object.").
			WithDetail("field", name)
	}
	return out, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// budgetFlag devolve o orçamento em centavos como string; "" quando a flag não foi informada
func budgetFlag(cmd *cobra.Command, name string, cents int64) (string, error) {
	if !cmd.Flags().Changed(name) {
		return "", nil
	}
	if cents <= 0 {
		return "", apiErrors.Newf(apiErrors.ErrInvalidParameter, "--%s must be a positive amount in cents.", name).WithDetail("field", name)
	}
	return strconv.FormatInt(cents, 10), nil
}
