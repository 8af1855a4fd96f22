package exporting

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-cli/pkg/log"
	"github.com/xuri/excelize/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

var priorityColumns = []string{"id", "name", "status", "effective_status"}

// Request descreve um bulk export
type Request struct {
	Kind   domain.EntityKind
	Status string
	File   string
}

// Result é o que o comando devolve após gravar o arquivo
type Result struct {
	File   string `json:"file"`
	Format string `json:"format"`
	Count  int    `json:"count"`
}

// Document é o conteúdo do arquivo JSON exportado
type Document struct {
	Data       []any  `json:"data"`
	ExportedAt string `json:"exported_at"`
	Count      int    `json:"count"`
}

type ExportService interface {
	Export(ctx context.Context, req Request) (*Result, error)
}

type Service struct {
	lister EntityLister
	now    func() time.Time
}

func NewService(lister EntityLister) ExportService {
	return &Service{lister: lister, now: time.Now}
}

func (s *Service) Export(ctx context.Context, req Request) (*Result, error) {
	switch req.Kind {
	case domain.KindCampaign, domain.KindAdSet, domain.KindAd:
	default:
		return nil, apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid type %q: must be campaigns, adsets or ads.", req.Kind).WithDetail("field", "type")
	}
	if strings.TrimSpace(req.File) == "" {
		return nil, apiErrors.New(apiErrors.ErrMissingRequiredField, "An output file is required (--file).").WithDetail("field", "file")
	}

	format := FormatFromPath(req.File)

	entities, err := s.lister.ListAllEntities(ctx, req.Kind, req.Status)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		err = writeXLSX(req.File, string(req.Kind), entities)
	default:
		err = s.writeJSON(req.File, entities)
	}
	if err != nil {
		return nil, apiErrors.Wrap(err, apiErrors.ErrOperationFailed, "Failed to write export file.").WithDetail("file", req.File)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"type":   req.Kind,
		"file":   req.File,
		"format": format,
		"count":  len(entities),
	}).Info("Exportação concluída")

	return &Result{File: req.File, Format: format, Count: len(entities)}, nil
}

// FormatFromPath escolhe o formato pela extensão; qualquer extensão diferente de .xlsx gera JSON
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatJSON
}

func (s *Service) writeJSON(path string, entities []any) error {
	doc := Document{
		Data:       entities,
		ExportedAt: s.now().UTC().Format(time.RFC3339),
		Count:      len(entities),
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "falha ao serializar exportação")
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return errors.WithMessagef(err, "falha ao gravar %s", path)
	}
	return nil
}

func writeXLSX(path, sheet string, entities []any) error {
	rows, columns, err := toRows(entities)
	if err != nil {
		return err
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.WithMessage(err, "falha ao escrever cabeçalho")
	}

	for ri, row := range rows {
		record := make([]any, len(columns))
		for ci, column := range columns {
			record[ci] = cellValue(row[column])
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		if err := xl.SetSheetRow(sheet, cellRef, &record); err != nil {
			return errors.WithMessagef(err, "falha ao escrever linha %d", ri+2)
		}
	}

	if err := xl.SaveAs(path); err != nil {
		return errors.WithMessagef(err, "falha ao gravar %s", path)
	}
	return nil
}

// toRows converte as entidades para mapas pelo JSON delas e devolve as colunas na ordem da planilha
func toRows(entities []any) ([]map[string]any, []string, error) {
	rows := make([]map[string]any, 0, len(entities))
	seen := map[string]struct{}{}

	for _, entity := range entities {
		encoded, err := json.Marshal(entity)
		if err != nil {
			return nil, nil, errors.WithMessage(err, "falha ao serializar entidade")
		}
		row := map[string]any{}
		if err := json.Unmarshal(encoded, &row); err != nil {
			return nil, nil, errors.WithMessage(err, "falha ao converter entidade")
		}
		for key := range row {
			seen[key] = struct{}{}
		}
		rows = append(rows, row)
	}

	return rows, orderColumns(seen), nil
}

func orderColumns(keys map[string]struct{}) []string {
	columns := make([]string, 0, len(keys))
	for _, key := range priorityColumns {
		if _, ok := keys[key]; ok {
			columns = append(columns, key)
		}
	}

	rest := make([]string, 0, len(keys))
	for key := range keys {
		if !isPriority(key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)

	return append(columns, rest...)
}

func isPriority(key string) bool {
	for _, p := range priorityColumns {
		if p == key {
			return true
		}
	}
	return false
}

// cellValue mantém escalares e serializa objetos/listas como JSON
func cellValue(v any) any {
	switch v.(type) {
	case nil:
		return ""
	case string, float64, bool:
		return v
	}
	encoded, err := json.MarshalToString(v)
	if err != nil {
		return ""
	}
	return encoded
}
