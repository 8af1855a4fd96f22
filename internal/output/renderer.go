package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// maxAutoColumns limita as colunas geradas automaticamente no modo tabela
const maxAutoColumns = 6

var priorityColumns = []string{"id", "name", "status", "effective_status"}

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	dimColor     = color.New(color.Faint)
)

// Renderer escreve o envelope em stdout (JSON ou tabela); mensagens e erros de tabela vão para stderr
type Renderer struct {
	Format  string
	Verbose bool
	Quiet   bool
	Fields  []string // --output-fields
	Columns []string // colunas explícitas do modo tabela

	Out    io.Writer
	ErrOut io.Writer
}

func (r *Renderer) Render(env Envelope) error {
	if success, ok := env.(Success); ok && len(r.Fields) > 0 {
		projected, err := Project(success.Data, r.Fields)
		if err != nil {
			return err
		}
		success.Data = projected
		env = success
	}

	if r.Format == FormatTable {
		return r.renderTable(env)
	}
	return r.renderJSON(env)
}

func (r *Renderer) renderJSON(env Envelope) error {
	encoded, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "encode envelope")
	}

	_, err = fmt.Fprintln(r.Out, string(encoded))
	return err
}

func (r *Renderer) renderTable(env Envelope) error {
	switch typed := env.(type) {
	case Failure:
		r.renderError(typed.Error)
		return nil
	case Success:
		return r.renderData(typed.Data)
	}
	return nil
}

func (r *Renderer) renderData(data any) error {
	generic, err := toGeneric(data)
	if err != nil {
		return err
	}

	switch typed := generic.(type) {
	case nil:
		warnColor.Fprintln(r.Out, "No data to display.")
	case []any:
		if len(typed) == 0 {
			warnColor.Fprintln(r.Out, "No results found.")
			return nil
		}
		columns := r.Columns
		if len(columns) == 0 {
			columns = AutoColumns(typed[0])
		}
		r.renderRows(typed, columns)
	case map[string]any:
		r.renderKeyValue(typed)
	default:
		fmt.Fprintln(r.Out, formatValue(typed))
	}
	return nil
}

func (r *Renderer) newTable() *tablewriter.Table {
	table := tablewriter.NewWriter(r.Out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func (r *Renderer) renderRows(rows []any, columns []string) {
	table := r.newTable()

	headers := make([]string, len(columns))
	for i, column := range columns {
		headers[i] = headerColor.Sprint(FormatHeader(column))
	}
	table.SetHeader(headers)

	for _, row := range rows {
		object, _ := row.(map[string]any)
		values := make([]string, len(columns))
		for i, column := range columns {
			values[i] = formatValue(nestedValue(object, column))
		}
		table.Append(values)
	}

	table.Render()
}

func (r *Renderer) renderKeyValue(object map[string]any) {
	table := r.newTable()

	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sortColumns(keys)

	for _, key := range keys {
		table.Append([]string{color.New(color.Bold).Sprint(key), formatValue(object[key])})
	}

	table.Render()
}

func (r *Renderer) renderError(body ErrorBody) {
	errorColor.Fprintf(r.ErrOut, "Error: %s\n", body.Code)
	color.New(color.FgRed).Fprintln(r.ErrOut, body.Message)

	if suggestion, ok := body.Details["suggestion"].(string); ok && suggestion != "" {
		warnColor.Fprintf(r.ErrOut, "\nSuggestion: %s\n", suggestion)
	}
	if body.RetryAfter != nil {
		warnColor.Fprintf(r.ErrOut, "\nRetry after: %d seconds\n", *body.RetryAfter)
	}

	if r.Verbose {
		rest := make(map[string]any, len(body.Details))
		for key, value := range body.Details {
			if key != "suggestion" {
				rest[key] = value
			}
		}
		if len(rest) > 0 {
			encoded, _ := json.MarshalIndent(rest, "", "  ")
			dimColor.Fprintf(r.ErrOut, "\nDetails:\n%s\n", encoded)
		}
	}
}

// Success escreve uma confirmação em stderr, exceto com --quiet
func (r *Renderer) Success(message string) {
	if !r.Quiet {
		successColor.Fprintln(r.ErrOut, "✓ "+message)
	}
}

// Warn escreve um aviso em stderr, mesmo com --quiet
func (r *Renderer) Warn(message string) {
	warnColor.Fprintln(r.ErrOut, "⚠ "+message)
}

// AutoColumns escolhe até seis colunas: id, name, status, effective_status e depois ordem alfabética
func AutoColumns(sample any) []string {
	object, ok := sample.(map[string]any)
	if !ok {
		return []string{"value"}
	}

	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sortColumns(keys)

	if len(keys) > maxAutoColumns {
		keys = keys[:maxAutoColumns]
	}
	return keys
}

func sortColumns(keys []string) {
	rank := func(key string) int {
		for i, p := range priorityColumns {
			if p == key {
				return i
			}
		}
		return len(priorityColumns)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
}

// FormatHeader transforma effective_status em "Effective Status"
func FormatHeader(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// nestedValue aceita caminhos com ponto, como creative.id
func nestedValue(object map[string]any, path string) any {
	var current any = object
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return dimColor.Sprint("-")
	case bool:
		if typed {
			return successColor.Sprint("Yes")
		}
		return color.New(color.FgRed).Sprint("No")
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case string:
		switch typed {
		case "ACTIVE":
			return successColor.Sprint(typed)
		case "PAUSED":
			return warnColor.Sprint(typed)
		case "DELETED", "ARCHIVED":
			return color.New(color.FgRed).Sprint(typed)
		}
		return typed
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			if _, nested := item.(map[string]any); nested {
				encoded, _ := json.MarshalToString(item)
				parts = append(parts, encoded)
				continue
			}
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		encoded, _ := json.MarshalToString(typed)
		return encoded
	}
}
