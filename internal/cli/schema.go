package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/apiErrors"
)

const (
	schemaAll         = "all"
	schemaFields      = "fields"
	schemaVideoFields = "video_fields"
	schemaBreakdowns  = "breakdowns"
	schemaDatePresets = "date_presets"
	schemaActions     = "actions"
	schemaObjectives  = "objectives"
)

var schemaTopics = []string{schemaAll, schemaFields, schemaVideoFields, schemaBreakdowns, schemaDatePresets, schemaActions, schemaObjectives}

func newSchemaCommand(app *App) *cobra.Command {
	var format, level string

	cmd := &cobra.Command{
		Use:   "schema [" + strings.Join(schemaTopics, "|") + "]",
		Short: "Describe insight fields, breakdowns, date presets, action types and objectives",
		Example: `  meta-ads schema fields --level ad
  meta-ads schema breakdowns
  meta-ads schema --format compact`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := schemaAll
			if len(args) > 0 {
				topic = strings.ReplaceAll(strings.ToLower(args[0]), "-", "_")
			}
			if !containsString(schemaTopics, topic) {
				return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Unknown schema topic %q.", args[0]).
					WithDetail("available", schemaTopics)
			}

			lvl, err := domain.ParseLevel(strings.ToLower(level))
			if err != nil {
				return err
			}

			var data map[string]any
			switch strings.ToLower(format) {
			case "json":
				data = schemaDocument(topic, lvl)
			case "compact":
				data = schemaCompact(topic, lvl)
			default:
				return apiErrors.Newf(apiErrors.ErrInvalidParameter, "Invalid --format %q: must be json or compact.", format).
					WithDetail("field", "format")
			}

			return app.Render(cmd.Context(), data, nil)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Detail level: json (descriptions) or compact (names only)")
	cmd.Flags().StringVar(&level, "level", string(domain.LevelAd), "Insight level for the fields topic")

	return cmd
}

func wants(topic, section string) bool {
	return topic == schemaAll || topic == section
}

// schemaDocument descreve cada tópico com descrições e dicas de uso
func schemaDocument(topic string, level domain.Level) map[string]any {
	out := map[string]any{}

	if wants(topic, schemaFields) {
		out[schemaFields] = map[string]any{
			"level":     level,
			"available": domain.InsightFieldsFor(level),
			"note":      "Pass a subset with --fields to limit the metrics fetched",
		}
	}
	if wants(topic, schemaVideoFields) {
		out[schemaVideoFields] = map[string]any{
			"available": domain.VideoFieldInfo(),
			"note":      "Request with --video-metrics",
		}
	}
	if wants(topic, schemaBreakdowns) {
		out[schemaBreakdowns] = map[string]any{
			"available": domain.Breakdowns,
			"usage":     "Use --breakdowns age,gender to break down by multiple dimensions",
			"combinations": []string{
				"age,gender - Demographics",
				"country,region - Geography",
				"publisher_platform,platform_position - Placement",
				"age,gender,publisher_platform - Multi-dimensional",
			},
		}
	}
	if wants(topic, schemaDatePresets) {
		out[schemaDatePresets] = map[string]any{
			"available":      domain.DatePresets,
			"usage":          "Use --date-preset last_7d or --since 2024-01-01 --until 2024-01-07",
			"compare_format": "Use --compare last_7d:previous_7d for non-overlapping period comparison",
		}
	}
	if wants(topic, schemaActions) {
		out[schemaActions] = map[string]any{
			"conversion_priority": domain.ConversionActions,
			"all_types":           domain.ActionTypes,
			"note":                "result_type is the first match in conversion_priority order",
		}
	}
	if wants(topic, schemaObjectives) {
		out[schemaObjectives] = map[string]any{
			"available":                   domain.Objectives,
			"objective_to_action_mapping": domain.ObjectiveToAction,
			"note":                        "Use --objective to pick the primary result from each campaign objective",
		}
	}

	return out
}

// schemaCompact devolve só os nomes de cada tópico
func schemaCompact(topic string, level domain.Level) map[string]any {
	out := map[string]any{}

	if wants(topic, schemaFields) {
		out[schemaFields] = fieldNames(domain.InsightFieldsFor(level))
	}
	if wants(topic, schemaVideoFields) {
		out[schemaVideoFields] = fieldNames(domain.VideoFieldInfo())
	}
	if wants(topic, schemaBreakdowns) {
		names := make([]string, 0, len(domain.Breakdowns))
		for _, b := range domain.Breakdowns {
			names = append(names, b.Name)
		}
		out[schemaBreakdowns] = names
	}
	if wants(topic, schemaDatePresets) {
		out[schemaDatePresets] = domain.DatePresets
	}
	if wants(topic, schemaActions) {
		out[schemaActions] = domain.ConversionActions
	}
	if wants(topic, schemaObjectives) {
		names := make([]string, 0, len(domain.Objectives))
		for _, o := range domain.Objectives {
			names = append(names, o.Name)
		}
		out[schemaObjectives] = names
	}

	return out
}

func fieldNames(fields []domain.FieldInfo) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
