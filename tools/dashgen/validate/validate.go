// Package validate checks generated dashboards and rule files: every query
// must parse as PromQL and reference only metrics the engine exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/property-market-engine/tools/dashgen/rules"
)

// histogramSuffixes are the series a histogram expands into.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation; warnings are
// reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were recorded.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// panelJSON is the subset of a panel the validator inspects. Row panels
// carry their children in Panels.
type panelJSON struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
	Panels []panelJSON `json:"panels"`
}

// Dashboard validates every query target in the dashboard.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}

	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	for _, p := range doc.Panels {
		res.merge(checkPanel(p, known))
	}
	return res
}

func checkPanel(p panelJSON, known map[string]bool) Result {
	var res Result

	if p.Type == "row" || len(p.Panels) > 0 {
		for _, child := range p.Panels {
			res.merge(checkPanel(child, known))
		}
		return res
	}

	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", p.Title))
		return res
	}
	for _, t := range p.Targets {
		res.merge(Expr(fmt.Sprintf("panel %q", p.Title), t.Expr, known))
	}
	return res
}

// Rules validates every expression in a PrometheusRule. Recorded series
// names must themselves be known so dashboards can reference them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Alert
			if r.Record != "" {
				name = r.Record
				if !known[r.Record] {
					res.Errors = append(res.Errors,
						fmt.Sprintf("rule %q: recorded series is not a known metric", r.Record))
				}
			}
			res.merge(Expr(fmt.Sprintf("rule %q", name), r.Expr, known))
		}
	}
	return res
}

// Expr parses a single PromQL expression and checks the metric names it
// selects. where identifies the expression in messages.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	if strings.TrimSpace(expr) == "" {
		res.Errors = append(res.Errors, where+": empty expression")
		return res
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", where, err))
		return res
	}

	for _, name := range selectedMetrics(node) {
		if !isKnown(name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, name))
		}
	}
	return res
}

func selectedMetrics(node parser.Node) []string {
	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
