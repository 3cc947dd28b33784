package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/property-market-engine/internal/engine"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAnalysis(w io.Writer, r *domain.AnalysisResult) error {
	tw := newTabWriter(w)
	tw.writef("Property:\t%s\n", r.PropertyID)
	tw.writef("Score:\t%s\n", intOrDash(r.InvestmentScore))
	tw.writef("Recommendation:\t%s\n", r.Recommendation)

	mp := r.MarketPosition
	if mp.Available {
		tw.writef("Market position:\t%s (percentile %s, %d comparables)\n",
			mp.PositionCategory, floatOrDash(mp.MarketPercentile, "%.0f"), mp.SampleSize)
		tw.writef("Median price/m²:\t%s\n", floatOrDash(mp.MedianPricePerArea, "%.2f"))
	} else {
		tw.writef("Market position:\tinsufficient data (%d comparables)\n", mp.SampleSize)
	}

	if a := r.AgentIntelligence; a != nil && a.Available {
		tw.writef("Agent:\t%s pricing, %s negotiation potential (%d listings)\n",
			a.PricingStyle, a.NegotiationPotential, a.PortfolioSize)
	}

	if m := r.MarketMomentum; m.Available {
		tw.writef("Momentum:\t%s, %s (30d %s%%)\n",
			m.MarketTemperature, m.MarketPhase, floatOrDash(m.PriceMomentum30d, "%+.1f"))
	}

	if s := r.Scarcity; s.Available {
		tw.writef("Scarcity:\t%d/100 %s (%d similar active)\n",
			s.ScarcityScore, s.ScarcityCategory, s.SimilarActiveCount)
	}

	if inv := r.InvestmentPotential; inv.Available {
		tw.writef("Gross yield:\t%s%% (rent %s, %s)\n",
			floatOrDash(inv.GrossAnnualYield, "%.2f"),
			floatOrDash(inv.EstimatedMonthlyRent, "%.0f"),
			inv.RentSource)
	}

	if missing := r.DataQuality.InsufficientDataComponents; len(missing) > 0 {
		tw.writef("Missing data:\t%s\n", strings.Join(missing, ", "))
	}
	if err := tw.finish(); err != nil {
		return err
	}

	return printBullets(w, []section{
		{"Insights", r.MarketInsights},
		{"Risks", r.RiskFactors},
		{"Actions", r.ActionItems},
	})
}

type section struct {
	title string
	items []string
}

func printBullets(w io.Writer, sections []section) error {
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s:\n", s.title); err != nil {
			return err
		}
		for _, item := range s.items {
			if _, err := fmt.Fprintf(w, "  - %s\n", item); err != nil {
				return err
			}
		}
	}
	return nil
}

func printMarket(w io.Writer, v *engine.MarketView) error {
	tw := newTabWriter(w)
	s := v.Snapshot
	tw.writef("Location:\t%s\n", s.LocationKey)
	tw.writef("Type:\t%s\n", s.PropertyType)
	tw.writef("Samples:\t%d\n", s.SampleSize)
	tw.writef("Median price/m²:\t%s\n", floatOrDash(s.MedianPricePerArea, "%.2f"))
	tw.writef("Quartiles:\t%s - %s\n",
		floatOrDash(s.LowerQuartile, "%.2f"), floatOrDash(s.UpperQuartile, "%.2f"))
	tw.writef("New listings:\t%d (30d) / %d (90d)\n", s.NewListings30d, s.NewListings90d)
	if m := v.Momentum; m.Available {
		tw.writef("Temperature:\t%s\n", m.MarketTemperature)
		tw.writef("Phase:\t%s\n", m.MarketPhase)
		tw.writef("Timing:\t%s\n", m.TimingRecommendation)
	} else {
		tw.writef("Momentum:\tinsufficient data\n")
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func floatOrDash(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
