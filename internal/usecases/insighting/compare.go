package insighting

import (
	"github.com/vfg2006/meta-ads-cli/internal/domain"
	"github.com/vfg2006/meta-ads-cli/pkg/utils"
)

// trendThreshold é a variação de custo por resultado (em %) a partir da qual a tendência muda
const trendThreshold = 10.0

type periodTotals struct {
	spend, results, impressions, clicks float64
}

func totals(items []domain.FlatInsight) periodTotals {
	var t periodTotals
	for i := range items {
		t.spend += items[i].Spend
		t.results += items[i].Results
		t.impressions += items[i].Impressions
		t.clicks += items[i].Clicks
	}
	return t
}

func (t periodTotals) costPerResult() *float64 {
	if t.results <= 0 {
		return nil
	}
	cpr := t.spend / t.results
	return &cpr
}

func (t periodTotals) ctr() float64 {
	if t.impressions <= 0 {
		return 0
	}
	return t.clicks / t.impressions * 100
}

// ChangePct é a variação percentual arredondada; com anterior zero vale 100 se houve crescimento, senão 0
func ChangePct(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

func change(current, previous float64) domain.MetricChange {
	return domain.MetricChange{
		Current:   utils.RoundWithTwoDecimalPlace(current),
		Previous:  utils.RoundWithTwoDecimalPlace(previous),
		ChangePct: ChangePct(current, previous),
	}
}

// Compare confronta os dois períodos já normalizados
func Compare(current, previous []domain.FlatInsight, plan *ComparePlan) domain.PeriodComparison {
	curr, prev := totals(current), totals(previous)
	currCPR, prevCPR := curr.costPerResult(), prev.costPerResult()

	comparison := domain.PeriodComparison{
		Spend:       change(curr.spend, prev.spend),
		Results:     change(curr.results, prev.results),
		Impressions: change(curr.impressions, prev.impressions),
		Clicks:      change(curr.clicks, prev.clicks),
		CTR:         change(curr.ctr(), prev.ctr()),
		CostPerResult: domain.NullableMetricChange{
			Current:  utils.RoundPtr(currCPR),
			Previous: utils.RoundPtr(prevCPR),
		},
		ResultType: PrimaryResultType(current),
		Trend:      trend(curr, prev, currCPR, prevCPR),
	}

	if currCPR != nil && prevCPR != nil {
		comparison.CostPerResult.ChangePct = utils.Float64Ptr(ChangePct(*currCPR, *prevCPR))
	}

	if plan != nil {
		comparison.CurrentPeriod = plan.Current.Period()
		comparison.PreviousPeriod = plan.Previous.Period()
		comparison.Warning = plan.Warning
	}
	overrideWithData(&comparison.CurrentPeriod, current)
	overrideWithData(&comparison.PreviousPeriod, previous)

	return comparison
}

// trend usa o custo por resultado (menor é melhor) e, sem ele em algum lado, o total de resultados
func trend(curr, prev periodTotals, currCPR, prevCPR *float64) string {
	if currCPR != nil && prevCPR != nil {
		cprChange := (*currCPR - *prevCPR) / *prevCPR * 100
		switch {
		case cprChange < -trendThreshold:
			return domain.TrendImproving
		case cprChange > trendThreshold:
			return domain.TrendDeclining
		}
		return domain.TrendStable
	}

	switch {
	case curr.results > prev.results:
		return domain.TrendImproving
	case curr.results < prev.results:
		return domain.TrendDeclining
	}
	return domain.TrendStable
}

// as datas devolvidas pela API prevalecem sobre as resolvidas localmente
func overrideWithData(period *domain.Period, items []domain.FlatInsight) {
	if len(items) == 0 {
		return
	}
	if items[0].DateStart != "" {
		period.Start = items[0].DateStart
	}
	if items[0].DateStop != "" {
		period.End = items[0].DateStop
	}
}
