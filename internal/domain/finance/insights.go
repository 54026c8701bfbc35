package finance

import (
	"fmt"
	"math"
)

// Tone is the visual treatment of an insight line.
type Tone string

const (
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneSuccess Tone = "success"
	ToneMuted   Tone = "muted"
	ToneGold    Tone = "gold"
)

// Insight is a short headline with a detail line and an icon.
type Insight struct {
	Title  string
	Detail string
	Icon   string
	Tone   Tone
}

// SavingsInsight classifies a savings rate (percent of income).
func SavingsInsight(rate float64) Insight {
	switch {
	case rate < 0:
		return Insight{Title: "Overspending", Detail: "Expenses > Income", Icon: "ri-alarm-warning-line", Tone: ToneDanger}
	case rate < 20:
		return Insight{Title: "Low Savings", Detail: "Aim for 20%", Icon: "ri-funds-line", Tone: ToneWarning}
	default:
		return Insight{Title: "Healthy", Detail: "Good savings rate!", Icon: "ri-thumb-up-line", Tone: ToneSuccess}
	}
}

// FundStatus is the pair of status lines shown under the emergency fund.
type FundStatus struct {
	Alert      Insight
	Goal       Insight
	MonthsLeft int
}

// Status derives the threshold and goal lines for the fund. money formats
// amounts for display.
func (f EmergencyFund) Status(money func(float64) string) FundStatus {
	var st FundStatus
	if f.CurrentAmount < f.AlertThreshold {
		st.Alert = Insight{
			Title:  "Alert",
			Detail: fmt.Sprintf("Your fund is BELOW the safety threshold of %s!", money(f.AlertThreshold)),
			Icon:   "ri-error-warning-line",
			Tone:   ToneDanger,
		}
	} else {
		st.Alert = Insight{
			Title:  "Healthy",
			Detail: fmt.Sprintf("You are safely above your %s threshold.", money(f.AlertThreshold)),
			Icon:   "ri-checkbox-circle-line",
			Tone:   ToneSuccess,
		}
	}

	remaining := f.TargetAmount - f.CurrentAmount
	switch {
	case remaining <= 0:
		st.Goal = Insight{Title: "Congratulations!", Detail: "You have reached your target goal!", Icon: "ri-trophy-line", Tone: ToneGold}
	case f.MonthlyGoal > 0:
		st.MonthsLeft = int(math.Ceil(remaining / f.MonthlyGoal))
		st.Goal = Insight{
			Title: "Insight",
			Detail: fmt.Sprintf("At %s/month, you will reach your goal in approximately %d months.",
				money(f.MonthlyGoal), st.MonthsLeft),
			Icon: "ri-lightbulb-line",
			Tone: ToneMuted,
		}
	default:
		st.Goal = Insight{Title: "Insight", Detail: "Set a monthly goal to see your completion timeline.", Icon: "ri-lightbulb-line", Tone: ToneMuted}
	}
	return st
}

// ComparisonInsight describes month-to-date spend against the previous month.
// money formats amounts for display.
func ComparisonInsight(c Comparison, money func(float64) string) Insight {
	diff := c.Diff()
	if diff > 0 {
		return Insight{
			Title:  money(diff) + " more",
			Detail: "than this time last month.",
			Icon:   "ri-arrow-up-line",
			Tone:   ToneDanger,
		}
	}
	return Insight{
		Title:  money(math.Abs(diff)),
		Detail: "saved compared to last month.",
		Icon:   "ri-arrow-down-line",
		Tone:   ToneSuccess,
	}
}
