package models

import "time"

// IntRange represents an inclusive integer range; a nil bound is open
type IntRange struct {
	From *int `json:"from,omitempty"`
	To   *int `json:"to,omitempty"`
}

// FloatRange represents an inclusive decimal range; a nil bound is open
type FloatRange struct {
	From *float64 `json:"from,omitempty"`
	To   *float64 `json:"to,omitempty"`
}

// DateRange represents an inclusive date range; a nil bound is open
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// FilterCriteria is a sparse set of constraints over the case collection.
// Every field is optional; an absent field imposes no constraint on that
// dimension. Populated dimensions combine with logical AND.
type FilterCriteria struct {
	Search string `json:"search,omitempty"`

	States           []string `json:"states,omitempty"`
	Courts           []string `json:"courts,omitempty"`
	PIIAffected      []string `json:"pii_affected,omitempty"`
	CausesOfBreach   []string `json:"causes_of_breach,omitempty"`
	ClassTypes       []string `json:"class_types,omitempty"`
	SettlementTypes  []string `json:"settlement_types,omitempty"`
	DefenseCounsel   []string `json:"defense_counsel,omitempty"`
	PlaintiffCounsel []string `json:"plaintiff_counsel,omitempty"`
	Judges           []string `json:"judges,omitempty"`

	YearRange             *IntRange   `json:"year_range,omitempty"`
	SettlementAmountRange *FloatRange `json:"settlement_amount_range,omitempty"`
	ClassSizeRange        *IntRange   `json:"class_size_range,omitempty"`

	IsMultiDistrictLitigation *bool `json:"is_multi_district_litigation,omitempty"`
	HasMinorSubclass          *bool `json:"has_minor_subclass,omitempty"`
	CreditMonitoring          *bool `json:"credit_monitoring,omitempty"`
}

// TrendMetric selects the statistic computed per time bucket
type TrendMetric string

const (
	MetricAvgSettlement    TrendMetric = "avg_settlement"
	MetricTotalSettlement  TrendMetric = "total_settlement"
	MetricCaseCount        TrendMetric = "case_count"
	MetricAvgClassSize     TrendMetric = "avg_class_size"
	MetricMedianSettlement TrendMetric = "median_settlement"
)

// TimeGrouping selects the bucket granularity for trend aggregation
type TimeGrouping string

const (
	GroupByYear    TimeGrouping = "year"
	GroupByQuarter TimeGrouping = "quarter"
	GroupByMonth   TimeGrouping = "month"
)

// TrendConfig configures a trend computation
type TrendConfig struct {
	Metric       TrendMetric    `json:"metric"`
	TimeGrouping TimeGrouping   `json:"time_grouping"`
	DateRange    *DateRange     `json:"date_range,omitempty"`
	Criteria     FilterCriteria `json:"criteria"`
}

// TrendDataPoint is one time bucket of a trend series
type TrendDataPoint struct {
	Period string    `json:"period"`
	Value  float64   `json:"value"`
	Count  int       `json:"count"`
	Date   time.Time `json:"date"` // first day of the bucket, used for ordering
}

// AggregateStatistics summarizes settlement amounts over a case collection.
// Derived fresh on every call, never persisted.
type AggregateStatistics struct {
	Count              int     `json:"count"`
	Mean               float64 `json:"mean"`
	Median             float64 `json:"median"`
	Min                float64 `json:"min"`
	Max                float64 `json:"max"`
	Total              float64 `json:"total"`
	AveragePerClaimant float64 `json:"average_per_claimant"`
}

// SettlementOverview bundles the aggregate statistics with the Yes/No
// frequency breakdowns and averages over optional fields shown on the
// dashboard. All percentages are 0-100, full precision.
type SettlementOverview struct {
	Statistics AggregateStatistics `json:"statistics"`

	AttorneyFeesFromFundPct   float64 `json:"attorney_fees_from_fund_pct"`
	ClassRepAwardsFromFundPct float64 `json:"class_rep_awards_from_fund_pct"`
	ClaimsAdminFromFundPct    float64 `json:"claims_admin_from_fund_pct"`
	CreditMonitoringPct       float64 `json:"credit_monitoring_pct"`
	SettlementCappedPct       float64 `json:"settlement_capped_pct"`
	MultiDistrictPct          float64 `json:"multi_district_pct"`
	MinorSubclassPct          float64 `json:"minor_subclass_pct"`
	ProRataAdjustmentPct      float64 `json:"pro_rata_adjustment_pct"`

	AvgAttorneyFeesPercentage    float64 `json:"avg_attorney_fees_percentage"`
	AvgLodestarAmount            float64 `json:"avg_lodestar_amount"`
	AvgMultiplier                float64 `json:"avg_multiplier"`
	AvgProRataAmount             float64 `json:"avg_pro_rata_amount"`
	AvgSupplementalReimbursement float64 `json:"avg_supplemental_reimbursement"`
	AvgCreditMonitoringAmount    float64 `json:"avg_credit_monitoring_amount"`
	AvgInjunctiveReliefAmount    float64 `json:"avg_injunctive_relief_amount"`
}

// CategoryCount is one row of an injunctive-relief category breakdown
type CategoryCount struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ReliefBreakdown is the injunctive-relief report over a case collection
type ReliefBreakdown struct {
	TableVersion string          `json:"table_version"`
	Categories   []CategoryCount `json:"categories"`
	OtherRelief  []string        `json:"other_relief"`
}

// TagCount is one row of a literal tag tally
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
