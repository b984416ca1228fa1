package dto

type CreateKpiRequest struct {
	ShiftID               string  `json:"shift_id"                validate:"required,uuid"`
	TechInsuranceSales    int     `json:"tech_insurance_sales"    validate:"min=0"`
	InstantInsuranceSales int     `json:"instant_insurance_sales" validate:"min=0"`
	SkyTVSales            int     `json:"sky_tv_sales"            validate:"min=0"`
	SkyBroadbandSales     int     `json:"sky_broadband_sales"     validate:"min=0"`
	SkyStreamingSales     int     `json:"sky_streaming_sales"     validate:"min=0"`
	Notes                 *string `json:"notes"`
}

type UpdateKpiRequest struct {
	TechInsuranceSales    *int    `json:"tech_insurance_sales"    validate:"omitempty,min=0"`
	InstantInsuranceSales *int    `json:"instant_insurance_sales" validate:"omitempty,min=0"`
	SkyTVSales            *int    `json:"sky_tv_sales"            validate:"omitempty,min=0"`
	SkyBroadbandSales     *int    `json:"sky_broadband_sales"     validate:"omitempty,min=0"`
	SkyStreamingSales     *int    `json:"sky_streaming_sales"     validate:"omitempty,min=0"`
	Notes                 *string `json:"notes"`
}

type KpiResponse struct {
	ID                    string  `json:"id"`
	ShiftID               string  `json:"shift_id"`
	TechInsuranceSales    int     `json:"tech_insurance_sales"`
	InstantInsuranceSales int     `json:"instant_insurance_sales"`
	SkyTVSales            int     `json:"sky_tv_sales"`
	SkyBroadbandSales     int     `json:"sky_broadband_sales"`
	SkyStreamingSales     int     `json:"sky_streaming_sales"`
	Total                 int     `json:"total"`
	Notes                 *string `json:"notes"`
	CreatedAt             string  `json:"created_at"`
}

// ─── Summary ─────────────────────────────────────────────────────────────────

type KpiTotals struct {
	TechInsurance    int `json:"techInsurance"`
	InstantInsurance int `json:"instantInsurance"`
	SkyTV            int `json:"skyTV"`
	SkyBroadband     int `json:"skyBroadband"`
	SkyStreaming     int `json:"skyStreaming"`
	Total            int `json:"total"`
}

// KpiMonth is one calendar month in the summary breakdown, newest first.
type KpiMonth struct {
	Month  string    `json:"month"`
	Totals KpiTotals `json:"totals"`
}

type KpiTrends struct {
	TechInsurance    string `json:"techInsurance"`
	InstantInsurance string `json:"instantInsurance"`
	SkyTV            string `json:"skyTV"`
	SkyBroadband     string `json:"skyBroadband"`
	SkyStreaming     string `json:"skyStreaming"`
}

type KpiSummaryResponse struct {
	Totals  KpiTotals     `json:"totals"`
	ByMonth []KpiMonth    `json:"byMonth"`
	Recent  []KpiResponse `json:"recent"`
	Trends  KpiTrends     `json:"trends"`
}
