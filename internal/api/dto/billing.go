package dto

type BillingRequest struct {
	CheckIn   string      `json:"check_in"`
	CheckOut  string      `json:"check_out"`
	FreeHours NumericText `json:"free_hours"`
	Rate      NumericText `json:"rate"`
	Lumper    NumericText `json:"lumper"`
}

type BillingFormattedResponse struct {
	TotalHours    string `json:"total_hours"`
	BillableHours string `json:"billable_hours"`
	Detention     string `json:"detention"`
	Lumper        string `json:"lumper"`
	Total         string `json:"total"`
}

type BillingResponse struct {
	TotalHours    float64                  `json:"total_hours"`
	BillableHours float64                  `json:"billable_hours"`
	Detention     float64                  `json:"detention"`
	Lumper        float64                  `json:"lumper"`
	Total         float64                  `json:"total"`
	Formatted     BillingFormattedResponse `json:"formatted"`
	Summary       string                   `json:"summary"`
	Notification  NotificationResponse     `json:"notification"`
}

type BillingDefaultsResponse struct {
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	FreeHours string `json:"free_hours"`
	Rate      string `json:"rate"`
	Lumper    string `json:"lumper"`
}
