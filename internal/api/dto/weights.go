package dto

type WeightRequest struct {
	Steer   NumericText `json:"steer"`
	Drive   NumericText `json:"drive"`
	Trailer NumericText `json:"trailer"`
	APU     *bool       `json:"apu"`
}

type AxleCheckResponse struct {
	Axle          string  `json:"axle"`
	Weight        float64 `json:"weight"`
	IsLegal       bool    `json:"is_legal"`
	OverageAmount float64 `json:"overage_amount"`
	LimitUsed     float64 `json:"limit_used"`
	Status        string  `json:"status"`
}

type WeightResponse struct {
	Steer        AxleCheckResponse    `json:"steer"`
	Drive        AxleCheckResponse    `json:"drive"`
	Trailer      AxleCheckResponse    `json:"trailer"`
	AllLegal     bool                 `json:"all_legal"`
	Notification NotificationResponse `json:"notification"`
}

type AxleLimitsResponse struct {
	Steer           float64 `json:"steer"`
	DriveWithAPU    float64 `json:"drive_with_apu"`
	DriveWithoutAPU float64 `json:"drive_without_apu"`
	Trailer         float64 `json:"trailer"`
}
