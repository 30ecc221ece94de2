package dto

type DocumentRecord struct {
	Temperature  string `json:"temperature"`
	PONumber     string `json:"po_number"`
	SealNumber   string `json:"seal_number"`
	Location     string `json:"location"`
	DeliveryTime string `json:"delivery_time"`
}

type CompareRequest struct {
	Reference DocumentRecord `json:"reference"`
	Candidate DocumentRecord `json:"candidate"`
}

type CompareResponse struct {
	Issues       []string             `json:"issues"`
	Score        int                  `json:"score"`
	MaxScore     int                  `json:"max_score"`
	Notification NotificationResponse `json:"notification"`
}

type MistakeRequest struct {
	Record DocumentRecord `json:"record"`
}

type MistakeResponse struct {
	Record DocumentRecord `json:"record"`
	Field  string         `json:"field"`
}
