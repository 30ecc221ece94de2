package dto

type SectionResponse struct {
	Anchor string `json:"anchor"`
	Widget string `json:"widget"`
	Title  string `json:"title"`
}

type PageResponse struct {
	Path     string            `json:"path"`
	Title    string            `json:"title"`
	Sections []SectionResponse `json:"sections"`
}

type PagesResponse struct {
	Pages []PageResponse `json:"pages"`
}
