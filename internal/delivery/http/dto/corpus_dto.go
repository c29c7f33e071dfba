package dto

type CorpusRefreshRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

type CorpusRefreshResponse struct {
	Status string `json:"status"`
	Query  string `json:"query"`
}
