package dto

import (
	"encoding/json"

	"job-matcher/internal/corpus"
)

type JobRecommendationRequest struct {
	Skills string `json:"skills"`
}

type JobListingResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Company         string  `json:"company"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	Skills          string  `json:"skills"`
	EmploymentType  string  `json:"employment_type,omitempty"`
	ApplyLink       string  `json:"apply_link,omitempty"`
	Logo            string  `json:"logo,omitempty"`
	SimilarityScore float64 `json:"similarity_score"`
}

func JobListingResponseFrom(l corpus.JobListing) JobListingResponse {
	return JobListingResponse{
		ID:              l.ID,
		Title:           l.Title,
		Company:         l.Company,
		Location:        l.Location,
		Description:     l.Description,
		Skills:          l.Skills,
		EmploymentType:  l.EmploymentType,
		ApplyLink:       l.ApplyLink,
		Logo:            l.Logo,
		SimilarityScore: l.SimilarityScore,
	}
}

type JobLinksRequest struct {
	Jobs []string `json:"jobs"`
}

type JobLinkResponse struct {
	JobProvider string `json:"jobProvider"`
	URL         string `json:"url"`
}

type JobSearchRequest struct {
	Skills   string `json:"skills"`
	Location string `json:"location"`
	Page     int    `json:"page"`
}

type JobSearchResponse struct {
	Results json.RawMessage `json:"results"`
}
