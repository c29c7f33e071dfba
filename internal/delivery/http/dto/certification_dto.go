package dto

import "job-matcher/internal/certcatalog"

type CertificationResponse struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Skill string `json:"skill,omitempty"`
}

func CertificationResponsesFrom(courses []certcatalog.Course) []CertificationResponse {
	out := make([]CertificationResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, CertificationResponse{Name: c.Title, URL: c.URL, Skill: c.Skill})
	}
	return out
}
