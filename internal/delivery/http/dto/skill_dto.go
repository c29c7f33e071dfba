package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

type ExtractSkillsRequest struct {
	Text string `json:"text"`
}

type ExtractSkillsResponse struct {
	Skills string `json:"skills"`
}

type RecommendSkillsRequest struct {
	Skills string `json:"skills"`
	// SkillCount is kept raw because clients send it as a number, a numeric
	// string, or omit it entirely.
	SkillCount json.RawMessage `json:"skill_count"`
}

// Count coerces skill_count to an int; anything unusable falls back to 0 so
// the recommender applies its own default.
func (r RecommendSkillsRequest) Count() int {
	if len(r.SkillCount) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(r.SkillCount, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(r.SkillCount, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(r.SkillCount, &s); err == nil {
		if sn, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
			return sn
		}
	}
	return 0
}

type RecommendSkillsResponse struct {
	RecommendedSkills []string `json:"recommended_skills"`
}
