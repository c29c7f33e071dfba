package joblinks

import (
	"encoding/json"
	"log"
	"strings"
)

// maxProvidersPerJob caps how many application links one listing
// contributes.
const maxProvidersPerJob = 2

// JobLink pairs a provider name with its application URL.
type JobLink struct {
	JobProvider string `json:"jobProvider"`
	URL         string `json:"url"`
}

// Parse decodes a listing's semi-structured providers field (a JSON array of
// {jobProvider,url} objects) and keeps at most the first two pairs. A
// malformed field yields nothing; the caller moves on to the next row.
func Parse(providersField string, logger *log.Logger) []JobLink {
	providersField = strings.TrimSpace(providersField)
	if providersField == "" {
		return nil
	}

	var links []JobLink
	if err := json.Unmarshal([]byte(providersField), &links); err != nil {
		if logger != nil {
			logger.Printf("job provider field skipped err=%v", err)
		}
		return nil
	}

	out := make([]JobLink, 0, maxProvidersPerJob)
	for _, l := range links {
		if len(out) >= maxProvidersPerJob {
			break
		}
		if strings.TrimSpace(l.URL) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Encode is the inverse of Parse, used when persisting fetched jobs.
func Encode(links []JobLink) string {
	if len(links) == 0 {
		return ""
	}
	b, err := json.Marshal(links)
	if err != nil {
		return ""
	}
	return string(b)
}
