package catalog

import (
	"encoding/json"
	"os"
	"strings"
)

// JobPosting is the canonical posting schema every downstream component
// relies on. All string fields default to the empty string and Tags to an
// empty list; Normalize guarantees that, so the recommendation engine never
// sees a partially shaped posting.
type JobPosting struct {
	ID                        string   `json:"id"`
	Title                     string   `json:"title"`
	CompanyName               string   `json:"company_name"`
	Category                  string   `json:"category"`
	Tags                      []string `json:"tags"`
	JobType                   string   `json:"job_type"`
	PublicationDate           string   `json:"publication_date"`
	CandidateRequiredLocation string   `json:"candidate_required_location"`
	Description               string   `json:"description"`
	Salary                    string   `json:"salary"`
	ExperienceRequired        string   `json:"experience_required"`
	ApplicationURL            string   `json:"application_url"`
	RemoteAllowed             bool     `json:"remote_allowed"`
}

// Document returns the text a posting contributes to the vector space: title,
// company, category, tags, description, location and job type, skipping empty
// parts.
func (j JobPosting) Document() string {
	parts := []string{
		j.Title,
		j.CompanyName,
		j.Category,
		strings.Join(j.Tags, " "),
		j.Description,
		j.CandidateRequiredLocation,
		j.JobType,
	}
	nonEmpty := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// MatchText returns the text used for skill containment checks: title,
// description and tags.
func (j JobPosting) MatchText() string {
	return strings.Join([]string{j.Title, j.Description, strings.Join(j.Tags, " ")}, " ")
}

// Jobs is an ordered posting list.
type Jobs struct {
	Items []JobPosting
}

func (j *Jobs) Len() int {
	if j == nil {
		return 0
	}
	return len(j.Items)
}

// IDs returns the posting identifiers in order.
func (j *Jobs) IDs() []string {
	ids := make([]string, 0, j.Len())
	for _, item := range j.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// DumpToTmpFile writes the postings as indented JSON to a temporary file and
// returns its name.
func (j *Jobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j.Items); err != nil {
		return "", err
	}

	return file.Name(), nil
}

// FallbackJobs returns a single built-in posting used when the catalog comes
// back empty, so a request still produces a ranked response.
func FallbackJobs() *Jobs {
	return &Jobs{Items: []JobPosting{{
		ID:                        "fallback_1",
		Title:                     "Java Developer",
		CompanyName:               "Fallback Inc.",
		Category:                  "Software Development",
		Tags:                      []string{"java", "springboot", "postgresql"},
		JobType:                   "Full-Time",
		CandidateRequiredLocation: "Bangalore",
		Description:               "Develop Java-based applications using Springboot and PostgreSQL.",
		RemoteAllowed:             false,
	}}}
}
