package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// fieldAliases maps every canonical posting field to the raw API keys that
// may carry it, in lookup order.
var fieldAliases = map[string][]string{
	"id":                          {"id", "job_id", "_id"},
	"title":                       {"title", "job_title", "position"},
	"company_name":                {"company_name", "company", "employer"},
	"category":                    {"category", "job_category", "department"},
	"tags":                        {"tags", "skills", "keywords"},
	"job_type":                    {"job_type", "employment_type", "type"},
	"publication_date":            {"publication_date", "posted_date", "created_at"},
	"candidate_required_location": {"candidate_required_location", "location", "city"},
	"description":                 {"description", "job_description", "details"},
	"salary":                      {"salary", "salary_range"},
	"experience_required":         {"experience_required", "experience_level"},
	"application_url":             {"application_url", "apply_url"},
	"remote_allowed":              {"remote_allowed", "is_remote"},
}

// Normalize converts raw catalog objects into the canonical posting schema:
// field aliases resolved, missing strings defaulted to empty, tags coerced to
// a clean list and HTML stripped out of descriptions. Records that cannot be
// decoded are skipped with a warning instead of failing the batch.
func Normalize(raw []map[string]any, logger *zap.Logger) *Jobs {
	jobs := &Jobs{Items: make([]JobPosting, 0, len(raw))}

	for i, record := range raw {
		canonical := make(map[string]any, len(fieldAliases))
		for field, aliases := range fieldAliases {
			for _, alias := range aliases {
				if v, ok := record[alias]; ok && v != nil {
					canonical[field] = v
					break
				}
			}
		}

		// Tags need bespoke coercion; keep them away from the decoder.
		rawTags := canonical["tags"]
		delete(canonical, "tags")

		var job JobPosting
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &job,
			TagName:          "json",
			WeaklyTypedInput: true,
		})
		if err == nil {
			err = decoder.Decode(canonical)
		}
		if err != nil {
			logger.Warn("skipping undecodable job posting",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}

		if job.ID == "" {
			job.ID = "job_" + strconv.Itoa(i)
		}
		if job.Title == "" {
			job.Title = "Unknown Job"
		}
		if job.CompanyName == "" {
			job.CompanyName = "Unknown Company"
		}
		job.Tags = cleanTags(rawTags)
		job.Description = StripHTML(job.Description)

		jobs.Items = append(jobs.Items, job)
	}

	logger.Info("normalized job postings",
		zap.Int("raw", len(raw)),
		zap.Int("normalized", jobs.Len()),
	)
	return jobs
}

// cleanTags coerces the raw tags value into a list of trimmed strings. The
// catalog has been seen returning a proper list, a JSON-encoded list in a
// string, and a plain comma-separated string.
func cleanTags(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := trimTag(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := trimTag(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		var parsed []any
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			return cleanTags(parsed)
		}
		var out []string
		for _, part := range strings.Split(v, ",") {
			if s := trimTag(part); s != "" {
				out = append(out, s)
			}
		}
		if out == nil {
			out = []string{}
		}
		return out
	default:
		return []string{}
	}
}

func trimTag(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(strings.Trim(s, `[]"`))
}

// StripHTML returns the text content of an HTML fragment. Catalog
// descriptions frequently arrive as HTML; plain text passes through
// untouched.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
