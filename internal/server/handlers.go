package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/skillmatch/job-recommender/internal/catalog"
	"github.com/skillmatch/job-recommender/internal/logger"
	"github.com/skillmatch/job-recommender/internal/recommend"
)

type errorResponse struct {
	Error     string `json:"error"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp,omitempty"`
}

type recommendResponse struct {
	Status               string              `json:"status"`
	Message              string              `json:"message"`
	TotalRecommendations int                 `json:"total_recommendations"`
	UserProfile          profileEcho         `json:"user_profile"`
	APIInfo              apiInfo             `json:"api_info"`
	Recommendations      []formattedRec      `json:"recommendations"`
	Timestamp            string              `json:"timestamp"`
}

type profileEcho struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	PreferredLocation string   `json:"preferred_location"`
	PreferredJobType  string   `json:"preferred_job_type"`
	KeySkills         string   `json:"key_skills"`
	ExtractedTags     []string `json:"extracted_tags"`
}

type apiInfo struct {
	JobsFetched   int `json:"jobs_fetched"`
	JobsProcessed int `json:"jobs_processed"`
}

type formattedRec struct {
	Rank               int                `json:"rank"`
	JobID              string             `json:"job_id"`
	Title              string             `json:"title"`
	Company            string             `json:"company"`
	Category           string             `json:"category"`
	Location           string             `json:"location"`
	JobType            string             `json:"job_type"`
	Tags               []string           `json:"tags"`
	PublicationDate    string             `json:"publication_date"`
	Description        string             `json:"description"`
	Salary             string             `json:"salary"`
	ExperienceRequired string             `json:"experience_required"`
	ApplicationURL     string             `json:"application_url"`
	RemoteAllowed      bool               `json:"remote_allowed"`
	MatchScore         float64            `json:"match_score"`
	MatchCriteria      recommend.Criteria `json:"match_criteria"`
	Explanation        string             `json:"explanation"`
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Job Recommendation API is running",
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	catalogStatus := "not_configured"
	if s.catalog != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := s.catalog.Ping(ctx); err != nil {
			catalogStatus = "unreachable"
		} else {
			catalogStatus = "healthy"
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "Job Recommendation API",
		"version":   Version,
		"timestamp": time.Now().Format(time.RFC3339),
		"job_catalog": map[string]any{
			"configured": s.catalog != nil,
			"status":     catalogStatus,
		},
	})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var raw recommend.RawProfile
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "request body must be a JSON user profile",
			Status: "error",
		})
		return
	}

	topN := clampQuery(r, "top_n", defaultTopN, minTopN, maxTopN)
	fetchLimit := clampQuery(r, "fetch_limit", defaultFetchLimit, minFetchLimit, maxFetchLimit)

	tagLog := logger.WithPhase(s.logger, "tag_extraction", "")
	tags := s.engine.ExtractTags(raw)
	searchTags := tags.List()
	if tags.SentinelOnly() {
		searchTags = s.engine.Rules().FallbackTags
		tagLog.Warn("no specific tags extracted, using fallback tags",
			zap.Strings("fallback_tags", searchTags),
		)
	}
	tagLog.Info("extracted user tags", zap.Strings("tags", searchTags))

	var rawJobs []map[string]any
	if s.catalog != nil {
		rawJobs = s.catalog.FetchByTags(r.Context(), searchTags, catalog.FetchParams{
			Location: raw.PreferredLocation,
			JobType:  raw.PreferredJobType,
			Limit:    fetchLimit,
		})
	}

	jobs := catalog.Normalize(rawJobs, s.logger)
	if jobs.Len() == 0 {
		s.logger.Warn("no jobs available from catalog, using fallback pool")
		jobs = catalog.FallbackJobs()
	}

	recs := s.engine.Recommend(r.Context(), raw, jobs.Items, topN, raw.ResumeURLValue())
	if len(recs) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:     "no recommendations generated",
			Status:    "error",
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	formatted := make([]formattedRec, 0, len(recs))
	for i, rec := range recs {
		criteria := rec.Criteria
		criteria.SimilarityScore = round(criteria.SimilarityScore, 3)
		criteria.SkillMatchPercent = round(criteria.SkillMatchPercent, 2)

		formatted = append(formatted, formattedRec{
			Rank:               i + 1,
			JobID:              rec.Job.ID,
			Title:              rec.Job.Title,
			Company:            rec.Job.CompanyName,
			Category:           rec.Job.Category,
			Location:           rec.Job.CandidateRequiredLocation,
			JobType:            rec.Job.JobType,
			Tags:               rec.Job.Tags,
			PublicationDate:    rec.Job.PublicationDate,
			Description:        rec.Job.Description,
			Salary:             rec.Job.Salary,
			ExperienceRequired: rec.Job.ExperienceRequired,
			ApplicationURL:     rec.Job.ApplicationURL,
			RemoteAllowed:      rec.Job.RemoteAllowed,
			MatchScore:         round(rec.Score, 3),
			MatchCriteria:      criteria,
			Explanation:        recommend.Explain(rec),
		})
	}

	writeJSON(w, http.StatusOK, recommendResponse{
		Status:               "success",
		Message:              "Found " + strconv.Itoa(len(formatted)) + " job recommendations",
		TotalRecommendations: len(formatted),
		UserProfile: profileEcho{
			Name:              nameOf(raw),
			Email:             raw.Users.Email,
			PreferredLocation: raw.PreferredLocation,
			PreferredJobType:  raw.PreferredJobType,
			KeySkills:         raw.KeySkills,
			ExtractedTags:     searchTags,
		},
		APIInfo: apiInfo{
			JobsFetched:   len(rawJobs),
			JobsProcessed: jobs.Len(),
		},
		Recommendations: formatted,
		Timestamp:       time.Now().Format(time.RFC3339),
	})
}

func nameOf(raw recommend.RawProfile) string {
	name := raw.Users.FirstName
	if raw.Users.LastName != "" {
		if name != "" {
			name += " "
		}
		name += raw.Users.LastName
	}
	return name
}

func clampQuery(r *http.Request, key string, def, min, max int) int {
	value := def
	if s := r.URL.Query().Get(key); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			value = parsed
		}
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return value
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
