package recommend

import (
	"strings"

	"github.com/skillmatch/job-recommender/internal/resume"
)

// RawProfile mirrors the user profile as it arrives on the wire. The
// "prefered" spelling is part of the upstream contract.
type RawProfile struct {
	Users struct {
		FirstName string `json:"firstName" yaml:"firstName"`
		LastName  string `json:"lastName" yaml:"lastName"`
		Email     string `json:"email" yaml:"email"`
		Phone     string `json:"phone" yaml:"phone"`
		ResumeURL string `json:"resumeUrl" yaml:"resumeUrl"`
	} `json:"users" yaml:"users"`
	ProfileSummary    string `json:"profileSummary" yaml:"profileSummary"`
	KeySkills         string `json:"keySkills" yaml:"keySkills"`
	PreferredJobType  string `json:"preferedJobType" yaml:"preferedJobType"`
	PreferredLocation string `json:"preferedLocation" yaml:"preferedLocation"`
	Availability      string `json:"availabilityToWork" yaml:"availabilityToWork"`
	Languages         string `json:"language" yaml:"language"`
	Education         struct {
		Degrees []RawDegree `json:"degrees" yaml:"degrees"`
	} `json:"education" yaml:"education"`
	Internships []RawInternship `json:"internships" yaml:"internships"`
	Projects    []RawProject    `json:"projects" yaml:"projects"`
	ResumeURL   string          `json:"resumeUrl" yaml:"resumeUrl"`
}

type RawDegree struct {
	DegreeName         string `json:"degreeName" yaml:"degreeName"`
	CourseName         string `json:"courseName" yaml:"courseName"`
	UniversityName     string `json:"universityName" yaml:"universityName"`
	CourseDurationFrom string `json:"courseDurationFrom" yaml:"courseDurationFrom"`
	CourseDurationTo   string `json:"courseDurationTo" yaml:"courseDurationTo"`
	CGPA               string `json:"cgpa" yaml:"cgpa"`
}

type RawInternship struct {
	CompanyName  string `json:"companyName" yaml:"companyName"`
	DurationFrom string `json:"durationFrom" yaml:"durationFrom"`
	DurationTo   string `json:"durationTo" yaml:"durationTo"`
	Description  string `json:"description" yaml:"description"`
}

type RawProject struct {
	ProjectName         string `json:"projectName" yaml:"projectName"`
	ProjectDurationFrom string `json:"projectDurationFrom" yaml:"projectDurationFrom"`
	ProjectDurationTo   string `json:"projectDurationTo" yaml:"projectDurationTo"`
	ProjectDescription  string `json:"projectDescription" yaml:"projectDescription"`
}

// ResumeURLValue returns the resume URL wherever the caller put it.
func (r RawProfile) ResumeURLValue() string {
	if url := strings.TrimSpace(r.Users.ResumeURL); url != "" {
		return url
	}
	return strings.TrimSpace(r.ResumeURL)
}

// Profile is the composite, request-scoped view of a user: structured fields
// flattened into fixed-shape records, optionally enriched with resume-derived
// text. It is the single input to vectorization and rule matching.
type Profile struct {
	Name              string
	Email             string
	Phone             string
	ProfileSummary    string
	KeySkills         string
	PreferredJobType  string
	PreferredLocation string
	Availability      string
	Languages         string
	Education         []Education
	Internships       []Internship
	Projects          []Project
	ResumeText        string
}

type Education struct {
	Degree     string
	Course     string
	University string
	Duration   string
	CGPA       string
}

type Internship struct {
	Company     string
	Duration    string
	Description string
}

type Project struct {
	Name        string
	Duration    string
	Description string
}

// ComposeProfile merges the raw profile with an optional resume extraction.
// Sub-entries with no content are skipped; resume skills are unioned
// case-insensitively into KeySkills.
func ComposeProfile(raw RawProfile, ext resume.Extraction) Profile {
	p := Profile{
		Name:              strings.TrimSpace(raw.Users.FirstName + " " + raw.Users.LastName),
		Email:             raw.Users.Email,
		Phone:             raw.Users.Phone,
		ProfileSummary:    raw.ProfileSummary,
		KeySkills:         raw.KeySkills,
		PreferredJobType:  raw.PreferredJobType,
		PreferredLocation: raw.PreferredLocation,
		Availability:      raw.Availability,
		Languages:         raw.Languages,
		Education:         []Education{},
		Internships:       []Internship{},
		Projects:          []Project{},
	}

	for _, d := range raw.Education.Degrees {
		if d == (RawDegree{}) {
			continue
		}
		p.Education = append(p.Education, Education{
			Degree:     d.DegreeName,
			Course:     d.CourseName,
			University: d.UniversityName,
			Duration:   spanned(d.CourseDurationFrom, d.CourseDurationTo),
			CGPA:       d.CGPA,
		})
	}

	for _, in := range raw.Internships {
		if in == (RawInternship{}) {
			continue
		}
		p.Internships = append(p.Internships, Internship{
			Company:     in.CompanyName,
			Duration:    spanned(in.DurationFrom, in.DurationTo),
			Description: in.Description,
		})
	}

	for _, pr := range raw.Projects {
		if pr == (RawProject{}) {
			continue
		}
		p.Projects = append(p.Projects, Project{
			Name:        pr.ProjectName,
			Duration:    spanned(pr.ProjectDurationFrom, pr.ProjectDurationTo),
			Description: pr.ProjectDescription,
		})
	}

	if !ext.Empty() {
		if len(ext.Skills) > 0 {
			p.KeySkills = unionSkills(p.KeySkills, ext.Skills)
		}
		p.ResumeText = ext.FullText
	}

	return p
}

// Document returns the user-side text projected into the vector space:
// summary, skills, preferences, every education/internship/project free-text
// field, and resume text when present.
func (p Profile) Document() string {
	parts := []string{
		p.ProfileSummary,
		p.KeySkills,
		p.PreferredJobType,
		p.PreferredLocation,
	}
	for _, e := range p.Education {
		parts = append(parts, e.Degree, e.Course, e.University)
	}
	for _, in := range p.Internships {
		parts = append(parts, in.Company, in.Description)
	}
	for _, pr := range p.Projects {
		parts = append(parts, pr.Name, pr.Description)
	}
	if p.ResumeText != "" {
		parts = append(parts, p.ResumeText)
	}

	nonEmpty := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func spanned(from, to string) string {
	return strings.TrimSpace(from) + " to " + strings.TrimSpace(to)
}

// unionSkills merges resume-derived skills into the comma-joined key skills
// string, case-insensitively and preserving the existing order.
func unionSkills(keySkills string, extra []string) string {
	seen := make(map[string]struct{})
	var merged []string
	add := func(skill string) {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			return
		}
		if _, dup := seen[skill]; dup {
			return
		}
		seen[skill] = struct{}{}
		merged = append(merged, skill)
	}

	for _, s := range strings.Split(keySkills, ",") {
		add(s)
	}
	for _, s := range extra {
		add(s)
	}

	return strings.Join(merged, ", ")
}
