package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmatch/job-recommender/internal/resume"
)

func sampleRawProfile() RawProfile {
	raw := RawProfile{
		ProfileSummary:    "Backend developer",
		KeySkills:         "java, springboot",
		PreferredJobType:  "Full-Time",
		PreferredLocation: "Bangalore",
		Availability:      "Immediate",
		Languages:         "English",
	}
	raw.Users.FirstName = "Asha"
	raw.Users.LastName = "Verma"
	raw.Users.Email = "asha@example.com"
	raw.Education.Degrees = []RawDegree{
		{
			DegreeName:         "Bachelor of Technology",
			CourseName:         "Computer Science",
			UniversityName:     "VTU",
			CourseDurationFrom: "2019",
			CourseDurationTo:   "2023",
			CGPA:               "8.4",
		},
		{}, // malformed entry, skipped
	}
	raw.Internships = []RawInternship{
		{CompanyName: "Acme", DurationFrom: "2022", DurationTo: "2023", Description: "Built REST APIs"},
	}
	raw.Projects = []RawProject{
		{ProjectName: "Inventory Service", ProjectDescription: "Microservice in Spring"},
		{},
	}
	return raw
}

func TestComposeProfileFlattensStructuredFields(t *testing.T) {
	p := ComposeProfile(sampleRawProfile(), resume.Extraction{})

	assert.Equal(t, "Asha Verma", p.Name)
	assert.Equal(t, "asha@example.com", p.Email)
	assert.Equal(t, "java, springboot", p.KeySkills)

	require.Len(t, p.Education, 1)
	assert.Equal(t, "Bachelor of Technology", p.Education[0].Degree)
	assert.Equal(t, "2019 to 2023", p.Education[0].Duration)

	require.Len(t, p.Internships, 1)
	assert.Equal(t, "Acme", p.Internships[0].Company)

	require.Len(t, p.Projects, 1)
	assert.Equal(t, "Inventory Service", p.Projects[0].Name)

	assert.Empty(t, p.ResumeText)
}

func TestComposeProfileUnionsResumeSkills(t *testing.T) {
	ext := resume.Extraction{
		FullText: "resume body",
		Skills:   []string{"Java", "docker", "kubernetes"},
	}

	p := ComposeProfile(sampleRawProfile(), ext)

	skills := strings.Split(p.KeySkills, ", ")
	assert.Equal(t, []string{"java", "springboot", "docker", "kubernetes"}, skills)
	assert.Equal(t, "resume body", p.ResumeText)
}

func TestComposeProfileEmptyRawYieldsMinimalProfile(t *testing.T) {
	p := ComposeProfile(RawProfile{}, resume.Extraction{})

	assert.Empty(t, p.Name)
	assert.Empty(t, p.KeySkills)
	assert.NotNil(t, p.Education)
	assert.Empty(t, p.Education)
	assert.Empty(t, p.Internships)
	assert.Empty(t, p.Projects)
}

func TestProfileDocumentIncludesEverySection(t *testing.T) {
	ext := resume.Extraction{FullText: "resume text here", Skills: []string{"docker"}}
	p := ComposeProfile(sampleRawProfile(), ext)

	doc := p.Document()

	for _, want := range []string{
		"Backend developer", "java", "Full-Time", "Bangalore",
		"Bachelor of Technology", "VTU", "Acme", "Built REST APIs",
		"Inventory Service", "resume text here",
	} {
		assert.Contains(t, doc, want)
	}
}

func TestResumeURLValuePrefersUsersField(t *testing.T) {
	var raw RawProfile
	raw.ResumeURL = "https://example.com/outer.pdf"
	assert.Equal(t, "https://example.com/outer.pdf", raw.ResumeURLValue())

	raw.Users.ResumeURL = "https://example.com/inner.pdf"
	assert.Equal(t, "https://example.com/inner.pdf", raw.ResumeURLValue())
}
