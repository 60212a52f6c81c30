package jobdesc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func document(t *testing.T, raw string) Document {
	t.Helper()
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestDecodeFullDocument(t *testing.T) {
	t.Parallel()

	doc := document(t, `{
		"role": " Backend Engineer ",
		"overview": "Build APIs",
		"eligibility_criteria": {
			"degrees": {"required": ["B.Tech", ""], "preferred": ["M.Tech"]},
			"fields": ["Computer Science"],
			"backlogs_allowed": false,
			"gaps_allowed": "yes"
		},
		"experience_years": {"min": 2, "preferred": 5},
		"must_have_skills": {"technical": ["Go", " SQL "], "domain": [], "soft": ["communication"]},
		"nice_to_have_skills": ["Kubernetes"],
		"keywords": {"primary": ["microservices"], "secondary": ["grpc"]},
		"location": "Remote",
		"employment_type": "Full-time"
	}`)

	jd, err := Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", jd.Role)
	assert.Equal(t, []string{"B.Tech"}, jd.Eligibility.Degrees.Required)
	assert.Equal(t, []string{"M.Tech"}, jd.Eligibility.Degrees.Preferred)
	assert.Equal(t, []string{"Computer Science"}, jd.Eligibility.Fields)
	assert.False(t, jd.Eligibility.BacklogsAllowed)
	assert.True(t, jd.Eligibility.GapsAllowed)
	assert.InDelta(t, 2.0, jd.Experience.Min, 1e-9)
	assert.InDelta(t, 5.0, jd.Experience.PreferredOrDefault(), 1e-9)
	require.NotNil(t, jd.MustHaveSkills)
	assert.Equal(t, []string{"Go", "SQL"}, jd.MustHaveSkills.Technical)
	assert.Empty(t, jd.MustHaveSkills.Domain)
	assert.Equal(t, []string{"communication"}, jd.MustHaveSkills.Soft)
	assert.Equal(t, []string{"microservices"}, jd.Keywords.Primary)
	assert.Equal(t, "Full-time", jd.EmploymentType)
}

func TestDecodeAliasesAndLooseTypes(t *testing.T) {
	t.Parallel()

	doc := document(t, `{
		"eligibility_criteria": {"degrees": ["B.E", "B.Tech"], "streams": "CSE, IT"},
		"experience_years": {"min": "2+ years", "max": "4 years"},
		"must_have_skills": {"technical": "Python, Django"}
	}`)

	jd, err := Decode(doc)
	require.NoError(t, err)

	assert.Equal(t, []string{"B.E", "B.Tech"}, jd.Eligibility.Degrees.Required)
	assert.Equal(t, []string{"CSE", "IT"}, jd.Eligibility.Fields)
	assert.InDelta(t, 2.0, jd.Experience.Min, 1e-9)
	require.NotNil(t, jd.Experience.Preferred)
	assert.InDelta(t, 4.0, *jd.Experience.Preferred, 1e-9)
	assert.Equal(t, []string{"Python", "Django"}, jd.MustHaveSkills.Technical)
	assert.Empty(t, jd.Role)
}

func TestDecodeDefaults(t *testing.T) {
	t.Parallel()

	jd, err := Decode(document(t, `{"must_have_skills": {}, "experience_years": 3}`))
	require.NoError(t, err)

	assert.InDelta(t, 3.0, jd.Experience.Min, 1e-9)
	assert.Nil(t, jd.Experience.Preferred)
	assert.InDelta(t, 6.0, jd.Experience.PreferredOrDefault(), 1e-9)
	assert.Empty(t, jd.MustHaveSkills.Technical)
	assert.Empty(t, jd.Keywords.Primary)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  Document
	}{
		{name: "nil document", doc: nil},
		{name: "missing must_have_skills", doc: Document{"role": "Engineer"}},
		{name: "must_have_skills is a list", doc: Document{"must_have_skills": []any{"Go"}}},
		{name: "role is an object", doc: Document{"role": map[string]any{}, "must_have_skills": map[string]any{}}},
		{name: "negative experience", doc: Document{
			"must_have_skills": map[string]any{},
			"experience_years": map[string]any{"min": -1.0},
		}},
		{name: "experience without number", doc: Document{
			"must_have_skills": map[string]any{},
			"experience_years": map[string]any{"min": "several"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jd, err := Decode(tt.doc)
			require.Error(t, err)
			assert.Nil(t, jd)
			assert.True(t, errors.Is(err, ErrMalformed))

			var merr *MalformedError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, KindMalformed, merr.Kind())
			assert.NotEmpty(t, merr.Error())
		})
	}
}

func TestDecodeAll(t *testing.T) {
	t.Parallel()

	docs, err := DecodeAll(map[string]any{"role": "a"})
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	docs, err = DecodeAll([]any{map[string]any{"role": "a"}, "junk"})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Nil(t, docs[1])

	docs, err = DecodeAll(nil)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = DecodeAll("text")
	assert.Error(t, err)
}
