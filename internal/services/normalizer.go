package services

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Adwait4291/GroqResume/internal/apperr"
	"github.com/Adwait4291/GroqResume/internal/models"
)

const missingTextPlaceholder = "N/A"

type fieldSpec struct {
	name   string
	assign func(*models.AnalysisResult, gjson.Result)
}

// resultSchema is the single source of truth for the reply shape: one entry
// per expected top-level field, each knowing how to coerce and default it.
var resultSchema = []fieldSpec{
	{"match_score", func(r *models.AnalysisResult, v gjson.Result) { r.MatchScore = scoreOf(v) }},
	{"score_rationale", func(r *models.AnalysisResult, v gjson.Result) { r.ScoreRationale = textOf(v) }},
	{"key_qualifications_match", func(r *models.AnalysisResult, v gjson.Result) { r.KeyQualificationsMatch = textOf(v) }},
	{"missing_skills_requirements", func(r *models.AnalysisResult, v gjson.Result) { r.MissingSkillsRequirements = listOf(v) }},
	{"strengths", func(r *models.AnalysisResult, v gjson.Result) { r.Strengths = listOf(v) }},
	{"areas_for_improvement", func(r *models.AnalysisResult, v gjson.Result) { r.AreasForImprovement = listOf(v) }},
	{"suggested_resume_improvements", func(r *models.AnalysisResult, v gjson.Result) { r.SuggestedResumeImprovements = listOf(v) }},
	{"keyword_analysis", func(r *models.AnalysisResult, v gjson.Result) {
		r.KeywordAnalysis = models.KeywordAnalysis{
			MissingJDKeywords: listOf(v.Get("missing_jd_keywords")),
		}
	}},
}

type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize turns a raw model reply into a fully populated AnalysisResult.
// The reply may wrap the JSON object in markdown or prose; everything
// outside the outermost braces is ignored. A reply without an object yields
// a no_json_found error, an object that does not parse yields a
// malformed_json error carrying the raw text. There is no partial output:
// either every field of the result is populated or an error is returned.
func (n *Normalizer) Normalize(raw string) (*models.AnalysisResult, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, apperr.New(apperr.KindNoJSONFound, "no JSON object found in model response")
	}

	candidate := raw[start : end+1]
	if !gjson.Valid(candidate) {
		return nil, &apperr.Error{
			Kind:    apperr.KindMalformedJSON,
			Message: "model response contains malformed JSON",
			Data:    raw,
		}
	}

	result := &models.AnalysisResult{}
	for _, field := range resultSchema {
		field.assign(result, gjson.Get(candidate, field.name))
	}

	return result, nil
}

// scoreOf accepts only integers written as integers. "85" the string,
// 85.0 the float and anything else all become the unknown sentinel.
func scoreOf(value gjson.Result) models.MatchScore {
	if value.Type != gjson.Number {
		return models.UnknownScore()
	}
	if strings.ContainsAny(value.Raw, ".eE") {
		return models.UnknownScore()
	}
	n, err := strconv.Atoi(value.Raw)
	if err != nil {
		return models.UnknownScore()
	}
	return models.KnownScore(n)
}

func textOf(value gjson.Result) string {
	switch value.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return value.String()
	}
	return missingTextPlaceholder
}

func listOf(value gjson.Result) []string {
	if !value.IsArray() {
		return []string{}
	}
	items := value.Array()
	list := make([]string, 0, len(items))
	for _, item := range items {
		list = append(list, item.String())
	}
	return list
}
