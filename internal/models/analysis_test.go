package models

import (
	"encoding/json"
	"testing"
)

func TestMatchScoreMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		score MatchScore
		want  string
	}{
		{"known", KnownScore(85), "85"},
		{"zero", KnownScore(0), "0"},
		{"unknown", UnknownScore(), `"unknown"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.score)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, data)
			}
		})
	}
}

func TestMatchScoreUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  MatchScore
	}{
		{"integer", "72", KnownScore(72)},
		{"float", "72.5", UnknownScore()},
		{"string", `"72"`, UnknownScore()},
		{"sentinel", `"unknown"`, UnknownScore()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var score MatchScore
			if err := json.Unmarshal([]byte(tt.input), &score); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if score != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, score)
			}
		})
	}
}

func TestAnalysisResultJSONShape(t *testing.T) {
	result := AnalysisResult{
		MatchScore:                  KnownScore(64),
		ScoreRationale:              "solid overlap on core skills",
		KeyQualificationsMatch:      "* Go: Matched",
		MissingSkillsRequirements:   []string{"Kubernetes"},
		Strengths:                   []string{"5 years backend experience"},
		AreasForImprovement:         []string{},
		SuggestedResumeImprovements: []string{"Quantify project outcomes"},
		KeywordAnalysis:             KeywordAnalysis{MissingJDKeywords: []string{"Terraform"}},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{
		"match_score", "score_rationale", "key_qualifications_match",
		"missing_skills_requirements", "strengths", "areas_for_improvement",
		"suggested_resume_improvements", "keyword_analysis",
	} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("expected key %q in serialized result", key)
		}
	}

	// Empty lists serialize as [], never null.
	if string(decoded["areas_for_improvement"]) != "[]" {
		t.Fatalf("expected empty list, got %s", decoded["areas_for_improvement"])
	}
}
