package models

import (
	"encoding/json"
	"strconv"
)

// AnalysisRequest carries the two inputs of a single analysis run.
type AnalysisRequest struct {
	ResumeText     string
	JobDescription string
}

// AnalysisResult is the normalized critique. Every field is always
// populated; the JSON shape doubles as the downloadable report.
type AnalysisResult struct {
	MatchScore                  MatchScore      `json:"match_score"`
	ScoreRationale              string          `json:"score_rationale"`
	KeyQualificationsMatch      string          `json:"key_qualifications_match"`
	MissingSkillsRequirements   []string        `json:"missing_skills_requirements"`
	Strengths                   []string        `json:"strengths"`
	AreasForImprovement         []string        `json:"areas_for_improvement"`
	SuggestedResumeImprovements []string        `json:"suggested_resume_improvements"`
	KeywordAnalysis             KeywordAnalysis `json:"keyword_analysis"`
}

type KeywordAnalysis struct {
	MissingJDKeywords []string `json:"missing_jd_keywords"`
}

const matchScoreUnknown = "unknown"

// MatchScore is the model's 0-100 fit estimate. The model does not always
// return an integer; Known reports whether it did. An unknown score is
// serialized as the string "unknown".
type MatchScore struct {
	Value int
	Known bool
}

func KnownScore(value int) MatchScore {
	return MatchScore{Value: value, Known: true}
}

func UnknownScore() MatchScore {
	return MatchScore{}
}

func (s MatchScore) String() string {
	if !s.Known {
		return matchScoreUnknown
	}
	return strconv.Itoa(s.Value)
}

func (s MatchScore) MarshalJSON() ([]byte, error) {
	if !s.Known {
		return json.Marshal(matchScoreUnknown)
	}
	return json.Marshal(s.Value)
}

func (s *MatchScore) UnmarshalJSON(data []byte) error {
	var value int
	if err := json.Unmarshal(data, &value); err == nil {
		*s = MatchScore{Value: value, Known: true}
		return nil
	}
	*s = MatchScore{}
	return nil
}
