package services

import "fmt"

// SystemInstruction pins the model into the recruiter role and demands a
// bare JSON reply.
const SystemInstruction = "You are an expert ATS (Applicant Tracking System) and human recruiter resume analyzer. You provide critical, actionable feedback. Respond ONLY with the requested JSON object."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt embeds the resume and job description verbatim and
// enumerates every field the reply must contain.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Analyze the following resume against the provided job description.
Provide a detailed, critical, and constructive analysis.

**Resume Text:**
`+"```text\n%s\n```"+`

**Job Description:**
`+"```text\n%s\n```"+`

**Instructions:**
Respond ONLY with a valid JSON object. Do not include any text before or after the JSON object.
The JSON object must contain the following keys:
- "match_score": An integer score from 0 to 100 representing the overall alignment, considering skills, experience, keywords, and qualifications. Be realistic.
- "score_rationale": A brief string explaining the main reasons for the given match_score.
- "key_qualifications_match": A string summarizing how well the resume meets the *most critical* qualifications mentioned in the JD (use bullet points within the string, e.g., using markdown like '* Requirement: Matched/Partially Matched/Missing - Justification').
- "missing_skills_requirements": A list of strings detailing important skills, tools, technologies, certifications, or specific experiences mentioned in the JD but *clearly missing* or insufficiently detailed in the resume. Be specific.
- "strengths": A list of strings highlighting the resume's *most relevant* strengths for *this specific* job description (e.g., specific achievements, unique skill combinations, strong experience alignment).
- "areas_for_improvement": A list of strings suggesting specific, actionable areas where the resume could be improved to better match *this* JD (focus on content, clarity, impact).
- "suggested_resume_improvements": A list of strings providing concrete, actionable suggestions for *specific* changes or additions to the resume text. Examples: "Quantify achievement X by adding metrics like Y%%", "Add keyword Z from the JD to the summary/skills", "Elaborate on project A experience focusing on B technology".
- "keyword_analysis": An object containing ONLY one list: "missing_jd_keywords" (important keywords from JD not found in resume). Keep the list concise (max 5-7 keywords).

Ensure all list values are strings. Ensure the entire output is a single, valid JSON object.
Example keyword_analysis: { "missing_jd_keywords": ["Data Visualization", "Agile Methodology", "Cloud Platform X"] }`,
		resumeText, jobDescription)
}
