package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildReportPrompt embeds both inputs verbatim into the fixed evaluation
// template. No truncation and no sanitization against prompt injection; the
// response format (the SCORE line in particular) is enforced by the prompt
// alone, not by validation.
func (pb *PromptBuilder) BuildReportPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert AI Hiring Assistant reviewing a candidate for a job role.
Your task is to create a detailed, structured analysis report based on the provided Job Description and the Candidate's Resume.

*Job Description:*
%s

*Candidate's Resume:*
%s

---
*Instructions:*
Based on the information above, generate the following report with markdown formatting. Ensure all sections are present.

### *Overall Match Score*
SCORE: [X]%%
(Replace [X] with a number from 0-100 representing how well this candidate matches the job requirements based on skills, experience, and qualifications. Be objective and realistic.)

### *1. Candidate Summary*
- Provide 3 concise bullet points highlighting the candidate's strongest qualifications, relevant experience, and key skills that align with the job.

### *2. Skill Match Analysis*
- List the key skills from the job description (e.g., LangChain, Python, PyTorch, Cloud).
- For each skill, indicate if a match was found in the resume using these emojis:
    - ✅ *Match Found:* If the skill is clearly present.
    - ⚠ *Partial/Indirect Match:* If related experience is mentioned but not the exact skill.
    - ❌ *Not Mentioned:* If the skill is missing.
- Briefly state the evidence from the resume.

### *3. Personalized Interview Questions*
- Create a list of 3 insightful questions that probe deeper into the candidate's specific projects or roles mentioned in their resume.`,
		jobDescription, resumeText)
}
