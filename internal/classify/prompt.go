package classify

import (
	"bytes"
	"text/template"
)

const systemPrompt = `You are an expert educational assessor. A learner answered a diagnostic probe question. Judge whether the response demonstrates the probed skill.

Instructions:
- Set is_correct to true only if the response demonstrates the skill, ignoring spelling and formatting slips.
- Provide a confidence score (0.0-1.0) reflecting how certain the judgement is.
- If the response is wrong and clearly matches one of the listed misconceptions, return its code; otherwise return null.
- Do NOT invent misconception codes. Only use codes from the list provided.
- Keep reasoning to one sentence.`

var userTemplate = template.Must(template.New("classify").Parse(`Curriculum node: {{.NodeCode}}
Question: {{.QuestionContext}}
Learner's response: {{.RawResponse}}
{{if .Candidates}}
Known misconceptions for this node:
{{range .Candidates}}- {{.Code}}: {{.Description}}
{{end}}{{else}}
No known misconceptions are listed for this node.
{{end}}`))

// buildUserMessage renders the probe context into the user prompt.
func buildUserMessage(req Request) (string, error) {
	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
