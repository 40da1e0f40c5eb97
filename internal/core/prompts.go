package core

import (
	"fmt"
	"strings"

	"github.com/aitoolhub/toolhub/internal/schema"
)

const (
	summarizerSystemInstruction = "You are an expert content summarizer. Extract the essential points and present information clearly and concisely. " +
		"Always respond with valid JSON only, no markdown formatting."

	blogSystemInstruction = "You are an expert blog writer and content creator. Write engaging, well-structured articles that captivate readers. " +
		"Always respond with valid JSON only, no markdown formatting."

	flowchartSystemInstruction = "You are an expert at creating Mermaid.js diagrams. Generate clean, valid Mermaid syntax that renders correctly. " +
		"Always respond with valid JSON only, no markdown formatting. Use only standard Mermaid syntax without custom styling."

	courseSystemInstruction = "You are an expert curriculum designer and educational consultant. Create structured, practical learning paths that help students progress efficiently. " +
		"Always respond with valid JSON only, no markdown formatting."
)

// BuildPersonaPrompt returns the system instruction and the transcript for
// a persona chat turn. Messages are rendered in the order given, never
// truncated, and the transcript ends with the persona's open reply slot.
func BuildPersonaPrompt(req schema.PersonaChatRequest) (system, transcript string) {
	p := req.Persona
	system = fmt.Sprintf("You are %s. \n"+`Background: %s
Communication Style: %s
Personality: %s

You must always stay in character. Respond as this persona would, maintaining their unique voice, vocabulary, attitude, and behavior. Never break character or acknowledge that you are an AI.`,
		p.Name, p.Background, p.CommunicationStyle, p.Personality)

	var b strings.Builder
	for _, m := range req.Messages {
		if m.Role == schema.RoleUser {
			b.WriteString("User: ")
		} else {
			b.WriteString(p.Name + ": ")
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "User: %s\n%s:", req.UserMessage, p.Name)
	return system, b.String()
}

func detailInstruction(level schema.DetailLevel) (string, error) {
	switch level {
	case schema.DetailBrief:
		return "Provide a very concise summary in 2-3 sentences with 3 key points.", nil
	case schema.DetailStandard:
		return "Provide a balanced summary in 4-6 sentences with 5 key points.", nil
	case schema.DetailDetailed:
		return "Provide a comprehensive summary in 8-10 sentences with 7-8 key points.", nil
	}
	return "", fmt.Errorf("unsupported detail level %q", level)
}

func summarizerSource(inputType schema.SummarizerInputType, content string) (string, error) {
	switch inputType {
	case schema.SummarizerYouTube:
		return fmt.Sprintf("YouTube video URL: %s\n\nPlease analyze and summarize the likely content of this video based on the URL and video ID. "+
			"If you cannot access the actual video, provide a helpful summary based on any context clues in the URL.", content), nil
	case schema.SummarizerURL:
		return fmt.Sprintf("Webpage URL: %s\n\nPlease analyze and summarize the likely content of this webpage. "+
			"If you cannot access the actual page, explain what type of content might be found there based on the URL.", content), nil
	case schema.SummarizerText:
		return content, nil
	}
	return "", fmt.Errorf("unsupported input type %q", inputType)
}

// BuildSummarizerPrompt assembles the summarizer prompt. URL inputs are
// never fetched; the model is told to infer the content from the URL.
func BuildSummarizerPrompt(in schema.SummarizerInput) (string, error) {
	detail, err := detailInstruction(in.DetailLevel)
	if err != nil {
		return "", err
	}
	source, err := summarizerSource(in.InputType, in.Content)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`%s

Content to summarize:
%s

Respond with a JSON object in this exact format:
{
  "summary": "The main summary text",
  "keyPoints": ["point 1", "point 2", "point 3"],
  "wordCount": number
}`, detail, source), nil
}

func blogSource(inputType schema.BlogInputType, content string) (string, error) {
	switch inputType {
	case schema.BlogYouTube:
		return fmt.Sprintf("Create a blog post based on this YouTube video URL: %s. Imagine the content of the video and write an engaging article about it.", content), nil
	case schema.BlogURL:
		return fmt.Sprintf("Create a blog post inspired by this webpage URL: %s. Imagine the content and write an engaging article about the topic.", content), nil
	case schema.BlogTopic:
		return fmt.Sprintf("Create a blog post about this topic: %s", content), nil
	}
	return "", fmt.Errorf("unsupported input type %q", inputType)
}

func toneInstruction(tone schema.Tone) (string, error) {
	switch tone {
	case schema.ToneProfessional:
		return "Use a professional, business-appropriate tone. Be authoritative yet approachable.", nil
	case schema.ToneCasual:
		return "Use a casual, conversational tone. Be friendly and engaging like talking to a friend.", nil
	case schema.ToneAcademic:
		return "Use a formal, academic tone. Include scholarly language and structured arguments.", nil
	}
	return "", fmt.Errorf("unsupported tone %q", tone)
}

func BuildBlogPrompt(in schema.BlogWriterInput) (string, error) {
	source, err := blogSource(in.InputType, in.Content)
	if err != nil {
		return "", err
	}
	tone, err := toneInstruction(in.Tone)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`%s

Writing tone: %s

Create a complete, well-structured blog article with:
1. An attention-grabbing title
2. An engaging introduction (2-3 paragraphs)
3. 3-4 main sections with clear headings
4. A compelling conclusion

Respond with a JSON object in this exact format:
{
  "title": "The blog post title",
  "introduction": "The introduction paragraph(s)",
  "sections": [
    {"heading": "Section 1 Title", "content": "Section 1 content..."},
    {"heading": "Section 2 Title", "content": "Section 2 content..."}
  ],
  "conclusion": "The conclusion paragraph(s)",
  "fullContent": "The complete blog post in markdown format with all sections combined"
}`, source, tone), nil
}

func chartInstruction(chartType schema.ChartType) (string, error) {
	switch chartType {
	case schema.ChartFlowchart:
		return "Create a standard flowchart with decision points (diamond shapes) and process steps (rectangles). Use flowchart TD (top-down) syntax.", nil
	case schema.ChartSequence:
		return "Create a sequence diagram showing step-by-step progression. Use sequenceDiagram syntax with participants and arrows.", nil
	case schema.ChartMindmap:
		return "Create a hierarchical mindmap showing the main concept and branches. Use mindmap syntax.", nil
	}
	return "", fmt.Errorf("unsupported chart type %q", chartType)
}

// The example mermaidCode holds escaped newlines, so it stays a one-line
// JSON string.
const flowchartRules = `Important rules for Mermaid syntax:
- Use simple node IDs (A, B, C, etc.)
- Avoid special characters in labels except basic punctuation
- Keep labels concise (under 40 characters)
- Wrap text in quotes if it contains spaces

Respond with a JSON object in this exact format:
{
  "mermaidCode": "The complete Mermaid diagram code starting with the diagram type declaration",
  "steps": ["Step 1 description", "Step 2 description"],
  "description": "A brief explanation of the flowchart"
}

Example for flowchart:
{
  "mermaidCode": "flowchart TD\n    A[Start] --> B[Process]\n    B --> C{Decision}\n    C -->|Yes| D[Action]\n    C -->|No| E[End]",
  "steps": ["Start", "Process", "Decision point", "Action or End"],
  "description": "A simple decision flowchart"
}`

func BuildFlowchartPrompt(in schema.FlowchartInput) (string, error) {
	instruction, err := chartInstruction(in.ChartType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Analyze this process and create a %s diagram:\n\n%s\n\n%s\n\n%s",
		in.ChartType, in.ProcessDescription, instruction, flowchartRules), nil
}

// ModulePlan is the module count and per-module span for a course duration.
type ModulePlan struct {
	Count     int
	PerModule string
}

func modulePlan(d schema.CourseDuration) (ModulePlan, error) {
	switch d {
	case schema.DurationOneWeek:
		return ModulePlan{Count: 3, PerModule: "1-2 days"}, nil
	case schema.DurationOneMonth:
		return ModulePlan{Count: 5, PerModule: "5-7 days"}, nil
	case schema.DurationThreeMonths:
		return ModulePlan{Count: 8, PerModule: "1-2 weeks"}, nil
	}
	return ModulePlan{}, fmt.Errorf("unsupported duration %q", d)
}

func levelInstruction(level schema.CourseLevel) (string, error) {
	switch level {
	case schema.LevelBeginner:
		return "Design for complete beginners with no prior knowledge. Start with fundamentals.", nil
	case schema.LevelIntermediate:
		return "Design for learners with basic understanding who want to deepen their knowledge.", nil
	case schema.LevelAdvanced:
		return "Design for experienced practitioners seeking expert-level mastery.", nil
	}
	return "", fmt.Errorf("unsupported level %q", level)
}

func BuildCoursePrompt(in schema.CourseInput) (string, error) {
	level, err := levelInstruction(in.Level)
	if err != nil {
		return "", err
	}
	plan, err := modulePlan(in.Duration)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Create a comprehensive learning roadmap for: %s

Level: %s
Duration: %s (%d modules, approximately %s per module)

For each module, include:
1. A clear, descriptive title
2. A brief description of what will be learned
3. 4-6 specific topics to cover
4. 3-4 learning resources (mix of videos, articles, books, exercises)
5. Estimated duration

Respond with a JSON object in this exact format:
{
  "title": "Complete Course Title",
  "description": "A comprehensive overview of the course (2-3 sentences)",
  "modules": [
    {
      "title": "Module 1 Title",
      "description": "What this module covers",
      "topics": ["Topic 1", "Topic 2", "Topic 3"],
      "resources": [
        {"title": "Resource name", "type": "video", "url": ""},
        {"title": "Resource name", "type": "article", "url": ""},
        {"title": "Resource name", "type": "book"},
        {"title": "Resource name", "type": "exercise"}
      ],
      "duration": "X days/weeks"
    }
  ],
  "totalDuration": "X weeks/months",
  "level": "%s"
}

Make the resources practical and realistic. For type, use only: "video", "article", "book", or "exercise".`,
		in.Topic, level, in.Duration, plan.Count, plan.PerModule, capitalize(string(in.Level))), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
