package schema

// Persona describes the character the chat model plays.
type Persona struct {
	Name               string `json:"name" validate:"min=1"`
	Background         string `json:"background" validate:"min=10"`
	CommunicationStyle string `json:"communicationStyle" validate:"min=5"`
	Personality        string `json:"personality" validate:"min=5"`
}

type ChatMessage struct {
	Role    Role   `json:"role" validate:"oneof=user assistant"`
	Content string `json:"content"`
}

// PersonaChatRequest carries the persona, the prior transcript in
// chronological order and the new user turn.
type PersonaChatRequest struct {
	Persona     Persona       `json:"persona"`
	Messages    []ChatMessage `json:"messages" validate:"required,dive"`
	UserMessage string        `json:"userMessage" validate:"min=1"`
}

type PersonaChatResponse struct {
	Response string `json:"response"`
}

type SummarizerInput struct {
	InputType   SummarizerInputType `json:"inputType" validate:"oneof=youtube url text"`
	Content     string              `json:"content" validate:"min=1"`
	DetailLevel DetailLevel         `json:"detailLevel" validate:"oneof=brief standard detailed" default:"standard"`
}

func (in *SummarizerInput) ApplyDefaults() {
	if in.DetailLevel == "" {
		in.DetailLevel = DetailStandard
	}
}

type SummaryResult struct {
	Summary   string   `json:"summary" validate:"required"`
	KeyPoints []string `json:"keyPoints"`
	WordCount int      `json:"wordCount"`
}

type BlogWriterInput struct {
	InputType BlogInputType `json:"inputType" validate:"oneof=youtube url topic"`
	Content   string        `json:"content" validate:"min=1"`
	Tone      Tone          `json:"tone" validate:"oneof=professional casual academic" default:"professional"`
}

func (in *BlogWriterInput) ApplyDefaults() {
	if in.Tone == "" {
		in.Tone = ToneProfessional
	}
}

type BlogSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// BlogResult is the generated article. FullContent is the markdown
// rendering of the other fields and is not cross-checked against them.
type BlogResult struct {
	Title        string        `json:"title" validate:"required"`
	Introduction string        `json:"introduction"`
	Sections     []BlogSection `json:"sections"`
	Conclusion   string        `json:"conclusion"`
	FullContent  string        `json:"fullContent" validate:"required"`
}

type FlowchartInput struct {
	ProcessDescription string    `json:"processDescription" validate:"min=10"`
	ChartType          ChartType `json:"chartType" validate:"oneof=flowchart sequence mindmap" default:"flowchart"`
}

func (in *FlowchartInput) ApplyDefaults() {
	if in.ChartType == "" {
		in.ChartType = ChartFlowchart
	}
}

// FlowchartResult holds Mermaid source. The source is only checked by the
// renderer on the client.
type FlowchartResult struct {
	MermaidCode string   `json:"mermaidCode" validate:"required"`
	Steps       []string `json:"steps"`
	Description string   `json:"description"`
}

type CourseInput struct {
	Topic    string         `json:"topic" validate:"min=3"`
	Level    CourseLevel    `json:"level" validate:"oneof=beginner intermediate advanced" default:"beginner"`
	Duration CourseDuration `json:"duration" validate:"oneof=1-week 1-month 3-months" default:"1-month"`
}

func (in *CourseInput) ApplyDefaults() {
	if in.Level == "" {
		in.Level = LevelBeginner
	}
	if in.Duration == "" {
		in.Duration = DurationOneMonth
	}
}

type CourseResource struct {
	Title string       `json:"title"`
	Type  ResourceType `json:"type" validate:"oneof=video article book exercise"`
	URL   *string      `json:"url,omitempty"`
}

type CourseModule struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Topics      []string         `json:"topics"`
	Resources   []CourseResource `json:"resources" validate:"dive"`
	Duration    string           `json:"duration"`
}

type CourseResult struct {
	Title         string         `json:"title" validate:"required"`
	Description   string         `json:"description"`
	Modules       []CourseModule `json:"modules" validate:"min=1,dive"`
	TotalDuration string         `json:"totalDuration"`
	Level         string         `json:"level"`
}
