package schema

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SummarizerInputType says how the summarizer content field is interpreted.
type SummarizerInputType string

const (
	SummarizerYouTube SummarizerInputType = "youtube"
	SummarizerURL     SummarizerInputType = "url"
	SummarizerText    SummarizerInputType = "text"
)

func AllSummarizerInputTypes() []SummarizerInputType {
	return []SummarizerInputType{SummarizerYouTube, SummarizerURL, SummarizerText}
}

type DetailLevel string

const (
	DetailBrief    DetailLevel = "brief"
	DetailStandard DetailLevel = "standard"
	DetailDetailed DetailLevel = "detailed"
)

func AllDetailLevels() []DetailLevel {
	return []DetailLevel{DetailBrief, DetailStandard, DetailDetailed}
}

// BlogInputType says what the blog writer content field holds.
type BlogInputType string

const (
	BlogYouTube BlogInputType = "youtube"
	BlogURL     BlogInputType = "url"
	BlogTopic   BlogInputType = "topic"
)

func AllBlogInputTypes() []BlogInputType {
	return []BlogInputType{BlogYouTube, BlogURL, BlogTopic}
}

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneAcademic     Tone = "academic"
)

func AllTones() []Tone {
	return []Tone{ToneProfessional, ToneCasual, ToneAcademic}
}

// ChartType selects the Mermaid diagram grammar.
type ChartType string

const (
	ChartFlowchart ChartType = "flowchart"
	ChartSequence  ChartType = "sequence"
	ChartMindmap   ChartType = "mindmap"
)

func AllChartTypes() []ChartType {
	return []ChartType{ChartFlowchart, ChartSequence, ChartMindmap}
}

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

func AllCourseLevels() []CourseLevel {
	return []CourseLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

type CourseDuration string

const (
	DurationOneWeek     CourseDuration = "1-week"
	DurationOneMonth    CourseDuration = "1-month"
	DurationThreeMonths CourseDuration = "3-months"
)

func AllCourseDurations() []CourseDuration {
	return []CourseDuration{DurationOneWeek, DurationOneMonth, DurationThreeMonths}
}

type ResourceType string

const (
	ResourceVideo    ResourceType = "video"
	ResourceArticle  ResourceType = "article"
	ResourceBook     ResourceType = "book"
	ResourceExercise ResourceType = "exercise"
)
