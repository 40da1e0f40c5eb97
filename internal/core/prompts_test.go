package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aitoolhub/toolhub/internal/schema"
)

func TestLookupTablesComplete(t *testing.T) {
	for _, v := range schema.AllDetailLevels() {
		got, err := detailInstruction(v)
		require.NoError(t, err, v)
		require.NotEmpty(t, got, v)
	}
	for _, v := range schema.AllSummarizerInputTypes() {
		got, err := summarizerSource(v, "content")
		require.NoError(t, err, v)
		require.NotEmpty(t, got, v)
	}
	for _, v := range schema.AllBlogInputTypes() {
		got, err := blogSource(v, "content")
		require.NoError(t, err, v)
		require.NotEmpty(t, got, v)
	}
	for _, v := range schema.AllTones() {
		got, err := toneInstruction(v)
		require.NoError(t, err, v)
		require.NotEmpty(t, got, v)
	}
	for _, v := range schema.AllChartTypes() {
		got, err := chartInstruction(v)
		require.NoError(t, err, v)
		require.NotEmpty(t, got, v)
	}
	for _, v := range schema.AllCourseLevels() {
		got, err := levelInstruction(v)
		require.NoError(t, err, v)
		require.NotEmpty(t, got, v)
	}
	for _, v := range schema.AllCourseDurations() {
		got, err := modulePlan(v)
		require.NoError(t, err, v)
		require.Positive(t, got.Count, v)
		require.NotEmpty(t, got.PerModule, v)
	}
}

func TestLookupTablesRejectUnknown(t *testing.T) {
	_, err := detailInstruction("huge")
	require.Error(t, err)
	_, err = toneInstruction("angry")
	require.Error(t, err)
	_, err = chartInstruction("gantt")
	require.Error(t, err)
	_, err = levelInstruction("expert")
	require.Error(t, err)
	_, err = modulePlan("1-year")
	require.Error(t, err)
	_, err = summarizerSource("pdf", "x")
	require.Error(t, err)
	_, err = blogSource("pdf", "x")
	require.Error(t, err)
}

func TestBuildPersonaPrompt(t *testing.T) {
	req := schema.PersonaChatRequest{
		Persona: schema.Persona{
			Name:               "Captain Nemo",
			Background:         "Commander of the Nautilus",
			CommunicationStyle: "Formal and brooding",
			Personality:        "Proud, secretive",
		},
		Messages: []schema.ChatMessage{
			{Role: schema.RoleUser, Content: "Who are you?"},
			{Role: schema.RoleAssistant, Content: "A man of the sea."},
			{Role: schema.RoleUser, Content: "Where are we?"},
		},
		UserMessage: "How deep can we go?",
	}

	system, transcript := BuildPersonaPrompt(req)
	require.Contains(t, system, "You are Captain Nemo.")
	require.Contains(t, system, "Background: Commander of the Nautilus")
	require.Contains(t, system, "Communication Style: Formal and brooding")
	require.Contains(t, system, "Personality: Proud, secretive")
	require.Contains(t, system, "Never break character or acknowledge that you are an AI.")

	want := "User: Who are you?\n" +
		"Captain Nemo: A man of the sea.\n" +
		"User: Where are we?\n" +
		"User: How deep can we go?\n" +
		"Captain Nemo:"
	require.Equal(t, want, transcript)

	system2, transcript2 := BuildPersonaPrompt(req)
	require.Equal(t, system, system2)
	require.Equal(t, transcript, transcript2)
}

func TestBuildSummarizerPrompt(t *testing.T) {
	prompt, err := BuildSummarizerPrompt(schema.SummarizerInput{InputType: schema.SummarizerText, Content: "Plain body text.", DetailLevel: schema.DetailBrief})
	require.NoError(t, err)
	require.Contains(t, prompt, "2-3 sentences with 3 key points")
	require.Contains(t, prompt, "Content to summarize:\nPlain body text.\n")
	require.Contains(t, prompt, `"keyPoints"`)

	prompt, err = BuildSummarizerPrompt(schema.SummarizerInput{InputType: schema.SummarizerYouTube, Content: "https://youtu.be/abc", DetailLevel: schema.DetailDetailed})
	require.NoError(t, err)
	require.Contains(t, prompt, "YouTube video URL: https://youtu.be/abc")
	require.Contains(t, prompt, "8-10 sentences with 7-8 key points")

	prompt, err = BuildSummarizerPrompt(schema.SummarizerInput{InputType: schema.SummarizerURL, Content: "https://go.dev", DetailLevel: schema.DetailStandard})
	require.NoError(t, err)
	require.Contains(t, prompt, "Webpage URL: https://go.dev")
	require.Contains(t, prompt, "4-6 sentences with 5 key points")
}

func TestBuildBlogPrompt(t *testing.T) {
	prompt, err := BuildBlogPrompt(schema.BlogWriterInput{InputType: schema.BlogTopic, Content: "Sourdough", Tone: schema.ToneCasual})
	require.NoError(t, err)
	require.Contains(t, prompt, "Create a blog post about this topic: Sourdough")
	require.Contains(t, prompt, "Writing tone: Use a casual, conversational tone.")
	require.Contains(t, prompt, "3-4 main sections with clear headings")
	require.Contains(t, prompt, `"fullContent"`)
}

func TestBuildFlowchartPrompt(t *testing.T) {
	prompt, err := BuildFlowchartPrompt(schema.FlowchartInput{ProcessDescription: "User signs up and verifies email", ChartType: schema.ChartSequence})
	require.NoError(t, err)
	require.Contains(t, prompt, "Analyze this process and create a sequence diagram:\n\nUser signs up and verifies email")
	require.Contains(t, prompt, "Use sequenceDiagram syntax")
	require.Contains(t, prompt, "Keep labels concise (under 40 characters)")
	require.Contains(t, prompt, "Wrap text in quotes if it contains spaces")
	require.Contains(t, prompt, `flowchart TD\n    A[Start]`)
}

func TestBuildCoursePrompt(t *testing.T) {
	tests := []struct {
		duration schema.CourseDuration
		want     string
	}{
		{duration: schema.DurationOneWeek, want: "Duration: 1-week (3 modules, approximately 1-2 days per module)"},
		{duration: schema.DurationOneMonth, want: "Duration: 1-month (5 modules, approximately 5-7 days per module)"},
		{duration: schema.DurationThreeMonths, want: "Duration: 3-months (8 modules, approximately 1-2 weeks per module)"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.duration), func(t *testing.T) {
			t.Parallel()
			prompt, err := BuildCoursePrompt(schema.CourseInput{Topic: "Knitting", Level: schema.LevelIntermediate, Duration: tt.duration})
			require.NoError(t, err)
			require.Contains(t, prompt, "Create a comprehensive learning roadmap for: Knitting")
			require.Contains(t, prompt, tt.want)
			require.Contains(t, prompt, `"level": "Intermediate"`)
			require.Contains(t, prompt, "Level: Design for learners with basic understanding")
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	require.Equal(t, "flowchart TD\n    A --> B", NormalizeNewlines(`flowchart TD\n    A --> B`))
	require.Equal(t, "already\nfine", NormalizeNewlines("already\nfine"))
}

func TestStripCodeFence(t *testing.T) {
	require.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}\n"))
}
