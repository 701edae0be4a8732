package processor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder-go/internal/parser"
	"resume-builder-go/internal/types"
)

func TestSplitDateRange(t *testing.T) {
	cases := []struct {
		in         string
		start, end string
	}{
		{"2018 - 2020", "2018", "2020"},
		{"2020 - Present", "2020", "Present"},
		{"2019.03 - 2021.07", "2019.03", "2021.07"},
		{"2018 至 2020", "2018", "2020"},
		{"2020至今", "2020至今", ""},
		{"2018 to 2020", "2018", "2020"},
		{"2020", "2020", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		start, end := splitDateRange(c.in)
		assert.Equal(t, c.start, start, "输入: %q", c.in)
		assert.Equal(t, c.end, end, "输入: %q", c.in)
	}
}

func TestDefaultTitleByUILanguage(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "导入的简历 (2025/03/14)", defaultTitle(types.LanguageZH, now))
	assert.Equal(t, "Imported Resume (2025/03/14)", defaultTitle(types.LanguageEN, now))
}

func TestAssembleResultNeverFails(t *testing.T) {
	// 上游全空：完整形状、空值填充
	result := AssembleResult(types.Profile{}, nil, nil, nil, "", "", "")

	require.NotNil(t, result)
	assert.NotEmpty(t, result.ID)
	assert.NotZero(t, result.UpdatedAt)
	assert.Equal(t, types.LanguageEN, result.Language)
	assert.NotNil(t, result.Educations)
	assert.NotNil(t, result.Experiences)
	assert.NotNil(t, result.Projects)
	assert.NotNil(t, result.CustomSections)
	assert.Empty(t, result.Skills.Content)
}

func TestAssembleResultTitleLanguageFollowsUI(t *testing.T) {
	// 内容是中文、界面是英文：默认标题跟界面走
	result := AssembleResult(types.Profile{}, nil, nil, nil, "", types.LanguageZH, types.LanguageEN)
	assert.Contains(t, result.Title, "Imported Resume")
	assert.Equal(t, types.LanguageZH, result.Language)
}

func TestAssembleResultMapsItems(t *testing.T) {
	edu := []parser.ExtractedItem{{Title: "MIT", Date: "2018 - 2020", Description: "<p>Thesis</p>"}}
	exp := []parser.ExtractedItem{{Title: "Acme", Date: "2020 - Present"}}

	result := AssembleResult(types.Profile{FullName: "Jane"}, edu, exp, nil, "", types.LanguageEN, types.LanguageEN)

	require.Len(t, result.Educations, 1)
	assert.Equal(t, "MIT", result.Educations[0].School)
	assert.Equal(t, "2018", result.Educations[0].StartDate)
	assert.Equal(t, "2020", result.Educations[0].EndDate)
	assert.Equal(t, "<p>Thesis</p>", result.Educations[0].Description)

	require.Len(t, result.Experiences, 1)
	assert.Equal(t, "Acme", result.Experiences[0].Company)
	assert.Equal(t, "Jane", result.Profile.FullName)
}

func TestAssembleResultProjectsCustomSectionEscapesTitle(t *testing.T) {
	proj := []parser.ExtractedItem{{Title: "Chat<bot>", Date: "2021"}}

	result := AssembleResult(types.Profile{}, nil, nil, proj, "", types.LanguageEN, types.LanguageEN)

	require.Len(t, result.CustomSections, 1)
	assert.Equal(t, "Projects", result.CustomSections[0].Title)
	assert.Contains(t, result.CustomSections[0].Content, "Chat&lt;bot&gt;")
	assert.NotContains(t, result.CustomSections[0].Content, "<bot>")
}
