package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-builder-go/internal/constants"
)

func TestSegmentSectionsBasic(t *testing.T) {
	text := "John Smith\njohn@x.com\nEducation\nMIT\n2018 - 2020\nExperience\nAcme Corp\n2020 - Present\nBuilt things"

	blocks := SegmentSections(text)

	assert.Equal(t, "MIT\n2018 - 2020\n", blocks[constants.SectionEducation])
	assert.Equal(t, "Acme Corp\n2020 - Present\nBuilt things\n", blocks[constants.SectionExperience])
	// 未出现的小节必须是空串而不是缺键
	assert.Equal(t, "", blocks[constants.SectionSkills])
	assert.Equal(t, "", blocks[constants.SectionProjects])
}

func TestSegmentSectionsHeaderLineIsConsumed(t *testing.T) {
	blocks := SegmentSections("教育背景\n清华大学\n")
	assert.NotContains(t, blocks[constants.SectionEducation], "教育背景")
	assert.Contains(t, blocks[constants.SectionEducation], "清华大学")
}

func TestSegmentSectionsInlineHeaderContent(t *testing.T) {
	// 标题行冒号后的内容要留在小节块里
	blocks := SegmentSections("技能: Java, Python\n")
	assert.Equal(t, "Java, Python\n", blocks[constants.SectionSkills])

	blocks = SegmentSections("技能：分布式系统\n")
	assert.Equal(t, "分布式系统\n", blocks[constants.SectionSkills])
}

func TestSegmentSectionsLinesBeforeFirstHeaderDropped(t *testing.T) {
	blocks := SegmentSections("张三\n13812345678\n工作经历\n某公司\n")
	for _, key := range constants.SectionOrder {
		assert.NotContains(t, blocks[key], "张三")
	}
	assert.Contains(t, blocks[constants.SectionExperience], "某公司")
}

func TestSegmentSectionsBilingualHeaders(t *testing.T) {
	cases := map[string]string{
		"Education":             constants.SectionEducation,
		"education":             constants.SectionEducation,
		"教育经历":                  constants.SectionEducation,
		"Work Experience":       constants.SectionExperience,
		"工作经验":                  constants.SectionExperience,
		"Technical Skills":      constants.SectionSkills,
		"专业技能":                  constants.SectionSkills,
		"Projects":              constants.SectionProjects,
		"项目经历":                  constants.SectionProjects,
	}
	for header, key := range cases {
		blocks := SegmentSections(header + "\ncontent line\n")
		assert.Equal(t, "content line\n", blocks[key], "标题: %q", header)
	}
}

func TestSegmentSectionsLongLineIsNotHeader(t *testing.T) {
	// 以关键词开头但过长的行是正文不是标题
	long := "Experience shows that " + strings.Repeat("distributed systems need careful design ", 3)
	blocks := SegmentSections("Education\n" + long + "\n")
	assert.Contains(t, blocks[constants.SectionEducation], "Experience shows")
	assert.Equal(t, "", blocks[constants.SectionExperience])
}

func TestSegmentSectionsNoBacktracking(t *testing.T) {
	// 新标题出现后旧小节即定稿
	blocks := SegmentSections("Education\nMIT\nSkills\nGo\nmore education text? no\n")
	assert.Equal(t, "MIT\n", blocks[constants.SectionEducation])
	assert.Contains(t, blocks[constants.SectionSkills], "Go")
}

func TestSegmentSectionsWordBoundaryOnEnglishHeaders(t *testing.T) {
	// "Experienced engineer" 不是Experience标题
	blocks := SegmentSections("Experienced engineer since 1999\n")
	assert.Equal(t, "", blocks[constants.SectionExperience])
}
