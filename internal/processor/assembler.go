package processor

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	gofrsuuid "github.com/gofrs/uuid/v5"
	googleuuid "github.com/google/uuid"

	"resume-builder-go/internal/parser"
	"resume-builder-go/internal/types"
)

// dateRangeSepRe 日期范围的分隔写法。"至"只在两侧带空白时算分隔符，
// 否则"2020至今"会被拆成"2020/今"
var dateRangeSepRe = regexp.MustCompile(`\s*-\s*|\s*[~～]\s*|\s+to\s+|\s+至\s+`)

// AssembleResult 把各阶段产物装配成部分简历结果。
// 流水线里唯一不允许失败的一步：上游缺什么就给空列表/空串，绝不抛错。
// 结果字段全部构造完成，随后交给确认界面合并，本层之后不再被修改。
func AssembleResult(profile types.Profile, eduItems, expItems, projItems []parser.ExtractedItem,
	skillsContent, detectedLang, uiLang string) *types.Resume {

	lang := detectedLang
	if lang == "" {
		lang = types.LanguageEN
	}
	titleLang := uiLang
	if titleLang == "" {
		titleLang = lang
	}
	now := time.Now()

	result := &types.Resume{
		ID:             newResultID(),
		UpdatedAt:      now.UnixMilli(),
		Title:          defaultTitle(titleLang, now),
		Language:       lang,
		Profile:        profile,
		Educations:     []types.Education{},
		Experiences:    []types.Experience{},
		Projects:       []types.Project{},
		Skills:         types.SkillSection{Content: skillsContent},
		CustomSections: []types.CustomSection{},
	}

	for _, item := range eduItems {
		start, end := splitDateRange(item.Date)
		result.Educations = append(result.Educations, types.Education{
			ID:          newEntityID(),
			School:      item.Title,
			StartDate:   start,
			EndDate:     end,
			Description: item.Description,
		})
	}

	for _, item := range expItems {
		start, end := splitDateRange(item.Date)
		result.Experiences = append(result.Experiences, types.Experience{
			ID:          newEntityID(),
			Company:     item.Title,
			StartDate:   start,
			EndDate:     end,
			Description: item.Description,
		})
	}

	// 项目放进自定义区块：固定分类里未必有项目这个槽位
	if len(projItems) > 0 {
		title := "Projects"
		if titleLang == types.LanguageZH {
			title = "项目经历"
		}
		result.CustomSections = append(result.CustomSections, types.CustomSection{
			ID:      newEntityID(),
			Title:   title,
			Content: renderItemsHTML(projItems),
		})
	}

	return result
}

// defaultTitle 按界面语言生成默认标题，加上日期便于和手建简历区分
func defaultTitle(uiLang string, now time.Time) string {
	date := now.Format("2006/01/02")
	if uiLang == types.LanguageZH {
		return fmt.Sprintf("导入的简历 (%s)", date)
	}
	return fmt.Sprintf("Imported Resume (%s)", date)
}

// splitDateRange 把"2018 - 2020"拆成起止；没有分隔符时整体算起始
func splitDateRange(date string) (start, end string) {
	if date == "" {
		return "", ""
	}
	parts := dateRangeSepRe.Split(date, 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(date), ""
}

// renderItemsHTML 把条目渲染成自定义区块的HTML内容。
// 条目标题/日期是原始行文本，此处转义；描述在切分时已转义。
func renderItemsHTML(items []parser.ExtractedItem) string {
	var sb strings.Builder
	for _, item := range items {
		switch {
		case item.Title != "" && item.Date != "":
			sb.WriteString("<p>" + html.EscapeString(item.Title) + " (" + html.EscapeString(item.Date) + ")</p>")
		case item.Title != "":
			sb.WriteString("<p>" + html.EscapeString(item.Title) + "</p>")
		case item.Date != "":
			sb.WriteString("<p>" + html.EscapeString(item.Date) + "</p>")
		}
		sb.WriteString(item.Description)
	}
	return sb.String()
}

// newResultID 结果标识优先用UUIDv7（时间有序，便于排序与排查）
func newResultID() string {
	id, err := gofrsuuid.NewV7()
	if err != nil {
		// 装配不允许失败，退回随机UUID
		return googleuuid.NewString()
	}
	return id.String()
}

// newEntityID 实体标识，一次解析内全局唯一
func newEntityID() string {
	return googleuuid.NewString()
}
