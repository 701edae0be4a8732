package constants

import "time"

const (
	// MinTextLength 内嵌文本提取结果低于该字符数时视为疑似扫描件，触发OCR回退
	MinTextLength = 50

	// OCRScaleFactor OCR前页面位图的放大倍数（72dpi基准）
	OCRScaleFactor = 2.0

	// ImportTimeout 整个导入调用的默认超时预算
	ImportTimeout = 10 * time.Second

	// NameScanLines 猜测姓名时扫描的起始行数
	NameScanLines = 10
	// NameMinLen 姓名候选行的最小长度（字符）
	NameMinLen = 2
	// NameMaxLen 姓名候选行的最大长度（字符）
	NameMaxLen = 29

	// HeaderMaxLen 超过该长度的行不再被当作小节标题
	HeaderMaxLen = 50

	// TitleLookbackMaxLen 日期行回看上一行作为标题时允许的最大行长
	TitleLookbackMaxLen = 100
)

// 小节键，SectionSegmenter 的输出桶
const (
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// SectionOrder 小节表的固定遍历顺序，保证行为可复现
var SectionOrder = []string{SectionEducation, SectionExperience, SectionSkills, SectionProjects}

// SectionHeaders 中英双语小节标题同义词表，按前缀匹配
var SectionHeaders = map[string][]string{
	SectionEducation:  {"education", "academic background", "教育背景", "教育经历", "学历"},
	SectionExperience: {"work experience", "professional experience", "experience", "employment", "工作经历", "工作经验", "实习经历"},
	SectionSkills:     {"technical skills", "skills", "专业技能", "技能", "技术栈"},
	SectionProjects:   {"projects", "项目经历", "项目经验", "个人项目"},
}

// NameDenylist 不可能是姓名的起始行（标题词）
var NameDenylist = []string{"resume", "curriculum vitae", "简历", "个人简历"}

// SkillKeywords 技能关键词词表，无显式技能小节时的兜底匹配源
// 匹配按词边界、忽略大小写，命中后映射回此处的规范写法
var SkillKeywords = []string{
	"Java", "Python", "React", "Vue", "Node.js", "JavaScript", "TypeScript",
	"SQL", "Docker", "AWS", "Go", "C++", "HTML", "CSS", "Git", "Linux",
	"Spring", "Django", "Flask", "Kubernetes",
}
