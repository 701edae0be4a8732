package types

// Profile 个人基本信息
// 导入场景下任何字段都可能缺失，缺失一律用空字符串表示，不视为错误
type Profile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location,omitempty"`
	Link     string `json:"link,omitempty"`
	Summary  string `json:"summary,omitempty"` // HTML内容
}

// Education 教育经历条目
type Education struct {
	ID          string `json:"id"` // 每次解析内全局唯一
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"` // HTML内容
}

// Experience 工作经历条目
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"` // HTML内容
}

// Project 项目经历条目
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"` // HTML内容
}

// SkillSection 技能区块，内容为HTML
type SkillSection struct {
	Content string `json:"content"`
}

// CustomSection 自定义区块，承载固定分类之外的内容（例如项目经历）
type CustomSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"` // HTML内容
}

// Resume 简历文档
// 也是导入流水线的输出契约：一次导入产出一个"部分简历"，
// 所有字段都已构造完成（缺失值为空串/空列表），由确认界面合并后才会持久化
type Resume struct {
	ID             string          `json:"id"`
	UpdatedAt      int64           `json:"updatedAt"` // 毫秒时间戳
	Title          string          `json:"title"`
	Language       string          `json:"language"` // "zh" 或 "en"
	JobDescription string          `json:"jobDescription,omitempty"`
	Profile        Profile         `json:"profile"`
	Educations     []Education     `json:"educations"`
	Experiences    []Experience    `json:"experiences"`
	Projects       []Project       `json:"projects"`
	Skills         SkillSection    `json:"skills"`
	CustomSections []CustomSection `json:"customSections"`
}

// LanguageZH 检测到CJK字符时的内容语言
const LanguageZH = "zh"

// LanguageEN 纯拉丁文本的内容语言
const LanguageEN = "en"
