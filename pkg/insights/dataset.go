package insights

// Dataset is the static chart and report data shown next to the live
// job figures. It is seeded, never computed from the collections.
type Dataset struct {
	Dashboard DashboardData `json:"dashboard" yaml:"dashboard"`
	Reports   ReportsData   `json:"reports" yaml:"reports"`
	Analytics AnalyticsData `json:"analytics" yaml:"analytics"`
}

type DashboardData struct {
	ApplicationsByMonth    []MonthlyApplications `json:"applicationsByMonth" yaml:"applicationsByMonth"`
	DepartmentApplications []DepartmentShare     `json:"departmentApplications" yaml:"departmentApplications"`
	Notifications          []Notification        `json:"notifications" yaml:"notifications"`
}

type MonthlyApplications struct {
	Month        string `json:"month" yaml:"month"`
	Applications int    `json:"applications" yaml:"applications"`
	Hired        int    `json:"hired" yaml:"hired"`
}

type DepartmentShare struct {
	Name         string `json:"name" yaml:"name"`
	Applications int    `json:"applications" yaml:"applications"`
	Color        string `json:"color" yaml:"color"`
}

type Notification struct {
	ID      int    `json:"id" yaml:"id"`
	Message string `json:"message" yaml:"message"`
	Time    string `json:"time" yaml:"time"`
	Type    string `json:"type" yaml:"type"`
}

type ReportsData struct {
	HiringStats         HiringStats       `json:"hiringStats" yaml:"hiringStats"`
	RecentReports       []Report          `json:"recentReports" yaml:"recentReports"`
	DepartmentBreakdown []DepartmentHires `json:"departmentBreakdown" yaml:"departmentBreakdown"`
}

type HiringStats struct {
	TotalApplications int `json:"totalApplications" yaml:"totalApplications"`
	ActiveJobs        int `json:"activeJobs" yaml:"activeJobs"`
	Interviews        int `json:"interviews" yaml:"interviews"`
	Hired             int `json:"hired" yaml:"hired"`
}

type Report struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
	Status      string `json:"status" yaml:"status"`
	Type        string `json:"type" yaml:"type"`
}

type DepartmentHires struct {
	Department   string `json:"department" yaml:"department"`
	Applications int    `json:"applications" yaml:"applications"`
	Hired        int    `json:"hired" yaml:"hired"`
}

type AnalyticsData struct {
	Overview      Overview    `json:"overview" yaml:"overview"`
	Sources       []Source    `json:"sources" yaml:"sources"`
	TimeToHire    []Stage     `json:"timeToHire" yaml:"timeToHire"`
	TopPerformers []Performer `json:"topPerformers" yaml:"topPerformers"`
}

type Overview struct {
	TotalViews          int     `json:"totalViews" yaml:"totalViews"`
	ConversionRate      float64 `json:"conversionRate" yaml:"conversionRate"`
	AverageTimeToHire   int     `json:"averageTimeToHire" yaml:"averageTimeToHire"`
	SourceEffectiveness int     `json:"sourceEffectiveness" yaml:"sourceEffectiveness"`
}

type Source struct {
	Name         string `json:"name" yaml:"name"`
	Applications int    `json:"applications" yaml:"applications"`
	Hired        int    `json:"hired" yaml:"hired"`
}

type Stage struct {
	Stage  string  `json:"stage" yaml:"stage"`
	Days   float64 `json:"days" yaml:"days"`
	Target float64 `json:"target" yaml:"target"`
}

type Performer struct {
	Name         string `json:"name" yaml:"name"`
	Applications int    `json:"applications" yaml:"applications"`
	Interviews   int    `json:"interviews" yaml:"interviews"`
	Hired        int    `json:"hired" yaml:"hired"`
}
