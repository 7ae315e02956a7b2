package model

// Template is a reusable activity skeleton used to stamp out new activities.
type Template struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	TitleTemplate       string `json:"title_template"`
	DescriptionTemplate string `json:"description_template"`
	Priority            string `json:"priority"`
	Category            string `json:"category"`
}
