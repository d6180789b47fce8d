package http

type projectReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type experienceReq struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}
