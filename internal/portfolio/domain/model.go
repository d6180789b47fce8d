package domain

// Project is a single portfolio project. IDs are unix-millisecond
// timestamps allocated at creation time, which keeps previously stored
// collections readable as-is.
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (p Project) EntityID() int64 { return p.ID }

// Experience is a single work-experience entry. Duration is a free-form
// label ("Jan 2023 – Aug 2023"), not a structured range.
type Experience struct {
	ID          int64  `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

func (e Experience) EntityID() int64 { return e.ID }

// Entity is anything stored in an ordered portfolio collection.
type Entity interface {
	EntityID() int64
}
