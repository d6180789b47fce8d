package repository

import (
	"time"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
)

// Seed data shown on a fresh install, before the owner has added anything.
// The per-entry id offsets keep seeds created in the same millisecond from
// colliding.

func DefaultProjects(now time.Time) []domain.Project {
	base := now.UnixMilli()
	return []domain.Project{
		{
			ID:          base + 1,
			Title:       "Sales Data Analysis",
			Description: "Analyzed sales trends using Python and Pandas. Created visualizations to identify key revenue drivers and seasonal patterns. Implemented predictive models to forecast future sales.",
		},
		{
			ID:          base + 2,
			Title:       "Customer Segmentation",
			Description: "Performed customer segmentation using SQL queries and Python clustering algorithms. Identified distinct customer groups and their purchasing behaviors to optimize marketing strategies.",
		},
		{
			ID:          base + 3,
			Title:       "Dashboard Development",
			Description: "Built interactive dashboards using Matplotlib and SQL. Created real-time reporting tools for business metrics, enabling data-driven decision making across departments.",
		},
	}
}

func DefaultExperiences(now time.Time) []domain.Experience {
	base := now.UnixMilli()
	return []domain.Experience{
		{
			ID:          base + 1,
			Company:     "Tech Solutions Inc.",
			Role:        "Data Analyst Intern",
			Duration:    "Jan 2023 – Aug 2023",
			Description: "Assisted in analyzing customer data using SQL and Python. Created reports and dashboards to track key performance indicators. Collaborated with senior analysts on data cleaning and preprocessing tasks.",
		},
	}
}
