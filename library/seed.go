package library

import "github.com/lvbauer/retrovault/videos"

// Categories is the fixed category list offered by the UI, starting with the
// no-filter sentinel. Uploaded records default to PERSONAL.
var Categories = []string{
	videos.CategoryAll,
	"PROGRAMMING",
	"DESIGN",
	"PHOTOGRAPHY",
	"PERSONAL",
}

// SeedRecords returns the starter archive the application boots with, in
// display order (most recent first). Thumbnails are left blank and derived
// on first display.
func SeedRecords() []videos.VideoRecord {
	return []videos.VideoRecord{
		{
			ID:          "1",
			Title:       "React Development Tutorial",
			Description: "Learn the fundamentals of React development in this comprehensive tutorial.",
			VideoURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
			UploadDate:  "JAN 15, 2024",
			Category:    "PROGRAMMING",
			Duration:    "15:42",
			Size:        "245 MB",
			Views:       1250,
		},
		{
			ID:          "2",
			Title:       "Advanced CSS Animations",
			Description: "Master complex CSS animations and transforms to create stunning web experiences.",
			VideoURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
			UploadDate:  "JAN 10, 2024",
			Category:    "DESIGN",
			Duration:    "12:33",
			Size:        "189 MB",
			Views:       890,
			IsFavorite:  true,
		},
		{
			ID:          "3",
			Title:       "Python Data Analysis",
			Description: "Comprehensive guide to data analysis using pandas and matplotlib.",
			VideoURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
			UploadDate:  "JAN 8, 2024",
			Category:    "PROGRAMMING",
			Duration:    "22:15",
			Size:        "356 MB",
			Views:       2100,
		},
		{
			ID:          "4",
			Title:       "UI/UX Design Principles",
			Description: "Essential design principles every developer should know.",
			VideoURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
			UploadDate:  "JAN 5, 2024",
			Category:    "DESIGN",
			Duration:    "18:27",
			Size:        "278 MB",
			Views:       1567,
			IsFavorite:  true,
		},
		{
			ID:          "5",
			Title:       "Node.js Backend Development",
			Description: "Build scalable backend applications with Node.js and Express.",
			VideoURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
			UploadDate:  "DEC 28, 2023",
			Category:    "PROGRAMMING",
			Duration:    "25:11",
			Size:        "402 MB",
			Views:       1890,
		},
		{
			ID:          "6",
			Title:       "Photography Composition",
			Description: "Master the art of composition in digital photography.",
			VideoURL:    "https://www.w3schools.com/html/mov_bbb.mp4",
			UploadDate:  "DEC 25, 2023",
			Category:    "PHOTOGRAPHY",
			Duration:    "14:55",
			Size:        "225 MB",
			Views:       956,
		},
	}
}
