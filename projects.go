package main

// Project describes the content of one thumbnail.
// Title may span several lines separated by "\n".
type Project struct {
	Name     string // output filename stem
	Title    string
	Subtitle string
	Color    string // "#rrggbb"
	Icon     string // metric label drawn in the body
}

// projects returns the thumbnails to generate, in output order.
func projects() []Project {
	return []Project{
		{
			Name:     "transfer_success",
			Title:    "Transfer Success\nPrediction",
			Subtitle: "Football Analytics",
			Color:    "#10b981", // green
			Icon:     "R²: 0.94",
		},
		{
			Name:     "transfer_efficiency",
			Title:    "Transfer Economic\nEfficiency",
			Subtitle: "Value Analysis",
			Color:    "#3b82f6", // blue
			Icon:     "238 Transfers",
		},
		{
			Name:     "f1_prediction",
			Title:    "F1 Race Position\nPrediction",
			Subtitle: "Formula 1 Analytics",
			Color:    "#ef4444", // red
			Icon:     "R²: 0.63",
		},
		{
			Name:     "super_lig",
			Title:    "Turkish Super Lig\nMatch Prediction",
			Subtitle: "Football Forecasting",
			Color:    "#f59e0b", // amber
			Icon:     "51.3% Acc",
		},
	}
}
