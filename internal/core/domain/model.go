package domain

import "time"

// Model is a named, deployable prediction endpoint grouping on the
// managed platform. It owns zero or more Versions; at most one of them
// is the model's default, used when a prediction request names no
// version.
type Model struct {
	Name                    string            `json:"name"`
	Description             string            `json:"description"`
	Regions                 []string          `json:"regions"`
	DefaultVersionName      string            `json:"default_version_name"`
	OnlinePredictionLogging bool              `json:"online_prediction_logging"`
	Labels                  map[string]string `json:"labels"`
	CreatedAt               time.Time         `json:"created_at"`
}
