package catalog

// Discussion topics arrive as form keys; notifications and calendar entries
// show the human-readable labels.
var topicLabels = map[string]string{
	"collaboration": "Collaboration Opportunity",
	"feedback":      "Project Feedback",
	"career":        "Career Advice",
	"speaking":      "Speaking/Panel Opportunity",
	"technical":     "Technical Discussion",
	"networking":    "Networking / Catch Up",
}

// TopicLabels maps topic keys to display labels, passing unknown keys through
// unchanged.
func TopicLabels(topics []string) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		if label, ok := topicLabels[t]; ok {
			out[i] = label
		} else {
			out[i] = t
		}
	}
	return out
}
