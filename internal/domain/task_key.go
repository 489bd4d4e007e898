package domain

import "strings"

const taskKeySeparator = "::"

// MakeTaskKey builds the composite identity used for grouping and
// favorites: "projectId::description".
func MakeTaskKey(projectID, description string) string {
	return projectID + taskKeySeparator + description
}

// SplitTaskKey splits a task key back into project id and description.
// A key without a separator is treated as a bare project id.
func SplitTaskKey(key string) (projectID, description string) {
	parts := strings.SplitN(key, taskKeySeparator, 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
