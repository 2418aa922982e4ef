package projects_enums

type ProjectPriority string

const (
	ProjectPriorityLow      ProjectPriority = "LOW"
	ProjectPriorityMedium   ProjectPriority = "MEDIUM"
	ProjectPriorityHigh     ProjectPriority = "HIGH"
	ProjectPriorityCritical ProjectPriority = "CRITICAL"
)

func (p ProjectPriority) IsValid() bool {
	switch p {
	case ProjectPriorityLow, ProjectPriorityMedium, ProjectPriorityHigh, ProjectPriorityCritical:
		return true
	}

	return false
}
