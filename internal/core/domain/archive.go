package domain

import "time"

// ArchivePolicy hides completed tasks from default views once they have been
// done for the configured delay. A zero delay archives immediately on
// completion; the policy is disabled by default.
type ArchivePolicy struct {
	Enabled bool
	Delay   time.Duration
}

// Archived reports whether a task is hidden from default views. A manual
// override on the task wins in both directions; otherwise only completed
// tasks whose completion age has reached the delay are archived. The
// boundary is inclusive.
func (p ArchivePolicy) Archived(task Task, now time.Time) bool {
	if task.ArchivedOverride != nil {
		return *task.ArchivedOverride
	}
	if !p.Enabled || task.Status != TaskStatusCompleted || task.CompletedAt == nil {
		return false
	}
	return now.Sub(*task.CompletedAt) >= p.Delay
}
