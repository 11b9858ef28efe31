package mission

import "time"

// Log tracks accepted missions through their lifecycle. A mission id lives
// in at most one of the three lists at any time; moves between lists are
// atomic (remove and append in one operation).
type Log struct {
	Active    []Mission `json:"activeMissions"`
	Completed []Mission `json:"completedMissions"`
	Failed    []Mission `json:"failedMissions"`
}

// NewLog creates an empty mission log
func NewLog() Log {
	return Log{
		Active:    []Mission{},
		Completed: []Mission{},
		Failed:    []Mission{},
	}
}

// Contains checks whether a mission id is tracked in any list
func (l *Log) Contains(id string) bool {
	for _, list := range [][]Mission{l.Active, l.Completed, l.Failed} {
		for _, m := range list {
			if m.ID == id {
				return true
			}
		}
	}
	return false
}

// FindActive returns the active mission with the given id
func (l *Log) FindActive(id string) (Mission, bool) {
	for _, m := range l.Active {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}

// Accept transitions an available mission to active and adds it to the log.
// Duplicate ids are rejected to preserve the disjointness invariant.
func (l *Log) Accept(m Mission) error {
	if l.Contains(m.ID) {
		return ErrDuplicateMission
	}
	if err := m.Accept(); err != nil {
		return err
	}
	l.Active = append(l.Active, m)
	return nil
}

// ReplaceActive updates an active mission in place (after a progress
// recomputation that did not finish it)
func (l *Log) ReplaceActive(m Mission) error {
	for i := range l.Active {
		if l.Active[i].ID == m.ID {
			l.Active[i] = m
			return nil
		}
	}
	return ErrMissionNotFound
}

// Complete moves a mission from active to completed and returns it so the
// caller can pay out the reward
func (l *Log) Complete(id string) (Mission, error) {
	m, err := l.removeActive(id)
	if err != nil {
		return Mission{}, err
	}
	m.Status = StatusCompleted
	m.CompletionProgress = 100
	l.Completed = append(l.Completed, m)
	return m, nil
}

// Fail moves a mission from active to failed
func (l *Log) Fail(id string) (Mission, error) {
	m, err := l.removeActive(id)
	if err != nil {
		return Mission{}, err
	}
	m.Status = StatusFailed
	l.Failed = append(l.Failed, m)
	return m, nil
}

// ExpireDue fails every active mission past its expiry time and returns the
// failed missions. Callers invoke this periodically; the core does not poll.
func (l *Log) ExpireDue(now time.Time) []Mission {
	var dueIDs []string
	for _, m := range l.Active {
		if m.IsExpired(now) {
			dueIDs = append(dueIDs, m.ID)
		}
	}
	var expired []Mission
	for _, id := range dueIDs {
		if failed, err := l.Fail(id); err == nil {
			expired = append(expired, failed)
		}
	}
	return expired
}

func (l *Log) removeActive(id string) (Mission, error) {
	for i, m := range l.Active {
		if m.ID == id {
			l.Active = append(l.Active[:i], l.Active[i+1:]...)
			return m, nil
		}
	}
	return Mission{}, ErrMissionNotFound
}
