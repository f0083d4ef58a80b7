package transient

// IsTransient reports whether name is installed with the transient
// marker. A package that is not installed yields false without error;
// callers needing to distinguish absence query installed state
// themselves.
func (o *Orchestrator) IsTransient(name string) (bool, error) {
	record, found, err := o.manager.Query(name)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return record.Transient, nil
}
