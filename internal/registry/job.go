package registry

// SyncJobArgs triggers a synchronisation with the COUNTER registry.
type SyncJobArgs struct{}

// Kind returns the River job kind of the registry sync.
func (SyncJobArgs) Kind() string { return "RegistrySyncJob" }
