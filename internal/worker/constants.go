package worker

// LogMsgWorkerJobFailed is logged when a job returns an error or panics
const LogMsgWorkerJobFailed = "Worker job failed"

// Error messages for pool operations
const (
	ErrMsgQueueFull   = "worker queue is full"
	ErrMsgPoolStopped = "worker pool is stopped"
	ErrMsgJobPanicFmt = "job %s panicked: %v"
)

// UnnamedJob labels jobs that were not wrapped with Named
const UnnamedJob = "anonymous"
