package cmd

// Config carries everything the composition root needs to wire the service.
// Values come from the environment; see cmd/app/main.go.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost is a comma-separated broker list. When empty, notifications
	// are logged instead of published.
	KafkaHost              string
	KafkaNotificationTopic string

	// ArbitrationFeeUnits is the flat fee, in minor currency units, charged
	// to the losing party of an arbitrated dispute.
	ArbitrationFeeUnits int64

	// SweepSchedule is the six-field cron expression driving the deadline
	// sweep.
	SweepSchedule string
}
