package constants

// NATS Subjects
const (
	// Location Service
	SubjectSessionStarted  = "location.session.started"
	SubjectSessionPosition = "location.session.position"
	SubjectSessionStopped  = "location.session.stopped"

	// Safety Service
	SubjectSOSTriggered = "safety.sos.triggered"

	// Guardian clients
	SubjectGuardianPresence = "guardians.presence"
	SubjectGuardianConsent  = "guardians.consent"
	SubjectGuardianSOSAck   = "guardians.sos.ack"

	// Queue group shared by service replicas
	QueueGroupGuardians = "shesafe-guardians"
)

// StreamSubjects lists the subjects captured by the JetStream stream
var StreamSubjects = []string{
	"location.session.>",
	"safety.sos.>",
}

// NSQ topics and channels
const (
	TopicNotifications = "shesafe.notifications"
	ChannelSMSDispatch = "sms-dispatch"
)
