package constants

// NSQ topics for auth events
const (
	TopicUserRegistered = "user.registered"
	TopicPasswordReset  = "user.password_reset"
)
