package mail

type FollowupInviteData struct {
	Name string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
