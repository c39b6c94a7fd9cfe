package entities

// Notification is a composed email, ready to hand to a mail sender. It lives
// for exactly one dispatch; nothing stores it.
type Notification struct {
	FromEmail string
	FromName  string
	To        string
	Subject   string
	PlainBody string
	HTMLBody  string
}
