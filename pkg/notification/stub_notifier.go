package notification

import "context"

type SentMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

type StubNotifier struct {
	Sent []SentMessage
}

func NewStubNotifier() *StubNotifier {
	return &StubNotifier{}
}

func (s *StubNotifier) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	s.Sent = append(s.Sent, SentMessage{Token: token, Title: title, Body: body, Data: data})
	return nil
}
