package event

//go:generate mockgen -destination=mock/mock_sink.go -package=mockevent -source=sink.go

// Sink accepts outbound events. Send must not block the caller.
type Sink interface {
	Send(ev Event)
}
