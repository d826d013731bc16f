package cli

import "fmt"

type unknownTopicError struct {
	topic string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q (run `calgrid docs` to list topics)", e.topic)
}

type unknownOpError struct {
	op string
}

func (e unknownOpError) Error() string {
	return fmt.Sprintf("unknown navigation op: %q (expected next-month, prev-month, next-year, prev-year, next-decade, prev-decade, month=N, year=N, jump=YYYY-MM-DD or reset)", e.op)
}

type flagError struct {
	flag string
	err  error
}

func (e flagError) Error() string {
	return fmt.Sprintf("--%s: %v", e.flag, e.err)
}

func (e flagError) Unwrap() error { return e.err }
