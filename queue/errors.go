package queue

import "errors"

var (
	// ErrInvalidArgument is returned when an entry carries no value.
	ErrInvalidArgument = errors.New("queue: invalid argument")
	// ErrEmptyQueue is returned when there is no entry to take.
	ErrEmptyQueue = errors.New("queue: empty queue")
	// ErrNotFound is returned when a key is not in the queue.
	ErrNotFound = errors.New("queue: key not found")
	// ErrReleased is returned by operations on a released queue.
	ErrReleased = errors.New("queue: released")
)
