package graphql

// Status is the state of a remote query.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a remote query. Data is only meaningful on StatusSuccess,
// Err only on StatusError.
type Result[T any] struct {
	Status Status
	Data   T
	Err    error
}

func Success[T any](data T) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: data}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Status: StatusError, Err: err}
}

func Loading[T any]() Result[T] {
	return Result[T]{Status: StatusLoading}
}

func (r Result[T]) OK() bool {
	return r.Status == StatusSuccess
}

// Map converts a successful result's data, passing loading and error results through.
func Map[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	switch r.Status {
	case StatusSuccess:
		mapped, err := fn(r.Data)
		if err != nil {
			return Failure[U](err)
		}
		return Success(mapped)
	case StatusError:
		return Failure[U](r.Err)
	default:
		return Loading[U]()
	}
}
