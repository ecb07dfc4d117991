package provider

type Error struct {
	Provider  string
	Code      string
	Status    int
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Provider != "" && e.Message != "":
		return e.Provider + ": " + e.Message
	case e.Message != "":
		return e.Message
	case e.Provider != "":
		return e.Provider + ": error"
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Cause }
