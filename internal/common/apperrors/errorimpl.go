package apperrors

// appError implements the apperrors.Error interface
type appError struct {
	msg           string
	base          Error
	wrappedErrors []error
	statuscode    int
	ctx           map[string]any
}

func (e *appError) Error() string {
	return e.msg
}

func (e *appError) ErrorAll() string {
	msg := e.msg
	for i, err := range e.wrappedErrors {
		if i == 0 {
			msg += ": "
		} else {
			msg += "; "
		}
		msg += err.Error()
	}
	return msg
}

func (e *appError) Unwrap() []error {
	return e.wrappedErrors
}

// New derives a child error that keeps the receiver as its base so that
// errors.Is still matches the whole ancestor chain.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		statuscode: e.statuscode,
		base:       e,
	}
}

// child clones the receiver into a derived error. Sentinel values declared at
// package level are never mutated in place; every Msg/Err/SetCtx call works on
// a copy.
func (e *appError) child() *appError {
	var ctx map[string]any
	if e.ctx != nil {
		ctx = make(map[string]any, len(e.ctx))
		for k, v := range e.ctx {
			ctx[k] = v
		}
	}
	return &appError{
		msg:           e.msg,
		base:          e,
		wrappedErrors: append([]error(nil), e.wrappedErrors...),
		statuscode:    e.statuscode,
		ctx:           ctx,
	}
}

func (e *appError) Msg(msg string) Error {
	c := e.child()
	c.msg = msg
	return c
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	c := e.child()
	c.msg = msg
	c.wrappedErrors = append(c.wrappedErrors, err...)
	return c
}

func (e *appError) Err(err ...error) Error {
	c := e.child()
	c.wrappedErrors = append(c.wrappedErrors, err...)
	return c
}

func (e *appError) Is(target error) bool {
	if e == target || e.base == target {
		return true
	}
	if e.base != nil && e.base.Is(target) {
		return true
	}
	for _, err := range e.wrappedErrors {
		if err == target {
			return true
		}
	}
	return false
}

func (e *appError) SetStatusCode(code int) Error {
	e.statuscode = code
	return e
}

func (e *appError) StatusCode() int {
	return e.statuscode
}

func (e *appError) SetCtx(ctx map[string]any) Error {
	c := e.child()
	if c.ctx == nil {
		c.ctx = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		c.ctx[k] = v
	}
	return c
}

func (e *appError) Ctx() map[string]any {
	return e.ctx
}

func New(msg string) Error {
	return &appError{
		msg:           msg,
		base:          nil,
		wrappedErrors: nil,
	}
}
