package apperrors

// Error is the tagged error value used across every module boundary.
// Errors form a hierarchy: a value derived with New reports Is against
// every ancestor, which is how callers branch on error kind without
// inspecting messages. Context carries the offending ids or input.
type Error interface {
	Error() string
	ErrorAll() string
	New(msg string) Error
	Msg(msg string) Error
	MsgErr(msg string, err ...error) Error
	Err(err ...error) Error
	Unwrap() []error
	Is(target error) bool
	SetStatusCode(code int) Error
	StatusCode() int
	SetCtx(ctx map[string]any) Error
	Ctx() map[string]any
}
