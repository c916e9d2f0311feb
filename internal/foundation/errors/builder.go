package errors

// ErrorBuilder provides a fluent API for creating ClassifiedError instances.
type ErrorBuilder struct {
	category ErrorCategory
	severity ErrorSeverity
	retry    RetryStrategy
	message  string
	cause    error
	context  ErrorContext
}

// NewError creates a new ErrorBuilder with the specified category and message.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		severity: SeverityError,
		retry:    RetryNever,
		message:  message,
		context:  make(ErrorContext),
	}
}

// WrapError creates a new ErrorBuilder that wraps an existing error.
func WrapError(err error, category ErrorCategory, message string) *ErrorBuilder {
	b := NewError(category, message)
	b.cause = err
	return b
}

// WithSeverity sets the error severity.
func (b *ErrorBuilder) WithSeverity(severity ErrorSeverity) *ErrorBuilder {
	b.severity = severity
	return b
}

// WithRetry sets the retry strategy.
func (b *ErrorBuilder) WithRetry(strategy RetryStrategy) *ErrorBuilder {
	b.retry = strategy
	return b
}

// WithCause sets the wrapped error.
func (b *ErrorBuilder) WithCause(err error) *ErrorBuilder {
	b.cause = err
	return b
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

// Fatal sets the severity to fatal.
func (b *ErrorBuilder) Fatal() *ErrorBuilder {
	return b.WithSeverity(SeverityFatal)
}

// UserAction sets the retry strategy to require user action.
func (b *ErrorBuilder) UserAction() *ErrorBuilder {
	return b.WithRetry(RetryUserAction)
}

// Build creates the final ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return &ClassifiedError{
		category: b.category,
		severity: b.severity,
		retry:    b.retry,
		message:  b.message,
		cause:    b.cause,
		context:  b.context,
	}
}

// MalformedConfig starts a fatal error for a site definition that is missing
// a required field or has a field of the wrong shape.
func MalformedConfig(message string) *ErrorBuilder {
	return NewError(CategoryConfig, message).Fatal().UserAction()
}

// UnknownPlugin starts a fatal error for a resolve identifier the
// orchestrator has no plugin for.
func UnknownPlugin(name string) *ErrorBuilder {
	return NewError(CategoryPlugin, "unknown plugin: "+name).
		Fatal().
		UserAction().
		WithContext(ContextPlugin, name).
		WithContext(ContextKind, KindUnknownPlugin)
}

// PluginOptionsError starts a fatal error for options a plugin's schema rejects.
func PluginOptionsError(name, message string) *ErrorBuilder {
	return NewError(CategoryPlugin, message).
		Fatal().
		UserAction().
		WithContext(ContextPlugin, name)
}

// FileSystemError creates a filesystem error.
func FileSystemError(message string) *ErrorBuilder {
	return NewError(CategoryFileSystem, message).Fatal()
}

// InternalError creates an internal error.
func InternalError(message string) *ErrorBuilder {
	return NewError(CategoryInternal, message).Fatal()
}

// IsMalformedConfig reports whether err is (or wraps) a MalformedConfig error.
func IsMalformedConfig(err error) bool {
	return HasCategory(err, CategoryConfig)
}

// IsUnknownPlugin reports whether err is (or wraps) an UnknownPlugin error.
func IsUnknownPlugin(err error) bool {
	classified, ok := AsClassified(err)
	if !ok || !classified.IsCategory(CategoryPlugin) {
		return false
	}
	kind, _ := classified.Context().GetString(ContextKind)
	return kind == KindUnknownPlugin
}
