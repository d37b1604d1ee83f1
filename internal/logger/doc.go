// Package logger wraps zap for the appliance.
//
// A global sugared logger with a console encoder is created at start-up and
// can be redirected (the front panel owns stdout, so logs go to a file then).
// Tasks carry a context whose logger is named after the component, see
// WithName and WithKV.
package logger
