package logger

type LevelWrapper struct {
	Base
	ambient []any
}

func WrapLogger(l Base) Logger {
	return &LevelWrapper{Base: l}
}

func (w *LevelWrapper) log(level LogLevel, msg string, kv []any) {
	if len(w.ambient) > 0 {
		merged := make([]any, 0, len(w.ambient)+len(kv))
		merged = append(merged, w.ambient...)
		merged = append(merged, kv...)
		kv = merged
	}
	w.Log(level, msg, kv...)
}

func (w *LevelWrapper) Debug(msg string, kv ...any) {
	w.log(DebugLevel, msg, kv)
}

func (w *LevelWrapper) Info(msg string, kv ...any) {
	w.log(InfoLevel, msg, kv)
}

func (w *LevelWrapper) Warn(msg string, kv ...any) {
	w.log(WarnLevel, msg, kv)
}

func (w *LevelWrapper) Error(msg string, kv ...any) {
	w.log(ErrorLevel, msg, kv)
}

func (w *LevelWrapper) With(kv ...any) Logger {
	ambient := make([]any, 0, len(w.ambient)+len(kv))
	ambient = append(ambient, w.ambient...)
	ambient = append(ambient, kv...)
	return &LevelWrapper{Base: w.Base, ambient: ambient}
}
