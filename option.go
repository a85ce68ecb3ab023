package goplex

type Option func(*Model) error

func WithLogger(logger Logger) Option {
	return func(m *Model) error {
		m.logger = logger

		return nil
	}
}

// WithLogFile enables append-mode native solver logging to the given path,
// equivalent to setting the "logfile" parameter.
func WithLogFile(path string) Option {
	return func(m *Model) error {
		return m.setLogFile(path)
	}
}
