// Package logger is the logging facade. A Logger is built once from a
// transport configuration and dispatches every call synchronously to its
// transports, in configuration order.
//
//	l, err := logger.New([]any{
//		transport.Raw{"kind": "console", "colorizer": colorizer.New(os.Stdout)},
//		transport.Raw{"kind": "file", "path": "./log/app.log", "jsonFormat": true},
//	})
//	if err != nil {
//		return err
//	}
//	l.Info("listening on", 8080)
package logger
