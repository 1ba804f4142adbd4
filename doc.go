// Package tuikit is the input core of a terminal UI: it turns raw terminal
// bytes into normalized events and decides which widget receives them.
//
// The pieces, in the order input flows through them:
//
//   - Decoder turns byte chunks into KeyEvent, MouseEvent and ResizeEvent
//     values, carrying partial escape sequences across chunks.
//   - Dispatcher delivers each event to global listeners, then to a router
//     (normally the focus manager), then to listeners for that key name,
//     stopping at the first listener that handles it.
//   - FocusManager groups Elements into Containers and tracks the single
//     focused element, focus history, a modal stack and a focus policy. It
//     implements tab order and spatial (arrow key) navigation.
//   - Session wires the three together and runs the poll loop over a
//     ByteSource such as TerminalSource.
//
// A minimal host:
//
//	sess, err := tuikit.NewSession()
//	if err != nil {
//		return err
//	}
//	fm := sess.Focus()
//	fm.CreateContainer("main")
//	fm.AddElement(tuikit.NewElement(tuikit.WithName("ok")), "main")
//	sess.Dispatcher().SubscribeKey("q", func(tuikit.Event) bool {
//		sess.Stop()
//		return true
//	})
//	src, err := tuikit.NewTerminalSource(os.Stdin)
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//	return sess.Listen(ctx, src)
//
// Everything runs on one goroutine; no type in this package is safe for
// concurrent use. Set TUI_DEBUG to a file path to get debug logs.
package tuikit
