package convert

// Package convert implements the image conversion pipeline behind the
// converter screen: file intake, target format selection, decode -> draw ->
// encode conversion, and handing the result to a Saver. The package owns the
// screen-local state and reports to the user only through an injected
// Notifier, so it has no dependency on the UI toolkit.
