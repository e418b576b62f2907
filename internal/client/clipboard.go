package client

import "github.com/atotto/clipboard"

type systemClipboard struct{}

// SystemClipboard returns a [Clipboard] backed by the operating system
// clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
