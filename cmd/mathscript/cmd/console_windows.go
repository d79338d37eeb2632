//go:build windows

package cmd

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal flips stdout's console mode on so ANSI escape
// sequences (clear's ESC 'c', the REPL prompt color, caret-underline colors
// in error snippets) render instead of printing as raw bytes, the Go
// equivalent of colorama.just_fix_windows_console in the reference
// implementation.
func enableVirtualTerminal() error {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	return windows.SetConsoleMode(handle, mode)
}
