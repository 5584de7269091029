package msg

import (
	"fmt"
	"strings"
)

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}

// Sprintlns joins lines into one newline-terminated message.
func Sprintlns(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}
