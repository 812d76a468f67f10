package genericstack

import (
	"fmt"
	"io"
	"strings"
)

// String lists the elements from the top of the Stack to the bottom,
// separated by spaces and followed by a newline.
func (s *Stack[T]) String() string {
	var sb strings.Builder
	sep := ""
	for element := range s.Values() {
		fmt.Fprintf(&sb, "%s%v", sep, element)
		sep = " "
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Render writes String() to w.
func (s *Stack[T]) Render(w io.Writer) error {
	_, err := io.WriteString(w, s.String())
	return err
}
